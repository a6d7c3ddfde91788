// Command demo walks through the planner API end to end: it creates
// sample users, a team with members, a board with tasks, drives the
// tasks to completion and exports the board. Run it against a server
// started with cmd/server.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

type client struct {
	baseURL string
	http    *http.Client
}

func (c *client) do(method, path string, body any) (map[string]any, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s %s: %s (%v)", method, path, resp.Status, result["detail"])
	}
	return result, nil
}

func (c *client) doList(path string) ([]map[string]any, error) {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *client) mustCreate(path string, body any) int64 {
	result, err := c.do(http.MethodPost, path, body)
	if err != nil {
		log.Fatalf("create %s failed: %v", path, err)
	}
	id, ok := result["id"].(float64)
	if !ok {
		log.Fatalf("create %s: response carries no id: %v", path, result)
	}
	return int64(id)
}

func main() {
	baseURL := flag.String("url", "http://localhost:8000", "planner API base URL")
	flag.Parse()

	c := &client{baseURL: *baseURL, http: &http.Client{Timeout: 10 * time.Second}}

	if _, err := c.do(http.MethodGet, "/health", nil); err != nil {
		log.Fatalf("API server is not reachable at %s: %v", *baseURL, err)
	}
	fmt.Println("API server is running")

	fmt.Println("\n--- Users ---")
	suffix := time.Now().Unix()
	users := []struct{ name, displayName string }{
		{fmt.Sprintf("john_doe_%d", suffix), "John Doe"},
		{fmt.Sprintf("jane_smith_%d", suffix), "Jane Smith"},
		{fmt.Sprintf("bob_wilson_%d", suffix), "Bob Wilson"},
	}
	userIDs := make([]int64, 0, len(users))
	for _, u := range users {
		id := c.mustCreate("/users", map[string]string{"name": u.name, "display_name": u.displayName})
		fmt.Printf("created user %s (id %d)\n", u.name, id)
		userIDs = append(userIDs, id)
	}

	if _, err := c.do(http.MethodPut, fmt.Sprintf("/users/%d", userIDs[0]), map[string]any{
		"user": map[string]string{"display_name": "John Doe (Senior Developer)"},
	}); err != nil {
		log.Fatalf("update user failed: %v", err)
	}
	fmt.Printf("updated display name of user %d\n", userIDs[0])

	fmt.Println("\n--- Teams ---")
	teamID := c.mustCreate("/teams", map[string]any{
		"name":        fmt.Sprintf("Frontend Team %d", suffix),
		"description": "Responsible for UI/UX development",
		"admin":       userIDs[0],
	})
	fmt.Printf("created team (id %d)\n", teamID)

	if _, err := c.do(http.MethodPost, fmt.Sprintf("/teams/%d/users", teamID), map[string]any{
		"users": userIDs[1:],
	}); err != nil {
		log.Fatalf("add members failed: %v", err)
	}
	members, err := c.doList(fmt.Sprintf("/teams/%d/users", teamID))
	if err != nil {
		log.Fatalf("list members failed: %v", err)
	}
	for _, m := range members {
		fmt.Printf("member: %v (%v)\n", m["name"], m["display_name"])
	}

	fmt.Println("\n--- Boards and tasks ---")
	boardID := c.mustCreate(fmt.Sprintf("/teams/%d/boards", teamID), map[string]string{
		"name":        "Website Redesign",
		"description": "Complete redesign of company website",
	})
	fmt.Printf("created board (id %d)\n", boardID)

	tasks := []struct {
		title, description string
		assignee           int64
	}{
		{"Design mockups", "Create UI mockups for main pages", userIDs[0]},
		{"Setup development environment", "Configure local dev environment", userIDs[1]},
		{"Implement homepage", "Code the new homepage design", userIDs[2]},
	}
	taskIDs := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		id := c.mustCreate(fmt.Sprintf("/boards/%d/tasks", boardID), map[string]any{
			"title":       task.title,
			"description": task.description,
			"user_id":     task.assignee,
		})
		fmt.Printf("created task %q (id %d)\n", task.title, id)
		taskIDs = append(taskIDs, id)
	}

	for _, taskID := range taskIDs {
		if _, err := c.do(http.MethodPut, fmt.Sprintf("/tasks/%d/status", taskID), map[string]string{
			"status": "COMPLETE",
		}); err != nil {
			log.Fatalf("update task status failed: %v", err)
		}
	}
	fmt.Println("marked all tasks COMPLETE")

	result, err := c.do(http.MethodPost, fmt.Sprintf("/boards/%d/export", boardID), nil)
	if err != nil {
		log.Fatalf("export board failed: %v", err)
	}
	fmt.Printf("board exported to: %v\n", result["out_file"])

	if _, err := c.do(http.MethodPut, fmt.Sprintf("/boards/%d/close", boardID), nil); err != nil {
		log.Fatalf("close board failed: %v", err)
	}
	fmt.Printf("closed board %d\n", boardID)

	fmt.Println("\n--- Expected failures ---")
	if _, err := c.do(http.MethodPost, "/users", map[string]string{
		"name": users[0].name, "display_name": "Another John",
	}); err != nil {
		fmt.Printf("duplicate user rejected: %v\n", err)
	}
	if _, err := c.do(http.MethodGet, "/users/99999", nil); err != nil {
		fmt.Printf("unknown user rejected: %v\n", err)
	}
	if _, err := c.do(http.MethodPut, fmt.Sprintf("/boards/%d/close", boardID), nil); err != nil {
		fmt.Printf("re-close rejected: %v\n", err)
	}

	fmt.Println("\nDemo completed successfully")
}
