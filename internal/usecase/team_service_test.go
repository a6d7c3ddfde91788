package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planhub/planner/internal/domain/dto"
	apperrors "github.com/planhub/planner/internal/domain/errors"
	"github.com/planhub/planner/internal/domain/model"
)

func TestTeamService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.createUser(t, "alice", "Alice")

	t.Run("returns a positive id and makes the admin a member", func(t *testing.T) {
		id := env.createTeam(t, "Engineering", "Builds things", alice)
		assert.Greater(t, id, int64(0))

		members, err := env.teams.ListMembers(ctx, id)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, alice, members[0].ID)
		assert.Equal(t, "alice", members[0].Name)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		_, err := env.teams.Create(ctx, dto.CreateTeamRequest{
			Name:  "Engineering",
			Admin: alice,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.EqualError(t, err, "Team name must be unique")
	})

	t.Run("rejects an unknown admin", func(t *testing.T) {
		_, err := env.teams.Create(ctx, dto.CreateTeamRequest{
			Name:  "Design",
			Admin: 9999,
		})
		require.Error(t, err)
		assert.EqualError(t, err, "Admin user not found")
	})
}

func TestTeamService_Describe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.createUser(t, "alice", "Alice")
	id := env.createTeam(t, "Engineering", "Builds things", alice)

	t.Run("returns name, description and admin", func(t *testing.T) {
		team, err := env.teams.Describe(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Engineering", team.Name)
		assert.Equal(t, "Builds things", team.Description)
		assert.Equal(t, alice, team.Admin)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := env.teams.Describe(ctx, 9999)
		require.Error(t, err)
		assert.EqualError(t, err, "Team not found")
	})
}

func TestTeamService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.createUser(t, "alice", "Alice")
	bob := env.createUser(t, "bob", "Bob")
	id := env.createTeam(t, "Engineering", "Builds things", alice)

	t.Run("changes name, description and admin", func(t *testing.T) {
		name := "Platform"
		description := "Runs the platform"
		err := env.teams.Update(ctx, id, dto.TeamUpdate{
			Name:        &name,
			Description: &description,
			Admin:       &bob,
		})
		require.NoError(t, err)

		team, err := env.teams.Describe(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Platform", team.Name)
		assert.Equal(t, "Runs the platform", team.Description)
		assert.Equal(t, bob, team.Admin)
	})

	t.Run("a new admin does not gain a membership row", func(t *testing.T) {
		members, err := env.teams.ListMembers(ctx, id)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, alice, members[0].ID)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		err := env.teams.Update(ctx, id, dto.TeamUpdate{})
		require.Error(t, err)
		assert.EqualError(t, err, "No valid fields to update")
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		env.createTeam(t, "Design", "", alice)
		name := "Design"
		err := env.teams.Update(ctx, id, dto.TeamUpdate{Name: &name})
		require.Error(t, err)
		assert.EqualError(t, err, "Team name must be unique")
	})

	t.Run("rejects an unknown admin", func(t *testing.T) {
		unknown := int64(9999)
		err := env.teams.Update(ctx, id, dto.TeamUpdate{Admin: &unknown})
		require.Error(t, err)
		assert.EqualError(t, err, "Admin user not found")
	})

	t.Run("unknown team", func(t *testing.T) {
		name := "Nowhere"
		err := env.teams.Update(ctx, 9999, dto.TeamUpdate{Name: &name})
		require.Error(t, err)
		assert.EqualError(t, err, "Team not found")
	})
}

func TestTeamService_AddMembers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.createUser(t, "alice", "Alice")
	bob := env.createUser(t, "bob", "Bob")
	carol := env.createUser(t, "carol", "Carol")
	id := env.createTeam(t, "Engineering", "", alice)

	t.Run("adds users to the team", func(t *testing.T) {
		err := env.teams.AddMembers(ctx, id, []int64{bob, carol})
		require.NoError(t, err)

		members, err := env.teams.ListMembers(ctx, id)
		require.NoError(t, err)
		assert.Len(t, members, 3)
	})

	t.Run("re-adding an existing member is a no-op", func(t *testing.T) {
		err := env.teams.AddMembers(ctx, id, []int64{bob})
		require.NoError(t, err)

		members, err := env.teams.ListMembers(ctx, id)
		require.NoError(t, err)
		assert.Len(t, members, 3)
	})

	t.Run("one unknown user rejects the whole batch", func(t *testing.T) {
		dave := env.createUser(t, "dave", "Dave")
		err := env.teams.AddMembers(ctx, id, []int64{dave, 9999})
		require.Error(t, err)
		assert.EqualError(t, err, "User 9999 not found")

		members, err := env.teams.ListMembers(ctx, id)
		require.NoError(t, err)
		assert.Len(t, members, 3)
	})

	t.Run("empty list is valid", func(t *testing.T) {
		err := env.teams.AddMembers(ctx, id, []int64{})
		require.NoError(t, err)
	})

	t.Run("unknown team", func(t *testing.T) {
		err := env.teams.AddMembers(ctx, 9999, []int64{bob})
		require.Error(t, err)
		assert.EqualError(t, err, "Team not found")
	})
}

func TestTeamService_AddMembers_Capacity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "admin", "Admin")
	id := env.createTeam(t, "Big Team", "", admin)

	ids := make([]int64, 0, model.MaxTeamSize-1)
	for i := 0; i < model.MaxTeamSize-1; i++ {
		ids = append(ids, env.createUser(t, fmt.Sprintf("user%02d", i), "User"))
	}
	require.NoError(t, env.teams.AddMembers(ctx, id, ids))

	count, err := env.teams.ListMembers(ctx, id)
	require.NoError(t, err)
	require.Len(t, count, model.MaxTeamSize)

	overflow := env.createUser(t, "overflow", "One Too Many")
	err = env.teams.AddMembers(ctx, id, []int64{overflow})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.EqualError(t, err, "Cannot exceed maximum team size of 50 users")
}

func TestTeamService_RemoveMembers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.createUser(t, "alice", "Alice")
	bob := env.createUser(t, "bob", "Bob")
	id := env.createTeam(t, "Engineering", "", alice)
	require.NoError(t, env.teams.AddMembers(ctx, id, []int64{bob}))

	t.Run("removes a member", func(t *testing.T) {
		err := env.teams.RemoveMembers(ctx, id, []int64{bob})
		require.NoError(t, err)

		members, err := env.teams.ListMembers(ctx, id)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, alice, members[0].ID)
	})

	t.Run("never removes the admin", func(t *testing.T) {
		err := env.teams.RemoveMembers(ctx, id, []int64{alice})
		require.Error(t, err)
		assert.EqualError(t, err, "Cannot remove team admin from team")

		members, err := env.teams.ListMembers(ctx, id)
		require.NoError(t, err)
		assert.Len(t, members, 1)
	})

	t.Run("admin anywhere in the batch rejects the whole batch", func(t *testing.T) {
		require.NoError(t, env.teams.AddMembers(ctx, id, []int64{bob}))
		err := env.teams.RemoveMembers(ctx, id, []int64{bob, alice})
		require.Error(t, err)
		assert.EqualError(t, err, "Cannot remove team admin from team")

		members, err := env.teams.ListMembers(ctx, id)
		require.NoError(t, err)
		assert.Len(t, members, 2)
	})

	t.Run("removing a non-member is a no-op", func(t *testing.T) {
		outsider := env.createUser(t, "carol", "Carol")
		err := env.teams.RemoveMembers(ctx, id, []int64{outsider})
		require.NoError(t, err)
	})

	t.Run("unknown team", func(t *testing.T) {
		err := env.teams.RemoveMembers(ctx, 9999, []int64{bob})
		require.Error(t, err)
		assert.EqualError(t, err, "Team not found")
	})
}

func TestTeamService_ListMembers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	zoe := env.createUser(t, "zoe", "Zoe")
	adam := env.createUser(t, "adam", "Adam")
	id := env.createTeam(t, "Engineering", "", zoe)
	require.NoError(t, env.teams.AddMembers(ctx, id, []int64{adam}))

	members, err := env.teams.ListMembers(ctx, id)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// Ordered by user name regardless of join order.
	assert.Equal(t, "adam", members[0].Name)
	assert.Equal(t, "zoe", members[1].Name)
	assert.Equal(t, "Adam", members[0].DisplayName)
}

func TestTeamService_List(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.createUser(t, "alice", "Alice")
	env.createTeam(t, "Engineering", "Builds things", alice)
	env.createTeam(t, "Design", "Draws things", alice)

	teams, err := env.teams.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Engineering", teams[0].Name)
	assert.Equal(t, "Design", teams[1].Name)
	assert.Equal(t, alice, teams[0].Admin)
}
