package clock

import "time"

// Layout is the timestamp format used everywhere: UTC ISO-8601 with
// fixed-width microsecond precision, so lexicographic order on stored
// values equals chronological order.
const Layout = "2006-01-02T15:04:05.000000Z"

// Clock produces the current timestamp as an ISO-8601 string. Managers
// receive one at construction so tests can pin time.
type Clock func() string

// Now returns the current UTC time in the canonical layout.
func Now() string {
	return time.Now().UTC().Format(Layout)
}
