// Package suggestions turns missing skills into human-readable resume
// improvement suggestions, with a free-tier truncation policy.
package suggestions

import "fmt"

// freeTierLimit is how many suggestions a non-Pro session sees per job.
// Partial visibility, not zero: the first two are always shown.
const freeTierLimit = 2

// ForMissing produces one suggestion per missing skill, in the same order as
// the input. When pro is false the list is truncated to the first two entries.
func ForMissing(missing []string, pro bool) []string {
	out := make([]string, 0, len(missing))
	for _, skill := range missing {
		out = append(out, fmt.Sprintf(
			"Consider adding a bullet point or project showing experience with %s.", skill))
	}

	if !pro && len(out) > freeTierLimit {
		out = out[:freeTierLimit]
	}
	return out
}
