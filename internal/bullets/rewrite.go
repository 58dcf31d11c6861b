package bullets

import (
	"regexp"
	"strings"
)

// Markers appended to rewrites that still lack substance after substitution.
const (
	metricMarker = " [quantify the impact]"
	detailMarker = " [add more detail]"
)

// strongerVerbs maps each weak verb phrase to its fixed replacement.
// Substitution is whole-word and case-insensitive.
var strongerVerbs = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bworked on\b`), "delivered"},
	{regexp.MustCompile(`(?i)\binvolved in\b`), "drove"},
	{regexp.MustCompile(`(?i)\bhelped\b`), "contributed to"},
	{regexp.MustCompile(`(?i)\bassisted\b`), "facilitated"},
	{regexp.MustCompile(`(?i)\bsupported\b`), "championed"},
	{regexp.MustCompile(`(?i)\bparticipated\b`), "collaborated"},
}

// Rewrite produces a deterministic stronger version of a bullet line:
// weak verb phrases are replaced one-to-one, a metric marker is appended when
// no digit is present after substitution, and a detail marker is appended when
// fewer than 5 tokens remain. Pure function; same input, same output.
func Rewrite(line string) string {
	rewritten := line
	for _, sub := range strongerVerbs {
		rewritten = sub.pattern.ReplaceAllString(rewritten, sub.replacement)
	}

	// Both checks look at the substituted text, not at appended markers.
	tooShort := len(strings.Fields(rewritten)) < minBulletWords

	if !containsDigit(rewritten) {
		rewritten += metricMarker
	}
	if tooShort {
		rewritten += detailMarker
	}

	return rewritten
}
