// Package bullets identifies resume bullet lines and analyzes them for weak
// phrasing, offering deterministic rewrites for flagged lines.
package bullets

import "strings"

// maxBullets caps how many bullet lines are extracted from one resume.
const maxBullets = 15

// bulletMarkers are the list-item prefixes that identify a bullet line.
// Each marker must be followed by whitespace, except "•" which also counts
// when it starts the line bare.
var bulletMarkers = []string{"-", "•", "●", "*"}

// ExtractBullets returns the bullet lines found in the text, in document
// order, capped at the first 15 matches. The leading marker and surrounding
// whitespace are stripped from each returned line.
func ExtractBullets(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		content, ok := stripMarker(trimmed)
		if !ok || content == "" {
			continue
		}
		bullets = append(bullets, content)
		if len(bullets) == maxBullets {
			break
		}
	}
	return bullets
}

// stripMarker removes a leading bullet marker from a trimmed line.
// Returns the remaining content and whether the line was a bullet.
func stripMarker(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		rest, found := strings.CutPrefix(line, marker)
		if !found {
			continue
		}
		if rest == "" {
			return "", false
		}
		if rest[0] == ' ' || rest[0] == '\t' {
			return strings.TrimSpace(rest), true
		}
		// A bare "•" with no following whitespace still marks a bullet.
		if marker == "•" {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}
