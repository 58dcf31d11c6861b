package rendering

import "strings"

// BulletText formats accepted rewritten bullet lines as a plain-text
// download, one per line, each prefixed with a bullet marker.
// Blank lines are dropped.
func BulletText(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		sb.WriteString("• ")
		sb.WriteString(trimmed)
		sb.WriteString("\n")
	}
	return sb.String()
}
