package skills

import "strings"

// Extract returns the vocabulary entries present in the given text, in
// vocabulary order (not text order). Matching is case-insensitive substring
// containment; "R" matching inside "Marketing" is a known false-positive class
// of this detection, not a bug to paper over with token matching.
func (v *Vocabulary) Extract(text string) []string {
	if text == "" {
		return nil
	}

	lowered := strings.ToLower(text)
	var found []string
	for _, skill := range v.skills {
		if strings.Contains(lowered, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}
