// Package skills provides the controlled skill vocabulary and extraction of
// vocabulary entries from resume text.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// defaultSkills is the built-in vocabulary of recognized competency keywords.
// Order is significant: extraction results preserve vocabulary order.
var defaultSkills = []string{
	"Python", "SQL", "Tableau", "Power BI", "Excel", "R", "Machine Learning",
	"Spark", "Redshift", "Azure", "BigQuery", "Snowflake", "D3.js", "JavaScript",
}

// Vocabulary is a fixed, ordered list of skill names. Identity is the
// lower-cased name; entries are unique under that identity.
type Vocabulary struct {
	skills []string
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	skills := make([]string, len(defaultSkills))
	copy(skills, defaultSkills)
	return &Vocabulary{skills: skills}
}

// New builds a vocabulary from the given skill names.
// Returns an error on empty input, blank entries, or case-insensitive duplicates.
func New(skills []string) (*Vocabulary, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}

	seen := make(map[string]bool, len(skills))
	cleaned := make([]string, 0, len(skills))
	for i, skill := range skills {
		name := strings.TrimSpace(skill)
		if name == "" {
			return nil, fmt.Errorf("vocabulary entry %d is blank", i)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("duplicate vocabulary entry: %s", name)
		}
		seen[key] = true
		cleaned = append(cleaned, name)
	}

	return &Vocabulary{skills: cleaned}, nil
}

// Load reads a vocabulary from a JSON file containing an array of skill names.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	return New(skills)
}

// Skills returns a copy of the vocabulary entries in order.
func (v *Vocabulary) Skills() []string {
	out := make([]string, len(v.skills))
	copy(out, v.skills)
	return out
}

// Len returns the number of vocabulary entries.
func (v *Vocabulary) Len() int {
	return len(v.skills)
}
