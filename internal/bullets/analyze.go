package bullets

import (
	"regexp"
	"strings"
)

// Flag identifies one weakness detected in a bullet line.
type Flag string

// Flags a bullet may carry. Each is evaluated independently; a bullet with
// zero flags is "strong" and produces no feedback.
const (
	FlagWeakVerb     Flag = "weak_verb"
	FlagNoMetric     Flag = "no_metric"
	FlagTooShort     Flag = "too_short"
	FlagPassiveVoice Flag = "passive_voice"
)

// minBulletWords is the token count below which a bullet is flagged too-short.
const minBulletWords = 5

// weakVerbs are phrases that understate impact or ownership.
// Detection is case-insensitive substring matching.
var weakVerbs = []string{
	"helped",
	"worked on",
	"assisted",
	"involved in",
	"supported",
	"participated",
}

// passivePatterns match common passive constructions. This is a heuristic,
// not a grammar check; false positives and negatives on phrasing are accepted.
var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bwas\s+\w+(?:ed|en)\s+by\b`),
	regexp.MustCompile(`(?i)\bwere\s+\w+(?:ed|en)\s+by\b`),
	regexp.MustCompile(`(?i)\bwas responsible for\b`),
	regexp.MustCompile(`(?i)\bwere responsible for\b`),
	regexp.MustCompile(`(?i)\bwas tasked with\b`),
	regexp.MustCompile(`(?i)\bwere tasked with\b`),
	regexp.MustCompile(`(?i)\bwas involved in\b`),
	regexp.MustCompile(`(?i)\bwere involved in\b`),
}

// Feedback is the analysis result for one flagged bullet line.
type Feedback struct {
	Line    string `json:"line"`
	Flags   []Flag `json:"flags"`
	Rewrite string `json:"rewrite,omitempty"`
}

// Analyze evaluates a single bullet line and returns the flags it carries.
func Analyze(line string) []Flag {
	var flags []Flag
	lowered := strings.ToLower(line)

	for _, verb := range weakVerbs {
		if strings.Contains(lowered, verb) {
			flags = append(flags, FlagWeakVerb)
			break
		}
	}

	if !containsDigit(line) {
		flags = append(flags, FlagNoMetric)
	}

	if len(strings.Fields(line)) < minBulletWords {
		flags = append(flags, FlagTooShort)
	}

	for _, pattern := range passivePatterns {
		if pattern.MatchString(line) {
			flags = append(flags, FlagPassiveVoice)
			break
		}
	}

	return flags
}

// AnalyzeAll analyzes every bullet and returns feedback for the flagged ones,
// in document order. Strong bullets are excluded. Each feedback entry carries
// a deterministic rewrite suggestion.
func AnalyzeAll(lines []string) []Feedback {
	var feedback []Feedback
	for _, line := range lines {
		flags := Analyze(line)
		if len(flags) == 0 {
			continue
		}
		feedback = append(feedback, Feedback{
			Line:    line,
			Flags:   flags,
			Rewrite: Rewrite(line),
		})
	}
	return feedback
}

// containsDigit reports whether the string has at least one digit character.
func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
