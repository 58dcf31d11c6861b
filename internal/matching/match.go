// Package matching computes skill-overlap match scores between a resume and
// the job catalog and ranks the catalog by score.
package matching

import (
	"sort"
	"strings"

	"github.com/mateo/resume-checkup/internal/catalog"
)

// DefaultTopN is the default number of ranked results returned.
const DefaultTopN = 5

// Result is the outcome of matching one resume skill set against one posting.
// Matched and Missing hold the lower-cased skill forms; together they cover
// the posting's required skills exactly once (case-insensitively deduplicated).
type Result struct {
	Job     catalog.JobPosting `json:"job"`
	Matched []string           `json:"matched_skills"`
	Missing []string           `json:"missing_skills"`
	Score   int                `json:"match_score"`
}

// RankJobs scores every posting against the resume skill set, sorts by score
// descending, and truncates to topN. The sort is stable: postings with equal
// scores keep their catalog order. An empty resume skill set yields all-zero
// scores in catalog order.
func RankJobs(resumeSkills []string, jobs []catalog.JobPosting, topN int) []Result {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSet[strings.ToLower(skill)] = true
	}

	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, matchJob(resumeSet, job))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(results) {
		topN = len(results)
	}
	return results[:topN]
}

// matchJob computes matched/missing/score for a single posting.
func matchJob(resumeSet map[string]bool, job catalog.JobPosting) Result {
	seen := make(map[string]bool, len(job.Skills))
	var matched, missing []string
	for _, skill := range job.Skills {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		if resumeSet[key] {
			matched = append(matched, key)
		} else {
			missing = append(missing, key)
		}
	}

	return Result{
		Job:     job,
		Matched: matched,
		Missing: missing,
		Score:   len(matched),
	}
}
