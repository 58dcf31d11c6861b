// Package pipeline runs one synchronous resume scan: extract text, extract
// skills, analyze bullets, score strength, rank jobs, generate suggestions.
// A run is deterministic and touches no shared state; the daily gate and the
// entitlement flag live in the caller's session, passed in explicitly.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mateo/resume-checkup/internal/bullets"
	"github.com/mateo/resume-checkup/internal/catalog"
	"github.com/mateo/resume-checkup/internal/extraction"
	"github.com/mateo/resume-checkup/internal/matching"
	"github.com/mateo/resume-checkup/internal/scoring"
	"github.com/mateo/resume-checkup/internal/skills"
	"github.com/mateo/resume-checkup/internal/suggestions"
)

// Input is everything one scan needs. Pro controls suggestion truncation and
// whether bullet rewrites are included.
type Input struct {
	Filename string
	Data     []byte
	TopN     int
	Pro      bool
}

// JobMatch is one ranked catalog entry with its improvement suggestions.
type JobMatch struct {
	matching.Result
	Suggestions []string `json:"suggestions"`
}

// Report is the complete result of one scan.
type Report struct {
	Skills         []string           `json:"skills"`
	StrengthScore  int                `json:"strength_score"`
	Matches        []JobMatch         `json:"matches"`
	BulletFeedback []bullets.Feedback `json:"bullet_feedback"`
	ResumeText     string             `json:"resume_text,omitempty"`
}

// Runner holds the read-only inputs shared by every scan.
type Runner struct {
	vocab *skills.Vocabulary
	jobs  []catalog.JobPosting
	log   *zap.Logger
}

// NewRunner creates a pipeline runner over the given vocabulary and catalog.
func NewRunner(vocab *skills.Vocabulary, jobs []catalog.JobPosting, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{vocab: vocab, jobs: jobs, log: log}
}

// Scan extracts text from the uploaded document and runs the full pipeline.
func (r *Runner) Scan(ctx context.Context, in Input) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	text, err := extraction.Extract(in.Filename, in.Data)
	if err != nil {
		return nil, err
	}

	report := r.scanText(text, in.TopN, in.Pro)
	r.log.Info("scan complete",
		zap.String("filename", in.Filename),
		zap.Int("skills", len(report.Skills)),
		zap.Int("flagged_bullets", len(report.BulletFeedback)),
		zap.Int("strength_score", report.StrengthScore),
		zap.Duration("elapsed", time.Since(start)),
	)
	return report, nil
}

// scanText runs every stage after text extraction.
func (r *Runner) scanText(text string, topN int, pro bool) *Report {
	if topN <= 0 {
		topN = matching.DefaultTopN
	}

	resumeSkills := r.vocab.Extract(text)

	lines := bullets.ExtractBullets(text)
	feedback := bullets.AnalyzeAll(lines)
	if !pro {
		// Free tier sees the flags but not the rewrites.
		for i := range feedback {
			feedback[i].Rewrite = ""
		}
	}

	ranked := matching.RankJobs(resumeSkills, r.jobs, topN)
	matches := make([]JobMatch, 0, len(ranked))
	for _, result := range ranked {
		matches = append(matches, JobMatch{
			Result:      result,
			Suggestions: suggestions.ForMissing(result.Missing, pro),
		})
	}

	return &Report{
		Skills:         resumeSkills,
		StrengthScore:  scoring.Strength(len(resumeSkills), len(feedback)),
		Matches:        matches,
		BulletFeedback: feedback,
		ResumeText:     text,
	}
}
