package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mateo/resume-checkup/internal/bullets"
	"github.com/mateo/resume-checkup/internal/catalog"
	"github.com/mateo/resume-checkup/internal/matching"
	"github.com/mateo/resume-checkup/internal/pipeline"
)

func testReport() *pipeline.Report {
	return &pipeline.Report{
		Skills:        []string{"Python", "SQL"},
		StrengthScore: 74,
		Matches: []pipeline.JobMatch{
			{
				Result: matching.Result{
					Job:     catalog.JobPosting{Title: "Data Analyst", Company: "Acme"},
					Matched: []string{"python", "sql"},
					Missing: []string{"tableau"},
					Score:   2,
				},
				Suggestions: []string{"Consider adding a bullet point or project showing experience with tableau."},
			},
		},
		BulletFeedback: []bullets.Feedback{
			{
				Line:    "Helped the team",
				Flags:   []bullets.Flag{bullets.FlagWeakVerb, bullets.FlagNoMetric, bullets.FlagTooShort},
				Rewrite: "contributed to the team [quantify the impact] [add more detail]",
			},
		},
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(testReport())
	output := buf.String()

	assert.Contains(t, output, "RESUME SUMMARY")
	assert.Contains(t, output, "Strength Score: 74 / 100")
	assert.Contains(t, output, "Python, SQL")

	assert.Contains(t, output, "TOP JOB MATCHES")
	assert.Contains(t, output, "Data Analyst — Acme")
	assert.Contains(t, output, "Score: 2")
	assert.Contains(t, output, "python, sql")
	assert.Contains(t, output, "→ Consider adding a bullet point")

	assert.Contains(t, output, "BULLET FEEDBACK")
	assert.Contains(t, output, "Helped the team")
	assert.Contains(t, output, "weak_verb no_metric too_short")
	assert.Contains(t, output, "contributed to the team")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintReport_NoWeakBullets(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := testReport()
	report.BulletFeedback = nil
	p.PrintReport(report)

	assert.Contains(t, buf.String(), "NO WEAK BULLETS FOUND")
}

func TestPrintReport_NoSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := testReport()
	report.Skills = nil
	report.Matches = nil
	p.PrintReport(report)

	assert.Contains(t, buf.String(), "No recognized skills found.")
	assert.NotContains(t, buf.String(), "TOP JOB MATCHES")
}
