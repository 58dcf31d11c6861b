package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateo/resume-checkup/internal/bullets"
	"github.com/mateo/resume-checkup/internal/catalog"
	"github.com/mateo/resume-checkup/internal/matching"
	"github.com/mateo/resume-checkup/internal/pipeline"
)

func sampleReport() *pipeline.Report {
	return &pipeline.Report{
		Skills:        []string{"Python", "SQL"},
		StrengthScore: 74,
		Matches: []pipeline.JobMatch{
			{
				Result: matching.Result{
					Job: catalog.JobPosting{
						Title:    "Data Analyst",
						Company:  "Acme",
						Location: "Remote",
						URL:      "https://jobs.example.com/1",
						Skills:   []string{"python", "sql", "tableau"},
					},
					Matched: []string{"python", "sql"},
					Missing: []string{"tableau"},
					Score:   2,
				},
				Suggestions: []string{
					"Consider adding a bullet point or project showing experience with tableau.",
				},
			},
		},
		BulletFeedback: []bullets.Feedback{
			{
				Line:    "Helped the team",
				Flags:   []bullets.Flag{bullets.FlagWeakVerb},
				Rewrite: "contributed to the team [quantify the impact] [add more detail]",
			},
		},
		ResumeText: "Jane Doe\nData analyst",
	}
}

func TestReportHTML_ContainsReportSections(t *testing.T) {
	html, err := ReportHTML(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, html, "74 / 100")
	assert.Contains(t, html, "Python, SQL")
	assert.Contains(t, html, "Data Analyst")
	assert.Contains(t, html, "Match score: 2")
	assert.Contains(t, html, "tableau")
	assert.Contains(t, html, "Helped the team")
	assert.Contains(t, html, "Jane Doe")
}

func TestReportHTML_EmptyReport(t *testing.T) {
	html, err := ReportHTML(&pipeline.Report{})
	require.NoError(t, err)
	assert.Contains(t, html, "No recognized skills found")
}

func TestReportHTML_EscapesResumeText(t *testing.T) {
	report := sampleReport()
	report.ResumeText = "<script>alert(1)</script>"

	html, err := ReportHTML(report)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestBulletText(t *testing.T) {
	got := BulletText([]string{"delivered the rollout", "", "  cut costs by 10%  "})
	assert.Equal(t, "• delivered the rollout\n• cut costs by 10%\n", got)
}

func TestBulletText_Empty(t *testing.T) {
	assert.Empty(t, BulletText(nil))
}
