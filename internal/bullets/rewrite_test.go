package bullets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrite_SubstitutesWeakVerbs(t *testing.T) {
	got := Rewrite("Helped migrate 14 dashboards to Tableau Cloud")
	assert.Equal(t, "contributed to migrate 14 dashboards to Tableau Cloud", got)
}

func TestRewrite_MultiWordPhrase(t *testing.T) {
	got := Rewrite("Worked on the 2023 data warehouse rollout")
	assert.Equal(t, "delivered the 2023 data warehouse rollout", got)
}

func TestRewrite_WholeWordOnly(t *testing.T) {
	// "supported" inside another word must not be replaced.
	got := Rewrite("Unsupported formats rejected for 12 file types daily")
	assert.Equal(t, "Unsupported formats rejected for 12 file types daily", got)
}

func TestRewrite_AppendsMetricMarker(t *testing.T) {
	got := Rewrite("Helped migrate dashboards to Tableau Cloud")
	assert.Equal(t, "contributed to migrate dashboards to Tableau Cloud [quantify the impact]", got)
}

func TestRewrite_AppendsBothMarkers(t *testing.T) {
	got := Rewrite("Helped the team")
	assert.Equal(t, "contributed to the team [quantify the impact] [add more detail]", got)
}

func TestRewrite_StrongLineUntouched(t *testing.T) {
	line := "Led a cross-functional redesign that cut latency by 20%"
	assert.Equal(t, line, Rewrite(line))
}

func TestRewrite_Deterministic(t *testing.T) {
	line := "Participated in quarterly planning"
	assert.Equal(t, Rewrite(line), Rewrite(line))
}
