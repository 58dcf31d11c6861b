package rendering

import (
	"html/template"
	"strings"

	"github.com/mateo/resume-checkup/internal/pipeline"
)

// reportTemplate lays out the scan report. Kept intentionally simple: the
// PDF printer renders exactly what the browser would show.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Resume Checkup Report</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 2em; color: #222; }
  h1 { border-bottom: 2px solid #444; padding-bottom: 0.2em; }
  h2 { margin-top: 1.4em; }
  .score { font-size: 1.6em; font-weight: bold; }
  .job { margin-bottom: 1.2em; padding: 0.6em; border: 1px solid #ddd; }
  .job .meta { color: #666; font-size: 0.9em; }
  .matched { color: #2e7d32; }
  .missing { color: #c62828; }
  .flags { color: #c62828; font-size: 0.9em; }
  .rewrite { color: #2e7d32; }
  ul { margin: 0.4em 0; }
  pre { background: #f6f6f6; padding: 0.8em; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>Resume Checkup Report</h1>

<h2>Strength Score</h2>
<p class="score">{{.StrengthScore}} / 100</p>

<h2>Extracted Skills</h2>
{{if .Skills}}<p>{{join .Skills ", "}}</p>{{else}}<p>No recognized skills found.</p>{{end}}

<h2>Top Matching Jobs</h2>
{{range .Matches}}
<div class="job">
  <strong>{{.Job.Title}}</strong> at {{.Job.Company}}
  <div class="meta">{{.Job.Location}} &middot; <a href="{{.Job.URL}}">View posting</a> &middot; Match score: {{.Score}}</div>
  {{if .Matched}}<div class="matched">Matched: {{join .Matched ", "}}</div>{{end}}
  {{if .Missing}}<div class="missing">Missing: {{join .Missing ", "}}</div>{{end}}
  {{if .Suggestions}}
  <ul>
    {{range .Suggestions}}<li>{{.}}</li>{{end}}
  </ul>
  {{end}}
</div>
{{end}}

{{if .BulletFeedback}}
<h2>Bullet Feedback</h2>
<ul>
  {{range .BulletFeedback}}
  <li>
    {{.Line}}
    <div class="flags">{{range .Flags}}{{.}} {{end}}</div>
    {{if .Rewrite}}<div class="rewrite">Try: {{.Rewrite}}</div>{{end}}
  </li>
  {{end}}
</ul>
{{end}}

{{if .ResumeText}}
<h2>Resume Text</h2>
<pre>{{.ResumeText}}</pre>
{{end}}
</body>
</html>`

var reportTmpl = template.Must(
	template.New("report").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(reportTemplate))

// ReportHTML renders the scan report as a standalone HTML document.
func ReportHTML(report *pipeline.Report) (string, error) {
	var sb strings.Builder
	if err := reportTmpl.Execute(&sb, report); err != nil {
		return "", &RenderError{Stage: "html template", Cause: err}
	}
	return sb.String(), nil
}
