package web

import (
	"html/template"
)

// field is one categorical selector on the page.
type field struct {
	Name     string
	Label    string
	Options  []string
	Selected string
}

type score struct {
	Name  string
	Label string
	Value int
}

type pageData struct {
	Fields []field
	Scores []score
	Result *resultView
	Error  string
}

type resultView struct {
	Pass        bool
	Headline    string
	Probability string
	Percent     int
	Tier        string
	Message     string
}

var pageTemplate = template.Must(template.New("index.html").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Student Pass/Fail Predictor</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; color: #1e293b; }
label { display: block; margin-top: .75rem; font-weight: 600; }
select, input[type=number] { width: 100%; padding: .3rem; }
.pass { color: #15803d; } .fail { color: #be123c; }
.bar { background: #e2e8f0; height: 1rem; } .bar div { background: #14b8a6; height: 1rem; }
.error { color: #be123c; }
</style>
</head>
<body>
<h1>🎓 Student Pass/Fail Prediction</h1>
<p>Predicts whether a student is likely to pass or fail based on exam scores and background.</p>
<form method="post" action="/">
<h2>📋 Student Info</h2>
{{range .Fields}}
<label for="{{.Name}}">{{.Label}}</label>
<select id="{{.Name}}" name="{{.Name}}">
{{- $sel := .Selected}}{{range .Options}}
<option value="{{.}}"{{if eq . $sel}} selected{{end}}>{{.}}</option>{{end}}
</select>
{{end}}
<h2>✏️ Exam Scores</h2>
{{range .Scores}}
<label for="{{.Name}}">{{.Label}}</label>
<input type="number" id="{{.Name}}" name="{{.Name}}" min="0" max="100" value="{{.Value}}">
{{end}}
<p><button type="submit">Predict</button></p>
</form>
{{with .Error}}<p class="error">{{.}}</p>{{end}}
{{with .Result}}
<h2>🔍 Prediction Result</h2>
<p class="{{if .Pass}}pass{{else}}fail{{end}}"><strong>{{.Headline}}</strong></p>
<p>P(pass): {{.Probability}}</p>
<div class="bar"><div style="width: {{.Percent}}%"></div></div>
<p>{{.Message}}</p>
{{end}}
</body>
</html>
`))
