package services

import (
	"bytes"
	"fmt"
	"html/template"

	"law_office_app_go/models"
)

var caseReportTemplate = template.Must(template.New("case_report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: "Times New Roman", serif; font-size: 12pt; color: #1a1a1a; }
  h1 { font-size: 16pt; border-bottom: 2px solid #1a1a1a; padding-bottom: 6px; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th { text-align: left; width: 30%; padding: 6px 8px; background: #f0f0f0; }
  td { padding: 6px 8px; border-bottom: 1px solid #ddd; }
  .notes { margin-top: 20px; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>Case Report — {{.Case.CaseNumber}}</h1>
<table>
  <tr><th>Title</th><td>{{.Case.Title}}</td></tr>
  <tr><th>Court</th><td>{{.Case.Court}}</td></tr>
  <tr><th>Type</th><td>{{.Case.Type}}</td></tr>
  <tr><th>Status</th><td>{{.Case.Status}}</td></tr>
  <tr><th>Start Date</th><td>{{.StartDate}}</td></tr>
  <tr><th>Client</th><td>{{.Case.Client.Name}}</td></tr>
  <tr><th>Client Phone</th><td>{{.Case.Client.Phone}}</td></tr>
  <tr><th>Client Email</th><td>{{.Case.Client.Email}}</td></tr>
</table>
{{if .Case.Notes}}<div class="notes"><strong>Notes</strong><br>{{.Case.Notes}}</div>{{end}}
</body>
</html>`))

// BuildCaseReportHTML renders the printable summary for a single case.
// The case must have its client preloaded.
func BuildCaseReportHTML(caseRecord *models.Case) (string, error) {
	data := struct {
		Case      *models.Case
		StartDate string
	}{
		Case:      caseRecord,
		StartDate: caseRecord.StartDate.Format("2006-01-02"),
	}

	var buf bytes.Buffer
	if err := caseReportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render case report: %w", err)
	}
	return buf.String(), nil
}
