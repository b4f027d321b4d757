package service

import (
	"bytes"
	"html/template"

	"github.com/ubelabs/expense-tracker/internal/models"
)

// ReportSubject is the subject line of the daily deadline email
const ReportSubject = "Your deadlines for the week"

const reportHTML = `<html>
<body>
<h2>Hi {{.Username}}, here is what needs your attention</h2>
{{if .Budgets}}
<h3>Budgets ending soon</h3>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Name</th><th>End Date</th><th>Progress</th><th>Days Until Due</th></tr>
{{range .Budgets}}<tr><td>{{.Name}}</td><td>{{.EndDate}}</td><td>{{printf "%.2f" .Progress}}%</td><td>{{.DaysUntilDue}}</td></tr>
{{end}}</table>
{{end}}
{{if .Savings}}
<h3>Savings deadlines approaching</h3>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Name</th><th>Deadline</th><th>Progress</th><th>Days Until Due</th></tr>
{{range .Savings}}<tr><td>{{.Name}}</td><td>{{.Deadline}}</td><td>{{printf "%.2f" .Progress}}%</td><td>{{.DaysUntilDue}}</td></tr>
{{end}}</table>
{{end}}
{{if .Upcoming}}
<h3>Expenses due soon</h3>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Name</th><th>Date</th><th>Days Until Due</th></tr>
{{range .Upcoming}}<tr><td>{{.Name}}</td><td>{{.Deadline}}</td><td>{{.DaysUntilDue}}</td></tr>
{{end}}</table>
{{end}}
{{if .Overdue}}
<h3>Overdue expenses</h3>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Name</th><th>Date</th><th>Days Overdue</th></tr>
{{range .Overdue}}<tr><td>{{.Name}}</td><td>{{.Deadline}}</td><td>{{.DaysOverdue}}</td></tr>
{{end}}</table>
{{end}}
<p>Best regards,<br>Ube's Expense Tracker</p>
</body>
</html>`

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

// RenderReport formats one recipient's report as an HTML email body.
// Tables are emitted only for non-empty categories; an empty report
// still renders the greeting.
func RenderReport(report *models.UserReport) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, report); err != nil {
		return "", err
	}
	return buf.String(), nil
}
