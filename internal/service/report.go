package service

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ubelabs/expense-tracker/internal/models"
)

// ReportStore provides the notification row fetches for the daily report
type ReportStore interface {
	NotificationBudgetRows() ([]models.BudgetRow, error)
	NotificationSavingsRows() ([]models.SavingsRow, error)
	NotificationUnresolvedExpenseRows() ([]models.TransactionRow, error)
}

// MailSender delivers one report email
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

// ReportService assembles and mails the daily deadline report
type ReportService struct {
	store  ReportStore
	sender MailSender
	log    *logrus.Logger
	loc    *time.Location
}

// NewReportService initializes a new report service
func NewReportService(store ReportStore, sender MailSender, log *logrus.Logger, loc *time.Location) *ReportService {
	return &ReportService{store: store, sender: sender, log: log, loc: loc}
}

// reportAggregator groups flat rows into one report per recipient email.
// Category lists are created lazily on the first matching row, so a user
// with nothing due never gets an entry. Input order is preserved within
// each list; no dedup key is applied.
type reportAggregator struct {
	order   []string
	byEmail map[string]*models.UserReport
}

func newReportAggregator() *reportAggregator {
	return &reportAggregator{byEmail: make(map[string]*models.UserReport)}
}

func (a *reportAggregator) entry(email, username string) *models.UserReport {
	if report, ok := a.byEmail[email]; ok {
		return report
	}
	report := &models.UserReport{Email: email, Username: username}
	a.byEmail[email] = report
	a.order = append(a.order, email)
	return report
}

func (a *reportAggregator) addBudget(email, username string, due models.DueBudget) {
	report := a.entry(email, username)
	report.Budgets = append(report.Budgets, due)
}

func (a *reportAggregator) addSaving(email, username string, due models.DueSaving) {
	report := a.entry(email, username)
	report.Savings = append(report.Savings, due)
}

func (a *reportAggregator) addUpcoming(email, username string, due models.DueTransaction) {
	report := a.entry(email, username)
	report.Upcoming = append(report.Upcoming, due)
}

func (a *reportAggregator) addOverdue(email, username string, overdue models.OverdueTransaction) {
	report := a.entry(email, username)
	report.Overdue = append(report.Overdue, overdue)
}

func (a *reportAggregator) reports() []*models.UserReport {
	result := make([]*models.UserReport, 0, len(a.order))
	for _, email := range a.order {
		result = append(result, a.byEmail[email])
	}
	return result
}

// Run executes one report pass: fetch, classify against a 7-day window,
// group per recipient, render, and send. Each fetch block is guarded
// independently, so a failed query skips that category rather than the
// run. Delivery outcomes are aggregated into the returned summary.
func (r *ReportService) Run(now time.Time) models.RunSummary {
	agg := newReportAggregator()

	if rows, err := r.store.NotificationBudgetRows(); err != nil {
		r.log.Errorf("Daily report: budget fetch failed: %v", err)
	} else {
		for _, row := range rows {
			if due, ok := classifyBudget(row, now, ReportWindowDays, r.loc); ok {
				agg.addBudget(row.Email, row.Username, due)
			}
		}
	}

	if rows, err := r.store.NotificationSavingsRows(); err != nil {
		r.log.Errorf("Daily report: savings fetch failed: %v", err)
	} else {
		for _, row := range rows {
			if due, ok := classifySaving(row, now, ReportWindowDays, r.loc); ok {
				agg.addSaving(row.Email, row.Username, due)
			}
		}
	}

	if rows, err := r.store.NotificationUnresolvedExpenseRows(); err != nil {
		r.log.Errorf("Daily report: transaction fetch failed: %v", err)
	} else {
		for _, row := range rows {
			if due, ok := classifyDueTransaction(row, now, ReportWindowDays, r.loc); ok {
				agg.addUpcoming(row.Email, row.Username, due)
				continue
			}
			if overdue, ok := classifyOverdueTransaction(row, now, r.loc); ok {
				agg.addOverdue(row.Email, row.Username, overdue)
			}
		}
	}

	var summary models.RunSummary
	for _, report := range agg.reports() {
		summary.Recipients++
		body, err := RenderReport(report)
		if err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, models.SendFailure{Email: report.Email, Reason: err.Error()})
			continue
		}
		if err := r.sender.Send(report.Email, ReportSubject, body); err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, models.SendFailure{Email: report.Email, Reason: err.Error()})
			continue
		}
		summary.Sent++
	}

	r.log.Infof("Daily report finished: %d recipients, %d sent, %d failed", summary.Recipients, summary.Sent, summary.Failed)
	return summary
}
