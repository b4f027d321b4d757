package service

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ubelabs/expense-tracker/internal/models"
)

type fakeStore struct {
	budgets      []models.BudgetRow
	savings      []models.SavingsRow
	transactions []models.TransactionRow
	budgetErr    error
}

func (f *fakeStore) NotificationBudgetRows() ([]models.BudgetRow, error) {
	return f.budgets, f.budgetErr
}

func (f *fakeStore) NotificationSavingsRows() ([]models.SavingsRow, error) {
	return f.savings, nil
}

func (f *fakeStore) NotificationUnresolvedExpenseRows() ([]models.TransactionRow, error) {
	return f.transactions, nil
}

type fakeSender struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeSender) Send(to, subject, htmlBody string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to)
	return nil
}

func testReportService(store *fakeStore, sender *fakeSender, t *testing.T) *ReportService {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewReportService(store, sender, logger, testLocation(t))
}

func TestReportAggregatorGroupsByEmail(t *testing.T) {
	agg := newReportAggregator()
	agg.addBudget("alice@example.com", "alice", models.DueBudget{Name: "Groceries"})
	agg.addSaving("bob@example.com", "bob", models.DueSaving{Name: "Vacation"})
	agg.addOverdue("alice@example.com", "alice", models.OverdueTransaction{Name: "Rent"})

	reports := agg.reports()
	require.Len(t, reports, 2)

	alice := reports[0]
	assert.Equal(t, "alice@example.com", alice.Email)
	assert.Equal(t, "alice", alice.Username)
	require.Len(t, alice.Budgets, 1)
	require.Len(t, alice.Overdue, 1)
	assert.Nil(t, alice.Savings)
	assert.Nil(t, alice.Upcoming)

	bob := reports[1]
	require.Len(t, bob.Savings, 1)
	assert.Nil(t, bob.Budgets)
}

func TestReportRunSkipsUsersWithNothingDue(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 8, 10, 8, 0, 0, 0, loc)

	store := &fakeStore{
		budgets: []models.BudgetRow{
			// inside the 7-day window
			{Username: "alice", Email: "alice@example.com", Name: "Groceries", AmountLimit: 500, AmountUsed: 100, EndDate: now.AddDate(0, 0, 3)},
			// outside the window, carol gets no email
			{Username: "carol", Email: "carol@example.com", Name: "Travel", AmountLimit: 800, AmountUsed: 50, EndDate: now.AddDate(0, 0, 20)},
		},
		transactions: []models.TransactionRow{
			{Username: "alice", Email: "alice@example.com", Sequence: 1, Name: "Rent", Type: models.TypeExpense, Date: now.AddDate(0, 0, -2)},
		},
	}
	sender := &fakeSender{}

	summary := testReportService(store, sender, t).Run(now)

	assert.Equal(t, 1, summary.Recipients)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, []string{"alice@example.com"}, sender.sent)
}

func TestReportRunAggregatesDeliveryFailures(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 8, 10, 8, 0, 0, 0, loc)

	store := &fakeStore{
		budgets: []models.BudgetRow{
			{Username: "alice", Email: "alice@example.com", Name: "Groceries", AmountLimit: 500, AmountUsed: 100, EndDate: now.AddDate(0, 0, 3)},
			{Username: "bob", Email: "bob@example.com", Name: "Gas", AmountLimit: 100, AmountUsed: 90, EndDate: now.AddDate(0, 0, 5)},
		},
	}
	sender := &fakeSender{failFor: map[string]error{
		"bob@example.com": errors.New("smtp: connection refused"),
	}}

	summary := testReportService(store, sender, t).Run(now)

	assert.Equal(t, 2, summary.Recipients)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "bob@example.com", summary.Failures[0].Email)
	assert.Contains(t, summary.Failures[0].Reason, "connection refused")
}

func TestReportRunSurvivesFetchFailure(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 8, 10, 8, 0, 0, 0, loc)

	// budget fetch fails, the savings category still goes out
	store := &fakeStore{
		budgetErr: errors.New("db down"),
		savings: []models.SavingsRow{
			{Username: "alice", Email: "alice@example.com", Name: "Vacation", CurrentAmount: 100, TargetAmount: 500, Deadline: now.AddDate(0, 0, 2)},
		},
	}
	sender := &fakeSender{}

	summary := testReportService(store, sender, t).Run(now)

	assert.Equal(t, 1, summary.Recipients)
	assert.Equal(t, 1, summary.Sent)
}
