package service

import (
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ubelabs/expense-tracker/internal/models"
)

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return loc
}

func TestInWindowBoundaries(t *testing.T) {
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	windowEnd := now.Add(30 * 24 * time.Hour)

	assert.True(t, inWindow(now, now, 30), "deadline equal to now is due")
	assert.True(t, inWindow(windowEnd, now, 30), "deadline exactly at the window end is due")
	assert.False(t, inWindow(windowEnd.Add(time.Second), now, 30), "one second past the window is out")
	assert.False(t, inWindow(now.Add(-time.Second), now, 30), "a past deadline is out")
}

func TestClassifyBudget(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, loc)

	row := models.BudgetRow{
		ID:          7,
		Name:        "Groceries",
		AmountLimit: 500,
		AmountUsed:  200,
		EndDate:     time.Date(2026, 8, 15, 9, 0, 0, 0, loc),
	}

	due, ok := classifyBudget(row, now, 30, loc)
	require.True(t, ok)
	assert.Equal(t, int64(7), due.ID)
	assert.Equal(t, "Groceries", due.Name)
	assert.Equal(t, "Aug 15, 2026", due.EndDate)
	assert.Equal(t, 40.0, due.Progress)
	assert.Equal(t, 5, due.DaysUntilDue)

	row.EndDate = now.AddDate(0, 0, 45)
	_, ok = classifyBudget(row, now, 30, loc)
	assert.False(t, ok)
}

func TestClassifySaving(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, loc)

	row := models.SavingsRow{
		Sequence:      2,
		Name:          "Vacation",
		CurrentAmount: 400,
		TargetAmount:  300,
		Deadline:      now.AddDate(0, 0, 10),
	}

	due, ok := classifySaving(row, now, 30, loc)
	require.True(t, ok)
	assert.Equal(t, int64(2), due.Sequence)
	assert.Equal(t, 133.33, due.Progress, "progress past the target is not clamped")
	assert.Equal(t, 10, due.DaysUntilDue)
}

func TestClassifyTransactions(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, loc)

	upcoming := models.TransactionRow{
		Sequence: 4,
		Name:     "Rent",
		Type:     models.TypeExpense,
		Date:     now.AddDate(0, 0, 3),
	}
	due, ok := classifyDueTransaction(upcoming, now, 30, loc)
	require.True(t, ok)
	assert.Equal(t, 3, due.DaysUntilDue)

	// a resolved expense is never due
	resolved := upcoming
	resolved.Resolved = true
	_, ok = classifyDueTransaction(resolved, now, 30, loc)
	assert.False(t, ok)

	// overdue is strict: a deadline equal to now is due, not overdue
	atNow := upcoming
	atNow.Date = now
	_, ok = classifyOverdueTransaction(atNow, now, loc)
	assert.False(t, ok)
	_, ok = classifyDueTransaction(atNow, now, 30, loc)
	assert.True(t, ok)

	past := upcoming
	past.Date = now.AddDate(0, 0, -4)
	overdue, ok := classifyOverdueTransaction(past, now, loc)
	require.True(t, ok)
	assert.Equal(t, 4, overdue.DaysOverdue)

	// income rows never appear in either list
	income := upcoming
	income.Type = models.TypeIncome
	_, ok = classifyDueTransaction(income, now, 30, loc)
	assert.False(t, ok)
	income.Date = past.Date
	_, ok = classifyOverdueTransaction(income, now, loc)
	assert.False(t, ok)
}

func TestLogEmptyDeadlineCategories(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := &Service{log: logger}

	s.logEmptyDeadlineCategories("alice", &models.DeadlineSummary{})
	require.Len(t, hook.Entries, 3)
	var messages []string
	for _, entry := range hook.Entries {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "No budgets due soon for alice")
	assert.Contains(t, messages, "No savings due soon for alice")
	assert.Contains(t, messages, "No expense transactions due or overdue for alice")

	// an overdue expense alone still counts as a non-empty category
	hook.Reset()
	s.logEmptyDeadlineCategories("alice", &models.DeadlineSummary{
		DueBudgets:                 []models.DueBudget{{Name: "Groceries"}},
		OverdueExpenseTransactions: []models.OverdueTransaction{{Name: "Rent"}},
	})
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "No savings due soon for alice", hook.LastEntry().Message)
}

func TestBuildMonthlySummary(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, loc)

	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 10, 0, 0, 0, loc)
	}
	rows := []models.TransactionRow{
		{Sequence: 1, Name: "Salary", Amount: 3000, Type: models.TypeIncome, Date: day(1)},
		{Sequence: 2, Name: "Coffee", Amount: 10, Type: models.TypeExpense, Date: day(2), Resolved: true, Category: "Food"},
		{Sequence: 3, Name: "Shoes", Amount: 50, Type: models.TypeExpense, Date: day(3), Resolved: true, Category: "Shopping"},
		{Sequence: 4, Name: "Snacks", Amount: 5, Type: models.TypeExpense, Date: day(3), Resolved: true, Category: "Food"},
		{Sequence: 5, Name: "Gym", Amount: 50, Type: models.TypeExpense, Date: day(5), Category: "Health"},
		{Sequence: 6, Name: "Books", Amount: 30, Type: models.TypeExpense, Date: day(7), Resolved: true, Category: "Shopping"},
	}

	summary, chart := buildMonthlySummary(rows, 1.0, now, loc)

	require.Len(t, summary.IncomeAndExpensePie, 2)
	assert.Equal(t, models.TypeTotal{Type: models.TypeIncome, TotalAmount: 3000}, summary.IncomeAndExpensePie[0])
	assert.Equal(t, models.TypeTotal{Type: models.TypeExpense, TotalAmount: 145}, summary.IncomeAndExpensePie[1])

	require.Len(t, summary.ExpenseByCategory, 3)
	assert.Equal(t, models.CategoryTotal{Name: "Food", TotalAmount: 15}, summary.ExpenseByCategory[0])
	assert.Equal(t, models.CategoryTotal{Name: "Shopping", TotalAmount: 80}, summary.ExpenseByCategory[1])
	assert.Equal(t, models.CategoryTotal{Name: "Health", TotalAmount: 50}, summary.ExpenseByCategory[2])

	// ties keep input order: Shoes before Gym, both at 50
	require.Len(t, summary.TopThreeExpenses, 3)
	assert.Equal(t, "Shoes", summary.TopThreeExpenses[0].Name)
	assert.Equal(t, "Gym", summary.TopThreeExpenses[1].Name)
	assert.Equal(t, "Books", summary.TopThreeExpenses[2].Name)

	// unresolved Gym expense on day 5 is excluded from the per-day series
	assert.Equal(t, []models.DayExpense{
		{Day: 2, TotalExpenseAmount: 10},
		{Day: 3, TotalExpenseAmount: 55},
		{Day: 7, TotalExpenseAmount: 30},
	}, chart.ExpensesPerDay)
	assert.Equal(t, []models.DayIncome{{Day: 1, TotalIncomeAmount: 3000}}, chart.IncomePerDay)

	require.Len(t, chart.DayList, 31)
	assert.Equal(t, 1, chart.DayList[0])
	assert.Equal(t, 31, chart.DayList[30])
}

func TestBuildMonthlySummaryConvertsAggregates(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, loc)

	// three rows whose per-row conversions would each round; the aggregate
	// is converted once instead
	rows := []models.TransactionRow{
		{Sequence: 1, Name: "A", Amount: 10.01, Type: models.TypeExpense, Date: now, Resolved: true, Category: "Misc"},
		{Sequence: 2, Name: "B", Amount: 10.01, Type: models.TypeExpense, Date: now, Resolved: true, Category: "Misc"},
		{Sequence: 3, Name: "C", Amount: 10.01, Type: models.TypeExpense, Date: now, Resolved: true, Category: "Misc"},
	}

	summary, _ := buildMonthlySummary(rows, 0.333, now, loc)
	require.Len(t, summary.ExpenseByCategory, 1)
	assert.Equal(t, 10.0, summary.ExpenseByCategory[0].TotalAmount)
}

func TestBuildMonthlySummaryEmpty(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, loc)

	summary, chart := buildMonthlySummary(nil, 1.0, now, loc)
	assert.Nil(t, summary.IncomeAndExpensePie)
	assert.Nil(t, summary.ExpenseByCategory)
	assert.Nil(t, summary.TopThreeExpenses)
	assert.Nil(t, chart.ExpensesPerDay)
	assert.Nil(t, chart.IncomePerDay)
	assert.Nil(t, chart.DayList, "day list is omitted when no series has data")
}
