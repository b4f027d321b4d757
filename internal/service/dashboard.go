package service

import (
	"sort"
	"time"

	"github.com/ubelabs/expense-tracker/internal/models"
	"github.com/ubelabs/expense-tracker/internal/utils"
)

// Lookahead windows in days
const (
	DashboardWindowDays = 30
	ReportWindowDays    = 7
)

// DeadlineSummary classifies the user's budgets, savings, and unresolved
// expenses against a 30-day lookahead window. The "now" snapshot is
// taken once; rows come from separate queries with no cross-query
// snapshot, which is acceptable for advisory reporting.
func (s *Service) DeadlineSummary(username string) (*models.DeadlineSummary, error) {
	now := time.Now()
	summary := &models.DeadlineSummary{}

	budgets, err := s.repo.BudgetRows(username)
	if err != nil {
		return nil, err
	}
	for _, row := range budgets {
		if due, ok := classifyBudget(row, now, DashboardWindowDays, s.loc); ok {
			summary.DueBudgets = append(summary.DueBudgets, due)
		}
	}

	savings, err := s.repo.SavingsRows(username)
	if err != nil {
		return nil, err
	}
	for _, row := range savings {
		if due, ok := classifySaving(row, now, DashboardWindowDays, s.loc); ok {
			summary.DueSavings = append(summary.DueSavings, due)
		}
	}

	expenses, err := s.repo.UnresolvedExpenseRows(username)
	if err != nil {
		return nil, err
	}
	for _, row := range expenses {
		if due, ok := classifyDueTransaction(row, now, DashboardWindowDays, s.loc); ok {
			summary.DueExpenseTransactions = append(summary.DueExpenseTransactions, due)
			continue
		}
		if overdue, ok := classifyOverdueTransaction(row, now, s.loc); ok {
			summary.OverdueExpenseTransactions = append(summary.OverdueExpenseTransactions, overdue)
		}
	}

	s.logEmptyDeadlineCategories(username, summary)
	return summary, nil
}

// logEmptyDeadlineCategories notes every category that came back empty.
// An empty result is informational, not an error.
func (s *Service) logEmptyDeadlineCategories(username string, summary *models.DeadlineSummary) {
	if summary.DueBudgets == nil {
		s.log.Infof("No budgets due soon for %s", username)
	}
	if summary.DueSavings == nil {
		s.log.Infof("No savings due soon for %s", username)
	}
	if summary.DueExpenseTransactions == nil && summary.OverdueExpenseTransactions == nil {
		s.log.Infof("No expense transactions due or overdue for %s", username)
	}
}

// inWindow reports whether deadline falls inside [now, now + window
// days], inclusive on both ends.
func inWindow(deadline, now time.Time, windowDays int) bool {
	windowEnd := now.Add(time.Duration(windowDays) * 24 * time.Hour)
	return !deadline.Before(now) && !deadline.After(windowEnd)
}

func classifyBudget(row models.BudgetRow, now time.Time, windowDays int, loc *time.Location) (models.DueBudget, bool) {
	if !inWindow(row.EndDate, now, windowDays) {
		return models.DueBudget{}, false
	}
	return models.DueBudget{
		ID:           row.ID,
		Name:         row.Name,
		EndDate:      utils.FormatDate(row.EndDate, loc),
		Progress:     utils.Progress(row.AmountUsed, row.AmountLimit),
		DaysUntilDue: utils.DaysBetween(now, row.EndDate, loc),
	}, true
}

func classifySaving(row models.SavingsRow, now time.Time, windowDays int, loc *time.Location) (models.DueSaving, bool) {
	if !inWindow(row.Deadline, now, windowDays) {
		return models.DueSaving{}, false
	}
	return models.DueSaving{
		Sequence:     row.Sequence,
		Name:         row.Name,
		Deadline:     utils.FormatDate(row.Deadline, loc),
		Progress:     utils.Progress(row.CurrentAmount, row.TargetAmount),
		DaysUntilDue: utils.DaysBetween(now, row.Deadline, loc),
	}, true
}

func classifyDueTransaction(row models.TransactionRow, now time.Time, windowDays int, loc *time.Location) (models.DueTransaction, bool) {
	if row.Type != models.TypeExpense || row.Resolved || !inWindow(row.Date, now, windowDays) {
		return models.DueTransaction{}, false
	}
	return models.DueTransaction{
		Sequence:     row.Sequence,
		Name:         row.Name,
		Deadline:     utils.FormatDate(row.Date, loc),
		DaysUntilDue: utils.DaysBetween(now, row.Date, loc),
	}, true
}

// classifyOverdueTransaction is strict: a deadline equal to now is due,
// not overdue.
func classifyOverdueTransaction(row models.TransactionRow, now time.Time, loc *time.Location) (models.OverdueTransaction, bool) {
	if row.Type != models.TypeExpense || row.Resolved || !row.Date.Before(now) {
		return models.OverdueTransaction{}, false
	}
	return models.OverdueTransaction{
		Sequence:    row.Sequence,
		Name:        row.Name,
		Deadline:    utils.FormatDate(row.Date, loc),
		DaysOverdue: utils.DaysBetween(row.Date, now, loc),
	}, true
}

// MonthlySummary builds the month-to-date totals and per-day series for
// the user's current calendar month, converted to the user's preferred
// currency.
func (s *Service) MonthlySummary(username string) (*models.MonthlySummary, *models.RunChart, error) {
	user, err := s.repo.FindUserByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	currency, err := s.repo.GetCurrency(user.CurrencyCode)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	from, to := utils.MonthBounds(now, s.loc)
	rows, err := s.repo.MonthTransactionRows(username, from, to)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		s.log.Infof("No transactions recorded this month for %s", username)
	}

	summary, chart := buildMonthlySummary(rows, currency.DollarToCurrency, now, s.loc)
	return summary, chart, nil
}

// buildMonthlySummary is the pure monthly aggregation. Sums are
// accumulated in USD and the rate is applied once per aggregate, so
// repeated per-row rounding cannot accumulate drift. Top-3 ordering is
// decided on USD amounts, which preserves order for any rate > 0.
func buildMonthlySummary(rows []models.TransactionRow, rate float64, now time.Time, loc *time.Location) (*models.MonthlySummary, *models.RunChart) {
	typeTotals := make(map[string]float64)
	categoryTotals := make(map[string]float64)
	expensePerDay := make(map[int]float64)
	incomePerDay := make(map[int]float64)
	var typeOrder, categoryOrder []string
	var expenses []models.TransactionRow

	for _, row := range rows {
		if _, seen := typeTotals[row.Type]; !seen {
			typeOrder = append(typeOrder, row.Type)
		}
		typeTotals[row.Type] += row.Amount

		day := row.Date.In(loc).Day()
		switch row.Type {
		case models.TypeExpense:
			if _, seen := categoryTotals[row.Category]; !seen {
				categoryOrder = append(categoryOrder, row.Category)
			}
			categoryTotals[row.Category] += row.Amount
			expenses = append(expenses, row)
			if row.Resolved {
				expensePerDay[day] += row.Amount
			}
		case models.TypeIncome:
			incomePerDay[day] += row.Amount
		}
	}

	summary := &models.MonthlySummary{}
	for _, t := range typeOrder {
		summary.IncomeAndExpensePie = append(summary.IncomeAndExpensePie, models.TypeTotal{
			Type:        t,
			TotalAmount: utils.Convert(typeTotals[t], rate),
		})
	}
	for _, name := range categoryOrder {
		summary.ExpenseByCategory = append(summary.ExpenseByCategory, models.CategoryTotal{
			Name:        name,
			TotalAmount: utils.Convert(categoryTotals[name], rate),
		})
	}

	// stable sort keeps the original row order between equal amounts
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount > expenses[j].Amount
	})
	if len(expenses) > 3 {
		expenses = expenses[:3]
	}
	for _, e := range expenses {
		summary.TopThreeExpenses = append(summary.TopThreeExpenses, models.TopExpense{
			Sequence: e.Sequence,
			Name:     e.Name,
			Amount:   utils.Convert(e.Amount, rate),
			Date:     utils.FormatDate(e.Date, loc),
		})
	}

	chart := &models.RunChart{}
	lastDay := utils.LastDayOfMonth(now, loc)
	for day := 1; day <= lastDay; day++ {
		if total, ok := expensePerDay[day]; ok {
			chart.ExpensesPerDay = append(chart.ExpensesPerDay, models.DayExpense{
				Day:                day,
				TotalExpenseAmount: utils.Convert(total, rate),
			})
		}
		if total, ok := incomePerDay[day]; ok {
			chart.IncomePerDay = append(chart.IncomePerDay, models.DayIncome{
				Day:               day,
				TotalIncomeAmount: utils.Convert(total, rate),
			})
		}
	}
	if chart.ExpensesPerDay != nil || chart.IncomePerDay != nil {
		chart.DayList = make([]int, lastDay)
		for i := range chart.DayList {
			chart.DayList[i] = i + 1
		}
	}

	return summary, chart
}
