package models

// DueBudget is a budget whose end date falls inside the lookahead window
type DueBudget struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	EndDate      string  `json:"end_date"`
	Progress     float64 `json:"progress"`
	DaysUntilDue int     `json:"days_until_due"`
}

// DueSaving is a savings goal whose deadline falls inside the lookahead window
type DueSaving struct {
	Sequence     int64   `json:"sequence"`
	Name         string  `json:"name"`
	Deadline     string  `json:"deadline"`
	Progress     float64 `json:"progress"`
	DaysUntilDue int     `json:"days_until_due"`
}

// DueTransaction is an unresolved expense due inside the lookahead window
type DueTransaction struct {
	Sequence     int64  `json:"sequence"`
	Name         string `json:"name"`
	Deadline     string `json:"deadline"`
	DaysUntilDue int    `json:"days_until_due"`
}

// OverdueTransaction is an unresolved expense whose date has passed
type OverdueTransaction struct {
	Sequence    int64  `json:"sequence"`
	Name        string `json:"name"`
	Deadline    string `json:"deadline"`
	DaysOverdue int    `json:"days_overdue"`
}

// DeadlineSummary is the dashboard deadlines payload. Categories with no
// rows stay nil and are omitted from the JSON response.
type DeadlineSummary struct {
	DueBudgets                 []DueBudget          `json:"due_budgets,omitempty"`
	DueSavings                 []DueSaving          `json:"due_savings,omitempty"`
	DueExpenseTransactions     []DueTransaction     `json:"due_expense_transactions,omitempty"`
	OverdueExpenseTransactions []OverdueTransaction `json:"overdue_expense_transactions,omitempty"`
}

// TypeTotal is a month-to-date total for one transaction type
type TypeTotal struct {
	Type        string  `json:"type"`
	TotalAmount float64 `json:"total_amount"`
}

// CategoryTotal is a month-to-date expense total for one category
type CategoryTotal struct {
	Name        string  `json:"name"`
	TotalAmount float64 `json:"total_amount"`
}

// TopExpense is one of the largest expenses of the current month
type TopExpense struct {
	Sequence int64   `json:"sequence"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// DayExpense is the summed resolved-expense amount for one day of the month
type DayExpense struct {
	Day                int     `json:"day"`
	TotalExpenseAmount float64 `json:"total_expense_amount"`
}

// DayIncome is the summed income amount for one day of the month
type DayIncome struct {
	Day               int     `json:"day"`
	TotalIncomeAmount float64 `json:"total_income_amount"`
}

// MonthlySummary is the pie/category/top-3 part of the monthly payload
type MonthlySummary struct {
	IncomeAndExpensePie []TypeTotal     `json:"income_and_expense_pie,omitempty"`
	ExpenseByCategory   []CategoryTotal `json:"expense_by_category,omitempty"`
	TopThreeExpenses    []TopExpense    `json:"top_three_expenses,omitempty"`
}

// RunChart carries the per-day series for the current month. DayList is
// populated only when at least one of the two series has data.
type RunChart struct {
	ExpensesPerDay []DayExpense `json:"expenses_per_day,omitempty"`
	IncomePerDay   []DayIncome  `json:"income_per_day,omitempty"`
	DayList        []int        `json:"day_list,omitempty"`
}
