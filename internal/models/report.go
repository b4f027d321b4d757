package models

import "time"

// BudgetRow is a budget joined with its owner's identity, as fetched for
// deadline classification and report grouping.
type BudgetRow struct {
	Username    string
	Email       string
	ID          int64
	Name        string
	AmountLimit float64
	AmountUsed  float64
	EndDate     time.Time
}

// SavingsRow is a savings goal joined with its owner's identity
type SavingsRow struct {
	Username      string
	Email         string
	Sequence      int64
	Name          string
	CurrentAmount float64
	TargetAmount  float64
	Deadline      time.Time
}

// TransactionRow is a transaction joined with its owner's identity and
// category name
type TransactionRow struct {
	Username string
	Email    string
	Sequence int64
	Name     string
	Amount   float64
	Type     string
	Date     time.Time
	Resolved bool
	Category string
}

// UserReport groups everything due or overdue for one recipient. Category
// lists stay nil until the first matching row arrives; a table is only
// rendered for a non-nil list.
type UserReport struct {
	Email    string
	Username string
	Budgets  []DueBudget
	Savings  []DueSaving
	Upcoming []DueTransaction
	Overdue  []OverdueTransaction
}

// SendFailure records one recipient the report could not be delivered to
type SendFailure struct {
	Email  string
	Reason string
}

// RunSummary is the outcome of one scheduled report run
type RunSummary struct {
	Recipients int
	Sent       int
	Failed     int
	Failures   []SendFailure
}
