package models

import "time"

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction represents an income or expense entry. Amounts are stored
// in USD. Resolved and BudgetID carry expense-only semantics.
type Transaction struct {
	ID          int64
	UserID      int64
	Sequence    int64
	Name        string
	Description *string
	Amount      float64
	Type        string
	Date        time.Time
	Resolved    bool
	CategoryID  int64
	BudgetID    *int64
}

// TransactionView is a transaction as presented to the user, joined with
// its category and budget names and converted to the preferred currency.
type TransactionView struct {
	Sequence    int64   `json:"sequence"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Resolved    bool    `json:"resolved"`
	Category    string  `json:"category"`
	Budget      *string `json:"budget"`
}
