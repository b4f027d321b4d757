package models

import "time"

// Budget represents a spending budget. Amounts are stored in USD.
type Budget struct {
	ID          int64
	UserID      int64
	Sequence    int64
	Name        string
	Description *string
	AmountLimit float64
	AmountUsed  float64
	StartDate   time.Time
	EndDate     time.Time
}

// BudgetView is a budget as presented to the user, with amounts
// converted to the preferred currency and dates formatted.
type BudgetView struct {
	ID          int64   `json:"id"`
	Sequence    int64   `json:"sequence"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	AmountLimit float64 `json:"amount_limit"`
	AmountUsed  float64 `json:"amount_used"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Progress    float64 `json:"progress"`
}

// BudgetName is the id/name pair used by transaction forms
type BudgetName struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
