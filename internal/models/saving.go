package models

import "time"

// Saving represents a savings goal. Amounts are stored in USD.
type Saving struct {
	ID            int64
	UserID        int64
	Sequence      int64
	Name          string
	Description   *string
	CurrentAmount float64
	TargetAmount  float64
	Deadline      time.Time
}

// SavingView is a savings goal as presented to the user, with amounts
// converted to the preferred currency.
type SavingView struct {
	Sequence      int64   `json:"sequence"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	CurrentAmount float64 `json:"current_amount"`
	TargetAmount  float64 `json:"target_amount"`
	Deadline      string  `json:"deadline"`
	Progress      float64 `json:"progress"`
}
