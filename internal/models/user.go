package models

// User represents a registered user in the system
type User struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"` // Not serialized
	FirstName    string  `json:"first_name"`
	Initial      *string `json:"initial"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Active       bool    `json:"active"`
	Notification bool    `json:"notification"`
	CurrencyCode string  `json:"currency_code"`
	CreatedAt    string  `json:"created_at"`
}
