package models

// Category classifies transactions
type Category struct {
	ID   int64  `json:"category_id"`
	Name string `json:"category_name"`
	Type string `json:"category_type"`
}
