package models

// Currency represents a supported display currency. Stored amounts are
// always USD; DollarToCurrency is the multiplicative USD-to-target rate.
type Currency struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	Sign             string  `json:"sign"`
	DollarToCurrency float64 `json:"dollar_to_currency"`
}
