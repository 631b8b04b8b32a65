package domain

// PriceInfo represents a price extracted from a marketplace product page
type PriceInfo struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Title    string  `json:"title,omitempty"`
}
