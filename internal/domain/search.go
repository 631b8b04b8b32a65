package domain

import "time"

// SearchRequest represents a single product lookup against a marketplace
type SearchRequest struct {
	ProductName string `json:"product_name"`
	Marketplace string `json:"marketplace"`
}

// SearchResult is the outcome of resolving one product to a marketplace URL.
// Success implies URL is set; failure implies Error is set.
type SearchResult struct {
	ProductName string     `json:"product_name"`
	Marketplace string     `json:"marketplace"`
	URL         string     `json:"url,omitempty"`
	Title       string     `json:"title,omitempty"`
	Price       *PriceInfo `json:"price,omitempty"`
	Success     bool       `json:"success"`
	Error       string     `json:"error,omitempty"`
	Source      string     `json:"source,omitempty"` // "Google" or "Cache"
	ResolvedAt  time.Time  `json:"resolved_at,omitempty"`
}

// BatchSummary aggregates the results of processing a spreadsheet of products
type BatchSummary struct {
	Status        string          `json:"status"`
	Marketplace   string          `json:"marketplace"`
	TotalProducts int             `json:"total_products"`
	Successful    int             `json:"successful"`
	Failed        int             `json:"failed"`
	Results       []*SearchResult `json:"results"`
}
