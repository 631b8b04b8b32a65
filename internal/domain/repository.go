package domain

import (
	"context"
	"io"
	"time"
)

// CacheRepository is the cache surface the resolver needs. Concrete
// caches may offer more (deletion, existence checks) for operational use.
type CacheRepository interface {
	Get(ctx context.Context, key string) (*SearchResult, error)
	Set(ctx context.Context, key string, value *SearchResult, ttl time.Duration) error
}

// SearchClient defines the interface for the Google Custom Search API
type SearchClient interface {
	Search(ctx context.Context, query string) (*GoogleSearchResponse, error)
}

// PriceExtractor defines the interface for scraping a price from a product page
type PriceExtractor interface {
	ExtractPrice(ctx context.Context, pageURL string) (*PriceInfo, error)
}

// ProductReader defines the interface for reading product names from a
// spreadsheet, either on disk or from an uploaded stream
type ProductReader interface {
	ReadProducts(path string) ([]string, error)
	ReadProductsFrom(r io.Reader) ([]string, error)
}
