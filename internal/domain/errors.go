package domain

import "errors"

var (
	// ErrNoResults is returned when the search API returns no results at all
	ErrNoResults = errors.New("no search results found")

	// ErrNoMarketplaceMatch is returned when results exist but none belong to the requested marketplace
	ErrNoMarketplaceMatch = errors.New("no result matched the requested marketplace")

	// ErrSearchAPIFailure is returned when the Custom Search API request fails
	ErrSearchAPIFailure = errors.New("custom search API request failed")

	// ErrSearchAPITimeout is returned when the Custom Search API request times out
	ErrSearchAPITimeout = errors.New("custom search API request timed out")

	// ErrRateLimited is returned when a rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrPriceNotFound is returned when no price could be extracted from a page
	ErrPriceNotFound = errors.New("price not found on page")

	// ErrPageFetchFailure is returned when a product page cannot be fetched
	ErrPageFetchFailure = errors.New("product page fetch failed")

	// ErrSpreadsheetNotFound is returned when the batch input file does not exist
	ErrSpreadsheetNotFound = errors.New("spreadsheet file not found")

	// ErrSpreadsheetInvalid is returned when the batch input file cannot be parsed
	ErrSpreadsheetInvalid = errors.New("spreadsheet file could not be read")

	// ErrNoProducts is returned when the spreadsheet contains no product names
	ErrNoProducts = errors.New("no products found in spreadsheet")
)
