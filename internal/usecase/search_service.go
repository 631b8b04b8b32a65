package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/pricescout/backend/internal/domain"
	"github.com/pricescout/backend/internal/infrastructure/google"
)

// Package-level compiled regex patterns for cache key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// sponsoredMarkers identify ad/redirect links that must never be
// treated as organic results
var sponsoredMarkers = []string{
	"googleadservices.com",
	"doubleclick.net",
	"/aclk?",
}

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL time.Duration
	// MinSimilarity is the title-similarity score below which a
	// product-page candidate is not preferred over later ones
	MinSimilarity float64
}

// SearchService resolves a product name to a marketplace product URL.
// Flow: check cache -> query Google -> pick best candidate -> cache -> return
type SearchService struct {
	cache         domain.CacheRepository
	searchClient  domain.SearchClient
	cacheTTL      time.Duration
	minSimilarity float64
}

// NewSearchService creates a new search service with dependencies
func NewSearchService(
	cache domain.CacheRepository,
	searchClient domain.SearchClient,
	config SearchServiceConfig,
) *SearchService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	minSimilarity := config.MinSimilarity
	if minSimilarity == 0 {
		minSimilarity = 0.4
	}

	return &SearchService{
		cache:         cache,
		searchClient:  searchClient,
		cacheTTL:      cacheTTL,
		minSimilarity: minSimilarity,
	}
}

// Resolve looks up the marketplace product page URL for a search request
func (s *SearchService) Resolve(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResult, error) {
	if request == nil || strings.TrimSpace(request.ProductName) == "" || strings.TrimSpace(request.Marketplace) == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := s.generateCacheKey(request)

	// Try cache first
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		cached.Source = "Cache"
		return cached, nil
	}

	query := fmt.Sprintf("%s %s", strings.TrimSpace(request.ProductName), strings.TrimSpace(request.Marketplace))
	searchResult, err := s.searchClient.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	marketplace := LookupMarketplace(request.Marketplace)

	candidate, err := selectCandidate(searchResult.Items, marketplace, request.ProductName, s.minSimilarity)
	if errors.Is(err, domain.ErrNoMarketplaceMatch) {
		// No result on the marketplace's own domain; fall back to the
		// top organic result so the redirect endpoint still lands somewhere useful.
		log.Printf("[Search] No %s link among %d results for %q, using top result",
			marketplace.Name, len(searchResult.Items), request.ProductName)
		candidate = &searchResult.Items[0]
	} else if err != nil {
		return nil, err
	}

	result := &domain.SearchResult{
		ProductName: request.ProductName,
		Marketplace: request.Marketplace,
		URL:         google.ExtractRealURL(candidate.Link),
		Title:       candidate.Title,
		Success:     true,
		Source:      "Google",
		ResolvedAt:  time.Now(),
	}

	if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
		log.Printf("[Search] Failed to cache result for %q: %v", cacheKey, err)
	}

	return result, nil
}

// selectCandidate picks the best result for the marketplace: product
// pages ranked by title similarity first, then category pages, then
// any link on the marketplace's domain. Sponsored links are skipped.
func selectCandidate(items []domain.GoogleSearchItem, marketplace Marketplace, productName string, minSimilarity float64) (*domain.GoogleSearchItem, error) {
	var (
		bestProduct      *domain.GoogleSearchItem
		bestProductScore float64
		firstCategory    *domain.GoogleSearchItem
		firstDomain      *domain.GoogleSearchItem
	)

	for i := range items {
		item := &items[i]
		link := google.ExtractRealURL(item.Link)

		if isSponsoredLink(link) {
			continue
		}
		if !marketplace.MatchesURL(link) {
			continue
		}

		if firstDomain == nil {
			firstDomain = item
		}

		switch {
		case marketplace.IsProductPage(link):
			score := Similarity(productName, item.Title)
			if bestProduct == nil || score > bestProductScore {
				bestProduct = item
				bestProductScore = score
			}
		case marketplace.IsCategoryPage(link):
			if firstCategory == nil {
				firstCategory = item
			}
		}
	}

	if bestProduct != nil {
		// A low-similarity product page still beats a category listing,
		// but it is worth flagging in the logs.
		if bestProductScore < minSimilarity {
			log.Printf("[Search] Best product page for %q has low title similarity (%.2f)", productName, bestProductScore)
		}
		return bestProduct, nil
	}
	if firstCategory != nil {
		return firstCategory, nil
	}
	if firstDomain != nil {
		return firstDomain, nil
	}

	return nil, domain.ErrNoMarketplaceMatch
}

// isSponsoredLink reports whether a link is an ad redirect
func isSponsoredLink(link string) bool {
	lower := strings.ToLower(link)
	for _, marker := range sponsoredMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// generateCacheKey creates a normalized cache key from a search request.
// Format: "search:{normalized_product_name}:{normalized_marketplace}"
func (s *SearchService) generateCacheKey(request *domain.SearchRequest) string {
	return fmt.Sprintf("search:%s:%s",
		normalizeForCacheKey(request.ProductName),
		normalizeForCacheKey(request.Marketplace))
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
