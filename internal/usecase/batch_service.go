package usecase

import (
	"context"
	"io"
	"log"

	"github.com/pricescout/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Resolver is the part of the search service the batch driver needs
type Resolver interface {
	Resolve(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResult, error)
}

// BatchServiceConfig holds configuration for batch processing
type BatchServiceConfig struct {
	Concurrency   int
	ExtractPrices bool
}

// BatchService processes a spreadsheet of product names against one
// marketplace with bounded concurrency. One product's failure never
// aborts the batch; it is recorded as a failed result instead.
type BatchService struct {
	resolver      Resolver
	extractor     domain.PriceExtractor
	reader        domain.ProductReader
	concurrency   int
	extractPrices bool
}

// NewBatchService creates a batch service with dependencies. extractor
// may be nil when price extraction is disabled.
func NewBatchService(
	resolver Resolver,
	extractor domain.PriceExtractor,
	reader domain.ProductReader,
	config BatchServiceConfig,
) *BatchService {
	concurrency := config.Concurrency
	if concurrency < 1 {
		concurrency = 5
	}

	return &BatchService{
		resolver:      resolver,
		extractor:     extractor,
		reader:        reader,
		concurrency:   concurrency,
		extractPrices: config.ExtractPrices && extractor != nil,
	}
}

// ProcessFile reads product names from the spreadsheet at path and processes them
func (b *BatchService) ProcessFile(ctx context.Context, path, marketplace string) (*domain.BatchSummary, error) {
	products, err := b.reader.ReadProducts(path)
	if err != nil {
		return nil, err
	}
	return b.Process(ctx, products, marketplace), nil
}

// ProcessReader reads product names from an uploaded spreadsheet and processes them
func (b *BatchService) ProcessReader(ctx context.Context, r io.Reader, marketplace string) (*domain.BatchSummary, error) {
	products, err := b.reader.ReadProductsFrom(r)
	if err != nil {
		return nil, err
	}
	return b.Process(ctx, products, marketplace), nil
}

// Process resolves every product concurrently and aggregates a summary
func (b *BatchService) Process(ctx context.Context, products []string, marketplace string) *domain.BatchSummary {
	log.Printf("[Batch] Processing %d products for marketplace %q (concurrency=%d, prices=%v)",
		len(products), marketplace, b.concurrency, b.extractPrices)

	results := make([]*domain.SearchResult, len(products))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, product := range products {
		g.Go(func() error {
			results[i] = b.processOne(gCtx, product, marketplace)
			return nil
		})
	}

	// Workers never return errors; Wait is only a join point
	_ = g.Wait()

	summary := &domain.BatchSummary{
		Status:        "completed",
		Marketplace:   marketplace,
		TotalProducts: len(products),
		Results:       results,
	}
	for _, result := range results {
		if result.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	log.Printf("[Batch] Completed: %d total, %d successful, %d failed",
		summary.TotalProducts, summary.Successful, summary.Failed)

	return summary
}

// processOne resolves a single product, converting errors into a failed record
func (b *BatchService) processOne(ctx context.Context, product, marketplace string) *domain.SearchResult {
	request := &domain.SearchRequest{ProductName: product, Marketplace: marketplace}

	result, err := b.resolver.Resolve(ctx, request)
	if err != nil {
		return &domain.SearchResult{
			ProductName: product,
			Marketplace: marketplace,
			Success:     false,
			Error:       err.Error(),
		}
	}

	if b.extractPrices && result.URL != "" {
		price, err := b.extractor.ExtractPrice(ctx, result.URL)
		if err != nil {
			// Price extraction is best effort; the resolved URL is
			// still a successful result.
			log.Printf("[Batch] Price extraction failed for %q: %v", result.URL, err)
		} else {
			result.Price = price
		}
	}

	return result
}
