package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pricescout/backend/config"
	httpDelivery "github.com/pricescout/backend/internal/delivery/http"
	"github.com/pricescout/backend/internal/importer"
	"github.com/pricescout/backend/internal/infrastructure/cache"
	"github.com/pricescout/backend/internal/infrastructure/google"
	"github.com/pricescout/backend/internal/infrastructure/scraper"
	"github.com/pricescout/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PriceScout Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	googleClient := google.NewClient(cfg.Google.APIKey, cfg.Google.CSEID, cfg.Google.BaseURL, cfg.RateLimit.Google)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		googleClient.SetDebug(true)
		log.Printf("Google client debug mode enabled")
	}

	if len(cfg.Google.APIKey) >= 8 {
		log.Printf("Google Custom Search configured: %s (key: %s...)", cfg.Google.BaseURL, cfg.Google.APIKey[:8])
	} else {
		log.Printf("Google Custom Search configured: %s", cfg.Google.BaseURL)
	}

	priceExtractor := scraper.NewExtractor(cfg.Scraper.Timeout, cfg.Scraper.MaxRetries, cfg.Scraper.UserAgent)
	excelReader := importer.NewExcelReader()

	// Initialize usecase layer
	searchService := usecase.NewSearchService(memoryCache, googleClient, usecase.SearchServiceConfig{
		CacheTTL: cfg.Cache.TTL,
	})

	batchService := usecase.NewBatchService(searchService, priceExtractor, excelReader, usecase.BatchServiceConfig{
		Concurrency:   cfg.Batch.Concurrency,
		ExtractPrices: cfg.Batch.ExtractPrices,
	})

	log.Printf("Batch: concurrency=%d, prices=%v", cfg.Batch.Concurrency, cfg.Batch.ExtractPrices)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, batchService, priceExtractor)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
