package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/pricescout/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	// maxResults is the total number of results fetched per search.
	// The Custom Search API caps a single request at 10 items, so a
	// second paged request is made for the remainder.
	maxResults = 15

	// pageSize is the Custom Search API per-request maximum
	pageSize = 10

	maxAttempts = 3
)

// Client handles communication with the Google Custom Search API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	cseID       string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Custom Search API client. queriesPerSecond
// caps outbound API calls; zero or negative falls back to 5 qps.
func NewClient(apiKey, cseID, baseURL string, queriesPerSecond float64) *Client {
	if queriesPerSecond <= 0 {
		queriesPerSecond = 5
	}
	limiter := rate.NewLimiter(rate.Limit(queriesPerSecond), 10) // burst of 10 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:      apiKey,
		cseID:       cseID,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the sleep duration before the next retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(attempt) * 500 * time.Millisecond
}

// Search queries the Custom Search API and returns up to 15 results,
// fetching a second page when the first one is full. A failure on the
// second page is not fatal; the first page results are returned.
func (c *Client) Search(ctx context.Context, query string) (*domain.GoogleSearchResponse, error) {
	log.Printf("[Google] Search called with query: %q", query)

	first, err := c.searchPage(ctx, query, 1, pageSize)
	if err != nil {
		return nil, err
	}

	items := first.Items
	if len(items) == pageSize {
		second, err := c.searchPage(ctx, query, pageSize+1, maxResults-pageSize)
		if err != nil {
			// Second page is best effort
			log.Printf("[Google] Second page fetch failed (continuing with %d results): %v", len(items), err)
		} else {
			items = append(items, second.Items...)
		}
	}

	if len(items) == 0 {
		log.Printf("[Google] No results for query: %q", query)
		return nil, domain.ErrNoResults
	}

	log.Printf("[Google] Found %d results for query: %q", len(items), query)
	return &domain.GoogleSearchResponse{Items: items}, nil
}

// searchPage fetches a single page of results with retries on transient failures
func (c *Client) searchPage(ctx context.Context, query string, start, num int) (*domain.GoogleSearchResponse, error) {
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("cx", c.cseID)
	params.Add("q", query)
	params.Add("num", strconv.Itoa(num))
	params.Add("start", strconv.Itoa(start))

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
				lastErr = fmt.Errorf("%w: %v", domain.ErrSearchAPITimeout, err)
			} else {
				lastErr = err
			}
			log.Printf("[Google] Request error (attempt %d): %v", attempt, err)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[Google] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			} else {
				log.Printf("[Google] API error (attempt %d) - Status: %d", attempt, resp.StatusCode)
			}
			if resp.StatusCode == http.StatusTooManyRequests {
				return nil, fmt.Errorf("%w: status %d", domain.ErrRateLimited, resp.StatusCode)
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrSearchAPIFailure, resp.StatusCode)
			// Client errors other than 429 will not succeed on retry
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return nil, lastErr
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var searchResp domain.GoogleSearchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			log.Printf("[Google] JSON decode error: %v", err)
			return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrSearchAPIFailure, err)
		}

		return &searchResp, nil
	}

	log.Printf("[Google] All retries failed for query: %q", query)
	return nil, lastErr
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PriceScout/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchAPIFailure, err)
	}

	return resp, nil
}
