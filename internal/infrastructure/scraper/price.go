package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pricescout/backend/internal/domain"
)

const defaultCurrency = "TRY"

// Plausible price bounds; values outside are treated as parsing noise
// (SKU fragments, review counts, phone numbers).
const (
	minPlausiblePrice = 1
	maxPlausiblePrice = 1_000_000
)

// priceSelectors are CSS selectors tried in order against product pages.
// The named classes cover Trendyol/Hepsiburada/Teknosa layouts; the
// attribute selectors are a generic fallback.
var priceSelectors = []string{
	".pr-new-br",
	".prc-dsc",
	".prc-org",
	".product-price-container",
	"[data-test-id*='price']",
	"[data-testid*='price']",
	"[class*='price']",
	"[id*='price']",
}

// scriptPricePatterns match price fields embedded in page scripts
// (window.__PRODUCT_DETAIL_APP_INITIAL_STATE__ and similar globals)
var scriptPricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)"sellingPrice"\s*:\s*"?(\d+(?:[.,]\d+)*)"?`),
	regexp.MustCompile(`(?i)"discountedPrice"\s*:\s*"?(\d+(?:[.,]\d+)*)"?`),
	regexp.MustCompile(`(?i)"finalPrice"\s*:\s*"?(\d+(?:[.,]\d+)*)"?`),
	regexp.MustCompile(`(?i)"salePrice"\s*:\s*"?(\d+(?:[.,]\d+)*)"?`),
	regexp.MustCompile(`(?i)"currentPrice"\s*:\s*"?(\d+(?:[.,]\d+)*)"?`),
	regexp.MustCompile(`(?i)"price"\s*:\s*"?(\d+(?:[.,]\d+)*)"?`),
}

// Extractor scrapes prices from marketplace product pages
type Extractor struct {
	httpClient *http.Client
	userAgent  string
	maxRetries int
}

// NewExtractor creates a price extractor. maxRetries counts additional
// attempts after the first one.
func NewExtractor(timeout time.Duration, maxRetries int, userAgent string) *Extractor {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Extractor{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent:  userAgent,
		maxRetries: maxRetries,
	}
}

// ExtractPrice fetches a product page and extracts its price, trying
// JSON-LD offers, price meta tags, known price CSS selectors, and
// embedded script state in that order.
func (e *Extractor) ExtractPrice(ctx context.Context, pageURL string) (*domain.PriceInfo, error) {
	var lastErr error

	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		body, err := e.fetch(ctx, pageURL)
		if err != nil {
			log.Printf("[Scraper] Fetch error (attempt %d): %v", attempt+1, err)
			lastErr = err
			continue
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", domain.ErrPageFetchFailure, err)
			continue
		}

		info := parseDocument(doc)
		if info != nil {
			log.Printf("[Scraper] Price %.2f %s extracted from %s", info.Amount, info.Currency, pageURL)
			return info, nil
		}

		lastErr = domain.ErrPriceNotFound
		log.Printf("[Scraper] No price found on %s (attempt %d)", pageURL, attempt+1)
	}

	return nil, lastErr
}

// fetch downloads the page body with browser-like headers
func (e *Extractor) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageFetchFailure, err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "tr-TR,tr;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPageFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrPageFetchFailure, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// parseDocument runs the extraction ladder over a parsed page
func parseDocument(doc *goquery.Document) *domain.PriceInfo {
	title := extractTitle(doc)

	if info := priceFromJSONLD(doc); info != nil {
		info.Title = title
		return info
	}
	if info := priceFromMetaTags(doc); info != nil {
		info.Title = title
		return info
	}
	if info := priceFromSelectors(doc); info != nil {
		info.Title = title
		return info
	}
	if info := priceFromScripts(doc); info != nil {
		info.Title = title
		return info
	}

	return nil
}

// extractTitle captures the product title: h1, then JSON-LD name,
// then og:title, then the document title
func extractTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}

	var name string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal([]byte(s.Text()), &data); err == nil && data.Name != "" {
			name = data.Name
			return false
		}
		return true
	})
	if name != "" {
		return name
	}

	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}

// ldOffer is the subset of a schema.org Offer the extractor needs.
// Price can arrive as a JSON string or number, so it is kept raw.
type ldOffer struct {
	Price         json.RawMessage `json:"price"`
	PriceCurrency string          `json:"priceCurrency"`
}

// ldProduct handles offers being a single object or an array
type ldProduct struct {
	Offers json.RawMessage `json:"offers"`
}

// priceFromJSONLD extracts price from schema.org Product JSON-LD blocks
func priceFromJSONLD(doc *goquery.Document) *domain.PriceInfo {
	var info *domain.PriceInfo

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var product ldProduct
		if err := json.Unmarshal([]byte(s.Text()), &product); err != nil || len(product.Offers) == 0 {
			return true
		}

		var offers []ldOffer
		var single ldOffer
		if err := json.Unmarshal(product.Offers, &single); err == nil {
			offers = append(offers, single)
		} else if err := json.Unmarshal(product.Offers, &offers); err != nil {
			return true
		}

		for _, offer := range offers {
			priceText := strings.Trim(string(offer.Price), `"`)
			if priceText == "" || priceText == "null" {
				continue
			}
			amount, err := ParsePrice(priceText)
			if err != nil {
				continue
			}
			currency := offer.PriceCurrency
			if currency == "" {
				currency = defaultCurrency
			}
			info = &domain.PriceInfo{Amount: amount, Currency: currency}
			return false
		}
		return true
	})

	return info
}

// priceFromMetaTags extracts price from Open Graph / microdata meta tags
func priceFromMetaTags(doc *goquery.Document) *domain.PriceInfo {
	metaSelectors := []string{
		`meta[property="product:price:amount"]`,
		`meta[property="og:price:amount"]`,
		`meta[itemprop="price"]`,
	}

	for _, sel := range metaSelectors {
		content, ok := doc.Find(sel).Attr("content")
		if !ok {
			continue
		}
		amount, err := ParsePrice(content)
		if err != nil {
			continue
		}

		currency := defaultCurrency
		for _, curSel := range []string{
			`meta[property="product:price:currency"]`,
			`meta[property="og:price:currency"]`,
			`meta[itemprop="priceCurrency"]`,
		} {
			if c, ok := doc.Find(curSel).Attr("content"); ok && c != "" {
				currency = c
				break
			}
		}

		return &domain.PriceInfo{Amount: amount, Currency: currency}
	}

	return nil
}

// priceFromSelectors extracts price text from known price elements
func priceFromSelectors(doc *goquery.Document) *domain.PriceInfo {
	var info *domain.PriceInfo

	for _, sel := range priceSelectors {
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := strings.TrimSpace(s.Text())
			if len(text) < 3 {
				return true
			}
			amount, err := ParsePrice(text)
			if err != nil {
				return true
			}
			info = &domain.PriceInfo{Amount: amount, Currency: defaultCurrency}
			return false
		})
		if info != nil {
			return info
		}
	}

	return nil
}

// priceFromScripts scans inline scripts for embedded price fields
func priceFromScripts(doc *goquery.Document) *domain.PriceInfo {
	var info *domain.PriceInfo

	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if text == "" {
			return true
		}
		for _, pattern := range scriptPricePatterns {
			match := pattern.FindStringSubmatch(text)
			if match == nil {
				continue
			}
			amount, err := ParsePrice(match[1])
			if err != nil {
				continue
			}
			info = &domain.PriceInfo{Amount: amount, Currency: defaultCurrency}
			return false
		}
		return true
	})

	return info
}
