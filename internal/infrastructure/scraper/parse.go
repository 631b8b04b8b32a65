package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pricescout/backend/internal/domain"
)

var (
	currencyTokens  = []string{"TL", "TRY", "₺", "USD", "EUR", "$", "€"}
	thousandsDotted = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
	priceCandidate  = regexp.MustCompile(`\d+(?:[.,]\d+)*`)
)

// ParsePrice converts a price string to a float, handling Turkish
// number formatting: "12.499,25" and "12499,25" both mean 12499.25,
// and "12.499" is twelve and a half thousand, not a decimal.
// Values outside the plausible [1, 1e6] range are rejected.
func ParsePrice(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	for _, token := range currencyTokens {
		cleaned = strings.ReplaceAll(cleaned, token, "")
	}
	cleaned = strings.TrimSpace(cleaned)

	// Pull the first number-looking run out of surrounding markup text
	cleaned = priceCandidate.FindString(cleaned)
	if cleaned == "" {
		return 0, domain.ErrPriceNotFound
	}

	hasDot := strings.Contains(cleaned, ".")
	hasComma := strings.Contains(cleaned, ",")

	switch {
	case hasDot && hasComma:
		// 12.499,25 -> 12499.25
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case hasComma:
		// 12499,25 -> 12499.25
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case hasDot && thousandsDotted.MatchString(cleaned):
		// 12.499 -> 12499
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, domain.ErrPriceNotFound
	}

	if value < minPlausiblePrice || value > maxPlausiblePrice {
		return 0, domain.ErrPriceNotFound
	}

	return value, nil
}
