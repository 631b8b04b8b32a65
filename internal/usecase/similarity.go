package usecase

import (
	"regexp"
	"strings"
)

// Token weights for similarity scoring. Model-number tokens (G7X,
// WH-1000XM5) identify the exact product, so they dominate plain words.
const (
	weightModelToken = 3.0
	weightWordToken  = 1.0

	// substringBonus is added when the whole query appears in the candidate
	substringBonus = 0.15
)

var (
	similarityPunctuation = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	similaritySpaces      = regexp.MustCompile(`\s+`)
	digitPattern          = regexp.MustCompile(`\d`)
)

// Similarity scores how well a result title matches the searched
// product name, in [0, 1]. It is a weighted token recall: every query
// token found in the candidate contributes its weight, and tokens
// containing digits carry triple weight.
func Similarity(productName, candidate string) float64 {
	queryTokens := tokenize(productName)
	if len(queryTokens) == 0 {
		return 0
	}

	candidateNorm := normalizeForMatch(candidate)
	candidateSet := make(map[string]bool)
	for _, token := range tokenize(candidate) {
		candidateSet[token] = true
	}

	var matched, total float64
	for _, token := range queryTokens {
		weight := weightWordToken
		if digitPattern.MatchString(token) {
			weight = weightModelToken
		}
		total += weight
		if candidateSet[token] {
			matched += weight
		}
	}

	score := matched / total

	if strings.Contains(candidateNorm, normalizeForMatch(productName)) {
		score += substringBonus
	}

	if score > 1 {
		score = 1
	}
	return score
}

// tokenize splits a product name into normalized tokens
func tokenize(s string) []string {
	normalized := normalizeForMatch(s)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}

// normalizeForMatch lowercases and strips punctuation so that
// "WH-1000XM5" and "wh 1000xm5" compare equal token-wise
func normalizeForMatch(s string) string {
	result := strings.ToLower(s)
	result = similarityPunctuation.ReplaceAllString(result, " ")
	result = similaritySpaces.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
