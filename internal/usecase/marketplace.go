package usecase

import "strings"

// Marketplace describes how to recognize a marketplace's URLs in
// search results. ProductPatterns identify product detail pages;
// CategoryPatterns identify listing/search pages, which are only
// used as a last resort.
type Marketplace struct {
	Name             string
	Domains          []string
	ProductPatterns  []string
	CategoryPatterns []string
}

// knownMarketplaces covers the marketplaces with documented URL shapes.
// Anything else falls back to a generic domain guess.
var knownMarketplaces = map[string]Marketplace{
	"trendyol": {
		Name:             "Trendyol",
		Domains:          []string{"trendyol.com"},
		ProductPatterns:  []string{"-p-"},
		CategoryPatterns: []string{"/sr?", "/butik/", "-x-c"},
	},
	"hepsiburada": {
		Name:             "Hepsiburada",
		Domains:          []string{"hepsiburada.com"},
		ProductPatterns:  []string{"-p-", "-pm-"},
		CategoryPatterns: []string{"/ara?", "-c-"},
	},
	"teknosa": {
		Name:             "Teknosa",
		Domains:          []string{"teknosa.com"},
		ProductPatterns:  []string{"-p-"},
		CategoryPatterns: []string{"/arama", "?s="},
	},
	"amazon": {
		Name: "Amazon",
		Domains: []string{
			"amazon.com.tr", "amazon.com", "amazon.co.uk",
			"amazon.de", "amazon.fr", "amazon.it", "amazon.es",
		},
		ProductPatterns:  []string{"/dp/", "/gp/product/", "/product/"},
		CategoryPatterns: []string{"/s?", "/s/", "/gp/browse/", "/b/"},
	},
}

// LookupMarketplace resolves a user-supplied marketplace name to its
// URL profile. Unknown marketplaces get a generic profile derived
// from the name, so resolution still works for new sites.
func LookupMarketplace(name string) Marketplace {
	key := strings.ToLower(strings.TrimSpace(name))
	if m, ok := knownMarketplaces[key]; ok {
		return m
	}

	slug := strings.ReplaceAll(key, " ", "")
	return Marketplace{
		Name:    strings.TrimSpace(name),
		Domains: []string{slug + ".com", slug + ".com.tr"},
	}
}

// MatchesURL reports whether link belongs to one of the marketplace's domains
func (m Marketplace) MatchesURL(link string) bool {
	lower := strings.ToLower(link)
	for _, domain := range m.Domains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}

// IsProductPage reports whether link looks like a product detail page
func (m Marketplace) IsProductPage(link string) bool {
	lower := strings.ToLower(link)
	for _, pattern := range m.ProductPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// IsCategoryPage reports whether link looks like a listing/search page
func (m Marketplace) IsCategoryPage(link string) bool {
	lower := strings.ToLower(link)
	for _, pattern := range m.CategoryPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
