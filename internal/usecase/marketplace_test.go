package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupMarketplace(t *testing.T) {
	t.Run("known marketplace case-insensitive", func(t *testing.T) {
		m := LookupMarketplace("TRENDYOL")
		assert.Equal(t, "Trendyol", m.Name)
		assert.Contains(t, m.Domains, "trendyol.com")
	})

	t.Run("unknown marketplace gets generic domains", func(t *testing.T) {
		m := LookupMarketplace("Media Markt")
		assert.Equal(t, "Media Markt", m.Name)
		assert.Contains(t, m.Domains, "mediamarkt.com")
		assert.Contains(t, m.Domains, "mediamarkt.com.tr")
	})
}

func TestMarketplace_MatchesURL(t *testing.T) {
	trendyol := LookupMarketplace("trendyol")

	assert.True(t, trendyol.MatchesURL("https://www.trendyol.com/canon/g7x-p-123"))
	assert.True(t, trendyol.MatchesURL("https://WWW.TRENDYOL.COM/x"))
	assert.False(t, trendyol.MatchesURL("https://www.hepsiburada.com/p-HB1"))
}

func TestMarketplace_PageClassification(t *testing.T) {
	tests := []struct {
		name        string
		marketplace string
		link        string
		wantProduct bool
		wantCategory bool
	}{
		{
			name:        "trendyol product page",
			marketplace: "trendyol",
			link:        "https://www.trendyol.com/canon/powershot-g7x-p-34567",
			wantProduct: true,
		},
		{
			name:         "trendyol search page",
			marketplace:  "trendyol",
			link:         "https://www.trendyol.com/sr?q=canon+g7x",
			wantCategory: true,
		},
		{
			name:        "amazon product page",
			marketplace: "amazon",
			link:        "https://www.amazon.com.tr/dp/B07X1KT6LD",
			wantProduct: true,
		},
		{
			name:         "amazon search page",
			marketplace:  "amazon",
			link:         "https://www.amazon.com.tr/s?k=canon+g7x",
			wantCategory: true,
		},
		{
			name:        "hepsiburada product page",
			marketplace: "hepsiburada",
			link:        "https://www.hepsiburada.com/canon-powershot-g7x-p-HBV00000ABC",
			wantProduct: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := LookupMarketplace(tt.marketplace)
			assert.Equal(t, tt.wantProduct, m.IsProductPage(tt.link))
			assert.Equal(t, tt.wantCategory, m.IsCategoryPage(tt.link))
		})
	}
}
