package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRealURL(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{
			name: "plain link returned unchanged",
			link: "https://www.trendyol.com/canon/g7x-p-123",
			want: "https://www.trendyol.com/canon/g7x-p-123",
		},
		{
			name: "redirect with url parameter",
			link: "https://www.google.com/url?url=https%3A%2F%2Fwww.trendyol.com%2Fcanon%2Fg7x-p-123",
			want: "https://www.trendyol.com/canon/g7x-p-123",
		},
		{
			name: "redirect with q parameter",
			link: "https://www.google.com/url?q=https%3A%2F%2Fwww.hepsiburada.com%2Fp-HB123",
			want: "https://www.hepsiburada.com/p-HB123",
		},
		{
			name: "double-encoded url parameter",
			link: "https://www.google.com/url?url=https%253A%252F%252Fwww.teknosa.com%252Furun-p-1",
			want: "https://www.teknosa.com/urun-p-1",
		},
		{
			name: "redirect without target parameter returned unchanged",
			link: "https://www.google.com/url?sa=t",
			want: "https://www.google.com/url?sa=t",
		},
		{
			name: "case-insensitive host match",
			link: "https://www.GOOGLE.com/url?url=https%3A%2F%2Fexample.com%2Fitem",
			want: "https://example.com/item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRealURL(tt.link))
		})
	}
}
