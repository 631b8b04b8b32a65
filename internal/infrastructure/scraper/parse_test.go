package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		wantErr bool
	}{
		{name: "turkish thousands and decimals", text: "12.499,25", want: 12499.25},
		{name: "turkish thousands only", text: "12.499", want: 12499},
		{name: "comma decimals", text: "12499,25", want: 12499.25},
		{name: "dot decimals", text: "12499.25", want: 12499.25},
		{name: "plain integer", text: "12499", want: 12499},
		{name: "with TL suffix", text: "1.234,56 TL", want: 1234.56},
		{name: "with lira symbol", text: "₺899,90", want: 899.90},
		{name: "small decimal price", text: "9.99", want: 9.99},
		{name: "embedded in text", text: "Sepette 2.499 TL", want: 2499},
		{name: "empty string", text: "", wantErr: true},
		{name: "no digits", text: "fiyat yok", wantErr: true},
		{name: "below plausible range", text: "0,50", wantErr: true},
		{name: "above plausible range", text: "9.999.999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}
