package importer

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pricescout/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook creates an xlsx file with the given first-column values
func buildWorkbook(t *testing.T, values []string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadProductsFrom(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		want    []string
		wantErr error
	}{
		{
			name: "plain product list",
			rows: []string{"Canon G7X Mark III", "Sony WH-1000XM5", "Dyson V15"},
			want: []string{"Canon G7X Mark III", "Sony WH-1000XM5", "Dyson V15"},
		},
		{
			name: "header row skipped",
			rows: []string{"Product Name", "Canon G7X Mark III"},
			want: []string{"Canon G7X Mark III"},
		},
		{
			name: "turkish header row skipped",
			rows: []string{"Ürün Adı", "Canon G7X Mark III"},
			want: []string{"Canon G7X Mark III"},
		},
		{
			name: "blank rows and whitespace trimmed",
			rows: []string{"  Canon G7X  ", "", "   ", "Sony WH-1000XM5"},
			want: []string{"Canon G7X", "Sony WH-1000XM5"},
		},
		{
			name:    "empty sheet",
			rows:    []string{},
			wantErr: domain.ErrNoProducts,
		},
		{
			name:    "header only",
			rows:    []string{"Product Name"},
			wantErr: domain.ErrNoProducts,
		},
	}

	reader := NewExcelReader()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buildWorkbook(t, tt.rows)

			products, err := reader.ReadProductsFrom(buf)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, products)
		})
	}
}

func TestReadProductsFrom_InvalidFile(t *testing.T) {
	reader := NewExcelReader()

	_, err := reader.ReadProductsFrom(bytes.NewReader([]byte("not a spreadsheet")))

	assert.ErrorIs(t, err, domain.ErrSpreadsheetInvalid)
}

func TestReadProducts_MissingFile(t *testing.T) {
	reader := NewExcelReader()

	_, err := reader.ReadProducts(filepath.Join(t.TempDir(), "missing.xlsx"))

	assert.ErrorIs(t, err, domain.ErrSpreadsheetNotFound)
}

func TestReadProducts_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Product Name"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Canon G7X"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	products, err := NewExcelReader().ReadProducts(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Canon G7X"}, products)
}
