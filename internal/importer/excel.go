package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pricescout/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Product names are read from the first column of the first sheet,
// one product per row (matches the layout batch users upload).
const productColumn = 0

// headerAliases are first-row values treated as a header row and skipped
var headerAliases = map[string]bool{
	"product name": true,
	"product":      true,
	"name":         true,
	"urun":         true,
	"ürün":         true,
	"ürün adı":     true,
}

// ExcelReader reads product names from xlsx workbooks
type ExcelReader struct{}

// NewExcelReader creates a spreadsheet reader
func NewExcelReader() *ExcelReader {
	return &ExcelReader{}
}

// ReadProducts reads product names from the spreadsheet at path
func (r *ExcelReader) ReadProducts(path string) ([]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSpreadsheetNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSpreadsheetInvalid, err)
	}
	defer f.Close()

	return productsFromFile(f)
}

// ReadProductsFrom reads product names from an uploaded spreadsheet stream
func (r *ExcelReader) ReadProductsFrom(reader io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSpreadsheetInvalid, err)
	}
	defer f.Close()

	return productsFromFile(f)
}

func productsFromFile(f *excelize.File) ([]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrNoProducts
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSpreadsheetInvalid, err)
	}

	products := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) <= productColumn {
			continue
		}
		name := strings.TrimSpace(row[productColumn])
		if name == "" {
			continue
		}
		if i == 0 && headerAliases[strings.ToLower(name)] {
			continue
		}
		products = append(products, name)
	}

	if len(products) == 0 {
		return nil, domain.ErrNoProducts
	}

	return products, nil
}
