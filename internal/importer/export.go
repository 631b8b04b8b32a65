package importer

import (
	"bytes"
	"fmt"

	"github.com/pricescout/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Results"

var resultHeaders = []string{
	"Product Name", "Marketplace", "URL", "Title", "Price", "Currency", "Success", "Error",
}

// WriteResults renders a batch summary as an xlsx workbook, one row
// per result record, and returns the serialized file.
func WriteResults(summary *domain.BatchSummary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, fmt.Errorf("failed to create results sheet: %w", err)
	}

	for i, h := range resultHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(resultsSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, result := range summary.Results {
		values := []interface{}{
			result.ProductName,
			result.Marketplace,
			result.URL,
			result.Title,
			nil,
			"",
			result.Success,
			result.Error,
		}
		if result.Price != nil {
			values[4] = result.Price.Amount
			values[5] = result.Price.Currency
		}

		for colIdx, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(resultsSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize results workbook: %w", err)
	}

	return buf, nil
}
