// Package export produces XLSX reports from the loaded transaction set.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/feeds"
)

// Service is a tiny façade that turns transactions into XLSX bytes.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportTransactionsXLSX returns an XLSX workbook (as bytes) for the given
// transactions, with a totals block under the last row. The caller decides
// which set to pass; usually the ledger's currently loaded set.
func (s *Service) ExportTransactionsXLSX(items []entity.Transaction) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Transactions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Type",
		"Title",
		"Amount",
		"Currency",
		"Recorded By",
		"Note",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, it := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !it.TxDate.IsZero() {
			write(1, it.TxDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, string(it.Kind))
		write(3, it.Title)
		write(4, it.Amount)
		write(5, it.CurrencyCode)
		write(6, it.RecordedBy)
		write(7, it.Note)
		row++
	}

	// Totals block, one blank row below the data.
	totals := feeds.ComputeTotals(items)
	row++
	for _, line := range []struct {
		label string
		value float64
	}{
		{"Total Income", totals.Income},
		{"Total Expense", totals.Expense},
		{"Net", totals.Net},
	} {
		labelCell, _ := excelize.CoordinatesToCellName(3, row)
		valueCell, _ := excelize.CoordinatesToCellName(4, row)
		_ = f.SetCellValue(sheet, labelCell, line.label)
		_ = f.SetCellValue(sheet, valueCell, line.value)
		row++
	}

	// Drop the default sheet if it is not ours.
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("transactions exported",
		"rows", len(items),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
