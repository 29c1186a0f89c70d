package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/communityhub/mobilecore/internal/entity"
)

func TestExportTransactionsXLSX(t *testing.T) {
	items := []entity.Transaction{
		{
			ID:           "t1",
			Kind:         entity.TxIncome,
			Title:        "Sunday offering",
			Amount:       150,
			CurrencyCode: "USD",
			TxDate:       time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC),
			RecordedBy:   "treasurer",
		},
		{
			ID:     "t2",
			Kind:   entity.TxExpense,
			Title:  "Hall rent",
			Amount: 90,
		},
	}

	data, err := NewService(nil).ExportTransactionsXLSX(items)
	if err != nil {
		t.Fatalf("ExportTransactionsXLSX returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	if idx, _ := f.GetSheetIndex("Transactions"); idx == -1 {
		t.Fatalf("sheets = %v, want Transactions", f.GetSheetList())
	}

	cell := func(ref string) string {
		v, err := f.GetCellValue("Transactions", ref)
		if err != nil {
			t.Fatalf("reading %s: %v", ref, err)
		}
		return v
	}

	if cell("A1") != "Date" || cell("D1") != "Amount" {
		t.Fatalf("headers = %q/%q, want Date/Amount", cell("A1"), cell("D1"))
	}
	if cell("A2") != "2025-02-02" || cell("C2") != "Sunday offering" {
		t.Fatalf("row 2 = %q/%q, want first transaction", cell("A2"), cell("C2"))
	}
	if cell("B3") != "expense" || cell("C3") != "Hall rent" {
		t.Fatalf("row 3 = %q/%q, want second transaction", cell("B3"), cell("C3"))
	}

	// Totals block starts one blank row under the data.
	if cell("C5") != "Total Income" || cell("D5") != "150" {
		t.Fatalf("totals row = %q/%q, want Total Income 150", cell("C5"), cell("D5"))
	}
	if cell("C6") != "Total Expense" || cell("D6") != "90" {
		t.Fatalf("totals row = %q/%q, want Total Expense 90", cell("C6"), cell("D6"))
	}
	if cell("C7") != "Net" || cell("D7") != "60" {
		t.Fatalf("totals row = %q/%q, want Net 60", cell("C7"), cell("D7"))
	}
}

func TestExportTransactionsXLSX_EmptySet(t *testing.T) {
	data, err := NewService(nil).ExportTransactionsXLSX(nil)
	if err != nil {
		t.Fatalf("ExportTransactionsXLSX returned error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	v, err := f.GetCellValue("Transactions", "C3")
	if err != nil {
		t.Fatalf("reading C3: %v", err)
	}
	if v != "Total Income" {
		t.Fatalf("C3 = %q, want totals block directly under headers", v)
	}
}
