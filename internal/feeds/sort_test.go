package feeds

import (
	"testing"
	"time"

	"github.com/communityhub/mobilecore/constants"
	"github.com/communityhub/mobilecore/internal/entity"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func names(cats []entity.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}

func TestSortCategories_PinnedFirstThenName(t *testing.T) {
	cats := []entity.Category{
		{ID: "3", Name: "Zion"},
		{ID: "1", Name: "Alpha", Pinned: true},
		{ID: "2", Name: "Beta"},
	}
	SortCategories(cats)

	want := []string{"Alpha", "Beta", "Zion"}
	got := names(cats)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortCategories_NameBreaksTiesWithinPartition(t *testing.T) {
	cats := []entity.Category{
		{Name: "Charity", Pinned: true},
		{Name: "Building", Pinned: true},
		{Name: "Youth"},
		{Name: "Admin"},
	}
	SortCategories(cats)

	want := []string{"Building", "Charity", "Admin", "Youth"}
	got := names(cats)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortTransactions_ByAmount(t *testing.T) {
	items := []entity.Transaction{
		{ID: "a", Amount: 100},
		{ID: "b", Amount: 50},
		{ID: "c", Amount: 200},
	}

	SortTransactions(items, constants.SortByAmount, constants.SortAsc)
	if items[0].Amount != 50 || items[1].Amount != 100 || items[2].Amount != 200 {
		t.Fatalf("asc order = %v %v %v, want 50 100 200", items[0].Amount, items[1].Amount, items[2].Amount)
	}

	SortTransactions(items, constants.SortByAmount, constants.SortDesc)
	if items[0].Amount != 200 || items[1].Amount != 100 || items[2].Amount != 50 {
		t.Fatalf("desc order = %v %v %v, want 200 100 50", items[0].Amount, items[1].Amount, items[2].Amount)
	}
}

func TestSortTransactions_ByDate(t *testing.T) {
	items := []entity.Transaction{
		{ID: "a", TxDate: day(2)},
		{ID: "b", TxDate: day(3)},
		{ID: "c", TxDate: day(1)},
	}

	SortTransactions(items, constants.SortByDate, constants.SortDesc)
	if !items[0].TxDate.Equal(day(3)) || !items[2].TxDate.Equal(day(1)) {
		t.Fatalf("desc order = %v, want newest first", items)
	}

	SortTransactions(items, constants.SortByDate, constants.SortAsc)
	if !items[0].TxDate.Equal(day(1)) || !items[2].TxDate.Equal(day(3)) {
		t.Fatalf("asc order = %v, want oldest first", items)
	}
}

func TestSortTransactions_StableOnEqualKeys(t *testing.T) {
	items := []entity.Transaction{
		{ID: "first", Amount: 10},
		{ID: "second", Amount: 10},
	}
	SortTransactions(items, constants.SortByAmount, constants.SortAsc)
	if items[0].ID != "first" || items[1].ID != "second" {
		t.Fatalf("equal keys reordered: %v %v", items[0].ID, items[1].ID)
	}
}

func TestComputeTotals(t *testing.T) {
	items := []entity.Transaction{
		{Kind: entity.TxIncome, Amount: 120},
		{Kind: entity.TxIncome, Amount: 30},
		{Kind: entity.TxExpense, Amount: 45.5},
	}
	got := ComputeTotals(items)
	if got.Income != 150 {
		t.Fatalf("Income = %v, want 150", got.Income)
	}
	if got.Expense != 45.5 {
		t.Fatalf("Expense = %v, want 45.5", got.Expense)
	}
	if got.Net != 104.5 {
		t.Fatalf("Net = %v, want 104.5", got.Net)
	}
}

func TestComputeTotals_EmptySet(t *testing.T) {
	got := ComputeTotals(nil)
	if got.Income != 0 || got.Expense != 0 || got.Net != 0 {
		t.Fatalf("totals over empty set = %+v, want zeros", got)
	}
}
