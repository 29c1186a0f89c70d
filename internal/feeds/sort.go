package feeds

import (
	"sort"

	"github.com/communityhub/mobilecore/constants"
	"github.com/communityhub/mobilecore/internal/entity"
)

// SortCategories orders categories pinned-before-unpinned, then by ascending
// name within each partition. Sorts in place.
func SortCategories(cats []entity.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Pinned != cats[j].Pinned {
			return cats[i].Pinned
		}
		return cats[i].Name < cats[j].Name
	})
}

// SortTransactions orders the currently loaded transaction set. Full resort
// every time; the set is page-bounded so this stays cheap. Sorts in place.
func SortTransactions(items []entity.Transaction, field constants.SortField, order constants.SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		switch field {
		case constants.SortByAmount:
			if order == constants.SortDesc {
				return items[i].Amount > items[j].Amount
			}
			return items[i].Amount < items[j].Amount
		default:
			if order == constants.SortDesc {
				return items[j].TxDate.Before(items[i].TxDate)
			}
			return items[i].TxDate.Before(items[j].TxDate)
		}
	})
}

// Totals are the derived sums over the currently displayed transaction set.
type Totals struct {
	Income  float64
	Expense float64
	Net     float64
}

// ComputeTotals recomputes totals from scratch over items. No incremental
// maintenance; deterministic for a given set.
func ComputeTotals(items []entity.Transaction) Totals {
	var t Totals
	for _, it := range items {
		switch it.Kind {
		case entity.TxExpense:
			t.Expense += it.Amount
		default:
			t.Income += it.Amount
		}
	}
	t.Net = t.Income - t.Expense
	return t
}
