package feeds

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/communityhub/mobilecore/constants"
	"github.com/communityhub/mobilecore/internal/api"
	"github.com/communityhub/mobilecore/internal/connectivity"
	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/reconcile"
	"github.com/communityhub/mobilecore/internal/snapshot"
)

// Filter narrows the donation/expense lists.
type Filter struct {
	SubcategoryID string
	StartDate     *time.Time
	EndDate       *time.Time
}

// Ledger pairs the donation and expense lists behind one filter and one
// client-side sort. Sorting and totals apply to the currently loaded set,
// not the full remote set.
type Ledger struct {
	donations *reconcile.List[entity.Transaction]
	expenses  *reconcile.List[entity.Transaction]

	mu        sync.Mutex
	filter    Filter
	sortBy    constants.SortField
	sortOrder constants.SortOrder
}

func NewLedger(client *api.Client, donStore, expStore snapshot.TransactionStore,
	checker connectivity.Checker, notifyDon, notifyExp func(reconcile.Notice), pageSize int, logger *slog.Logger) *Ledger {

	l := &Ledger{
		sortBy:    constants.SortByDate,
		sortOrder: constants.SortDesc,
	}
	query := func(page, limit int) api.TransactionQuery {
		l.mu.Lock()
		defer l.mu.Unlock()
		return api.TransactionQuery{
			SubcategoryID: l.filter.SubcategoryID,
			Page:          page,
			Limit:         limit,
			StartDate:     l.filter.StartDate,
			EndDate:       l.filter.EndDate,
		}
	}
	fetchDonations := func(ctx context.Context, page, limit int) (reconcile.Page[entity.Transaction], error) {
		items, pg, err := client.Donations(ctx, query(page, limit))
		if err != nil {
			return reconcile.Page[entity.Transaction]{}, err
		}
		return reconcile.Page[entity.Transaction]{Items: items, TotalPages: pg.TotalPages}, nil
	}
	fetchExpenses := func(ctx context.Context, page, limit int) (reconcile.Page[entity.Transaction], error) {
		items, pg, err := client.Expenses(ctx, query(page, limit))
		if err != nil {
			return reconcile.Page[entity.Transaction]{}, err
		}
		return reconcile.Page[entity.Transaction]{Items: items, TotalPages: pg.TotalPages}, nil
	}

	build := func(fetch reconcile.FetchFunc[entity.Transaction], store snapshot.TransactionStore,
		notify func(reconcile.Notice)) *reconcile.List[entity.Transaction] {
		return reconcile.NewList(fetch,
			reconcile.WithSnapshot[entity.Transaction](store),
			reconcile.WithChecker[entity.Transaction](checker),
			reconcile.WithNotifier[entity.Transaction](notify),
			reconcile.WithOfflineClassifier[entity.Transaction](api.IsNetworkError),
			reconcile.WithPageSize[entity.Transaction](pageSize),
			reconcile.WithLogger[entity.Transaction](logger),
		)
	}
	l.donations = build(fetchDonations, donStore, notifyDon)
	l.expenses = build(fetchExpenses, expStore, notifyExp)
	return l
}

// Load loads page 1 of both lists. The first error wins but both loads run.
func (l *Ledger) Load(ctx context.Context) error {
	derr := l.donations.Load(ctx)
	eerr := l.expenses.Load(ctx)
	if derr != nil {
		return derr
	}
	return eerr
}

// Refresh reloads both lists from page 1.
func (l *Ledger) Refresh(ctx context.Context) error {
	derr := l.donations.Refresh(ctx)
	eerr := l.expenses.Refresh(ctx)
	if derr != nil {
		return derr
	}
	return eerr
}

// SetFilter replaces the filter and reloads both lists from page 1.
func (l *Ledger) SetFilter(ctx context.Context, f Filter) error {
	l.mu.Lock()
	l.filter = f
	l.mu.Unlock()
	l.donations.Reset()
	l.expenses.Reset()
	return l.Load(ctx)
}

// SetSort changes the display order. Display-only; nothing is refetched.
func (l *Ledger) SetSort(field constants.SortField, order constants.SortOrder) {
	l.mu.Lock()
	l.sortBy = field
	l.sortOrder = order
	l.mu.Unlock()
}

func (l *Ledger) LoadMoreDonations(ctx context.Context) error { return l.donations.LoadMore(ctx) }
func (l *Ledger) LoadMoreExpenses(ctx context.Context) error  { return l.expenses.LoadMore(ctx) }

// Transactions returns the merged loaded set in the current sort order.
func (l *Ledger) Transactions() []entity.Transaction {
	items := append(l.donations.Items(), l.expenses.Items()...)
	l.mu.Lock()
	field, order := l.sortBy, l.sortOrder
	l.mu.Unlock()
	SortTransactions(items, field, order)
	return items
}

// Totals recomputes income/expense/net over the currently loaded set.
func (l *Ledger) Totals() Totals {
	return ComputeTotals(append(l.donations.Items(), l.expenses.Items()...))
}

func (l *Ledger) DonationsState() reconcile.State { return l.donations.State() }
func (l *Ledger) ExpensesState() reconcile.State  { return l.expenses.State() }
func (l *Ledger) HasMoreDonations() bool          { return l.donations.HasMore() }
func (l *Ledger) HasMoreExpenses() bool           { return l.expenses.HasMore() }

func (l *Ledger) ConnectivityChanged(online bool) {
	l.donations.ConnectivityChanged(online)
	l.expenses.ConnectivityChanged(online)
}
