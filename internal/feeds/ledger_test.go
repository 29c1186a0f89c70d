package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/communityhub/mobilecore/constants"
	"github.com/communityhub/mobilecore/internal/api"
	"github.com/communityhub/mobilecore/internal/connectivity"
	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/reconcile"
)

type memTxStore struct {
	items []entity.Transaction
}

func (s *memTxStore) Replace(_ context.Context, items []entity.Transaction) error {
	s.items = items
	return nil
}

func (s *memTxStore) Read(context.Context) ([]entity.Transaction, error) {
	return s.items, nil
}

func alwaysOnline() connectivity.Checker {
	return connectivity.Func(func(context.Context) bool { return true })
}

func txEnvelope(page, totalPages int, rows string) string {
	return fmt.Sprintf(`{
		"success": true,
		"data": {
			"items": [%s],
			"pagination": {"page": %d, "totalPages": %d}
		}
	}`, rows, page, totalPages)
}

func newLedgerServer(t *testing.T, queries map[string]*url.Values) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q, ok := queries[r.URL.Path]; ok {
			*q = r.URL.Query()
		}
		switch r.URL.Path {
		case "/donations":
			_, _ = w.Write([]byte(txEnvelope(1, 1,
				`{"id":"d1","title":"Offering","amount":100,"tx_date":"2025-03-02T00:00:00Z"},
				 {"id":"d2","title":"Pledge","amount":40,"tx_date":"2025-03-05T00:00:00Z"}`)))
		case "/expenses":
			_, _ = w.Write([]byte(txEnvelope(1, 1,
				`{"id":"e1","title":"Rent","amount":70,"tx_date":"2025-03-03T00:00:00Z"}`)))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLedger_LoadMergesAndSortsBothLists(t *testing.T) {
	server := newLedgerServer(t, nil)
	client, err := api.NewClient(server.URL, nil, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	noNotify := func(reconcile.Notice) {}
	l := NewLedger(client, &memTxStore{}, &memTxStore{}, alwaysOnline(), noNotify, noNotify, 10, nil)

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	// Default sort is date descending.
	got := l.Transactions()
	if len(got) != 3 {
		t.Fatalf("Transactions = %d items, want 3 merged", len(got))
	}
	if got[0].ID != "d2" || got[1].ID != "e1" || got[2].ID != "d1" {
		t.Fatalf("order = %s %s %s, want d2 e1 d1 (newest first)", got[0].ID, got[1].ID, got[2].ID)
	}

	totals := l.Totals()
	if totals.Income != 140 || totals.Expense != 70 || totals.Net != 70 {
		t.Fatalf("totals = %+v, want income 140 expense 70 net 70", totals)
	}

	if l.DonationsState() != reconcile.StateLoaded || l.ExpensesState() != reconcile.StateLoaded {
		t.Fatalf("states = %v/%v, want both loaded", l.DonationsState(), l.ExpensesState())
	}
}

func TestLedger_SetSortReordersWithoutRefetch(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch r.URL.Path {
		case "/donations":
			_, _ = w.Write([]byte(txEnvelope(1, 1,
				`{"id":"d1","title":"Offering","amount":100},
				 {"id":"d2","title":"Pledge","amount":40}`)))
		case "/expenses":
			_, _ = w.Write([]byte(txEnvelope(1, 1, `{"id":"e1","title":"Rent","amount":70}`)))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL, nil, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	noNotify := func(reconcile.Notice) {}
	l := NewLedger(client, &memTxStore{}, &memTxStore{}, alwaysOnline(), noNotify, noNotify, 10, nil)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	fetched := requests

	l.SetSort(constants.SortByAmount, constants.SortAsc)
	got := l.Transactions()
	if got[0].Amount != 40 || got[2].Amount != 100 {
		t.Fatalf("amount-asc order = %v %v %v, want 40 70 100", got[0].Amount, got[1].Amount, got[2].Amount)
	}
	// SetSort is display-only.
	if requests != fetched {
		t.Fatalf("requests = %d, want %d (SetSort must not refetch)", requests, fetched)
	}
}

func TestLedger_SetFilterRefetchesWithQuery(t *testing.T) {
	var donQuery url.Values
	server := newLedgerServer(t, map[string]*url.Values{"/donations": &donQuery})
	client, err := api.NewClient(server.URL, nil, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	noNotify := func(reconcile.Notice) {}
	l := NewLedger(client, &memTxStore{}, &memTxStore{}, alwaysOnline(), noNotify, noNotify, 10, nil)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if err := l.SetFilter(context.Background(), Filter{SubcategoryID: "sub-1", StartDate: &start}); err != nil {
		t.Fatalf("SetFilter returned error: %v", err)
	}
	if donQuery.Get("subcategory_id") != "sub-1" {
		t.Fatalf("query = %v, want subcategory filter applied", donQuery)
	}
	if donQuery.Get("startDate") != "2025-03-01" {
		t.Fatalf("query = %v, want start date applied", donQuery)
	}
	if donQuery.Get("page") != "1" {
		t.Fatalf("page = %q, want pagination reset to 1", donQuery.Get("page"))
	}
}
