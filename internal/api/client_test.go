package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/communityhub/mobilecore/internal/entity"
)

type tokenFunc func(ctx context.Context) (string, error)

func (f tokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

func staticToken(tok string) TokenSource {
	return tokenFunc(func(context.Context) (string, error) { return tok, nil })
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	if _, err := parseBaseURL(""); err == nil {
		t.Fatal("parseBaseURL(\"\") error = nil, want failure")
	}

	u, err := parseBaseURL("api.example.org")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}

	u, err = parseBaseURL("http://api.example.org/v1?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_NewsDecodesEnvelopeAndSendsAuth(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/news" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": {
				"items": [
					{"id": "n1", "title": "Opening", "author": "admin"},
					{"id": "n2", "title": "Fundraiser"}
				],
				"pagination": {"page": 1, "limit": 2, "total": 6, "totalPages": 3}
			}
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, staticToken("tok-123"), 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	items, pg, err := c.News(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("News returned error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotQuery.Get("page") != "1" || gotQuery.Get("limit") != "2" {
		t.Fatalf("query = %v, want page=1 limit=2", gotQuery)
	}
	if len(items) != 2 || items[0].ID != "n1" || items[0].Title != "Opening" {
		t.Fatalf("items = %#v, want 2 decoded news items", items)
	}
	if pg.TotalPages != 3 || !pg.HasMore() {
		t.Fatalf("pagination = %#v, want totalPages=3 with more", pg)
	}
}

func TestClient_EmptyTokenSendsNoAuthHeader(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"data":{"items":[],"pagination":{"page":1,"totalPages":1}}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, staticToken(""), 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, _, err := c.News(context.Background(), 1, 10); err != nil {
		t.Fatalf("News returned error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClient_NonOKStatusIsServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database exploded"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, nil, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, _, err = c.News(context.Background(), 1, 10)
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("error = %v (%T), want *ServerError", err, err)
	}
	if srvErr.Status != http.StatusInternalServerError || srvErr.Message != "database exploded" {
		t.Fatalf("ServerError = %#v, want status 500 with message", srvErr)
	}
	if IsNetworkError(err) {
		t.Fatal("server error classified as network error")
	}
}

func TestClient_EnvelopeFailureIsServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"unauthorized","data":{"items":[]}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, nil, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, _, err = c.News(context.Background(), 1, 10)
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("error = %v (%T), want *ServerError", err, err)
	}
	if srvErr.Message != "unauthorized" {
		t.Fatalf("message = %q, want server-provided message", srvErr.Message)
	}
}

func TestClient_SchemaViolationIsParseError(t *testing.T) {
	t.Parallel()

	// "items" missing: the envelope fails schema validation before decoding.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"pagination":{"page":1,"totalPages":1}}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, nil, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, _, err = c.News(context.Background(), 1, 10)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v (%T), want *ParseError", err, err)
	}
}

func TestClient_InvalidJSONIsParseError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": tru`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, nil, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, _, err = c.News(context.Background(), 1, 10)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v (%T), want *ParseError", err, err)
	}
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	c, err := NewClient(server.URL, nil, time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, _, err = c.News(context.Background(), 1, 10)
	if !IsNetworkError(err) {
		t.Fatalf("error = %v, want network-unavailable classification", err)
	}
}

func TestClient_DonationsStampKindAndEncodeFilter(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/donations" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"items": [{"id": "t1", "title": "Tithe", "amount": 50}],
				"pagination": {"page": 1, "totalPages": 1}
			}
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, nil, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	items, _, err := c.Donations(context.Background(), TransactionQuery{
		SubcategoryID: "sub-9",
		Page:          1,
		Limit:         10,
		StartDate:     &start,
	})
	if err != nil {
		t.Fatalf("Donations returned error: %v", err)
	}
	if gotQuery.Get("subcategory_id") != "sub-9" || gotQuery.Get("startDate") != "2025-01-01" {
		t.Fatalf("query = %v, want subcategory and start date encoded", gotQuery)
	}
	if len(items) != 1 || items[0].Kind != entity.TxIncome {
		t.Fatalf("items = %#v, want one item stamped income", items)
	}
}

func TestClient_ExpensesStampExpenseKind(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/expenses" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"items": [{"id": "t2", "title": "Rent", "amount": 900}],
				"pagination": {"page": 1, "totalPages": 1}
			}
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, nil, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	items, _, err := c.Expenses(context.Background(), TransactionQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("Expenses returned error: %v", err)
	}
	if len(items) != 1 || items[0].Kind != entity.TxExpense {
		t.Fatalf("items = %#v, want one item stamped expense", items)
	}
}
