package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/communityhub/mobilecore/internal/connectivity"
)

type fakeSnap struct {
	items      []string
	readErr    error
	replaceErr error
	replaced   [][]string
}

func (s *fakeSnap) Replace(_ context.Context, items []string) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaced = append(s.replaced, items)
	s.items = items
	return nil
}

func (s *fakeSnap) Read(context.Context) ([]string, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.items, nil
}

func online(v bool) connectivity.Checker {
	return connectivity.Func(func(context.Context) bool { return v })
}

func pageFetch(pages map[int]Page[string], err error) FetchFunc[string] {
	return func(_ context.Context, page, _ int) (Page[string], error) {
		if err != nil {
			return Page[string]{}, err
		}
		return pages[page], nil
	}
}

func TestLoad_SuccessReplacesItemsAndWritesSnapshot(t *testing.T) {
	snap := &fakeSnap{items: []string{"stale"}}
	l := NewList(pageFetch(map[int]Page[string]{
		1: {Items: []string{"a", "b"}, TotalPages: 3},
	}, nil),
		WithSnapshot[string](snap),
		WithChecker[string](online(true)),
	)

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := l.Items(); len(got) != 2 || got[0] != "a" {
		t.Fatalf("Items = %v, want [a b]", got)
	}
	if l.State() != StateLoaded {
		t.Fatalf("State = %v, want %v", l.State(), StateLoaded)
	}
	if !l.HasMore() {
		t.Fatal("HasMore = false, want true with 3 total pages")
	}
	if len(snap.replaced) != 1 || len(snap.replaced[0]) != 2 {
		t.Fatalf("snapshot writes = %v, want one write of 2 items", snap.replaced)
	}
}

func TestLoad_EmptyPageDoesNotOverwriteSnapshot(t *testing.T) {
	snap := &fakeSnap{items: []string{"keep"}}
	l := NewList(pageFetch(map[int]Page[string]{
		1: {Items: nil, TotalPages: 1},
	}, nil), WithSnapshot[string](snap))

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(snap.replaced) != 0 {
		t.Fatalf("snapshot written for empty page: %v", snap.replaced)
	}
	if snap.items[0] != "keep" {
		t.Fatalf("snapshot items = %v, want [keep]", snap.items)
	}
}

func TestLoad_SnapshotWriteFailureIsSilent(t *testing.T) {
	snap := &fakeSnap{replaceErr: errors.New("disk full")}
	l := NewList(pageFetch(map[int]Page[string]{
		1: {Items: []string{"a"}, TotalPages: 1},
	}, nil), WithSnapshot[string](snap))

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v, want nil despite snapshot failure", err)
	}
	if l.State() != StateLoaded {
		t.Fatalf("State = %v, want %v", l.State(), StateLoaded)
	}
}

func TestLoad_OfflineFallsBackToSnapshot(t *testing.T) {
	snap := &fakeSnap{items: []string{"cached"}}
	var notices []Notice
	l := NewList(pageFetch(nil, errors.New("should not be called")),
		WithSnapshot[string](snap),
		WithChecker[string](online(false)),
		WithNotifier[string](func(n Notice) { notices = append(notices, n) }),
	)

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := l.Items(); len(got) != 1 || got[0] != "cached" {
		t.Fatalf("Items = %v, want [cached]", got)
	}
	if l.State() != StateOffline {
		t.Fatalf("State = %v, want %v", l.State(), StateOffline)
	}
	if l.HasMore() {
		t.Fatal("HasMore = true, want false when offline")
	}
	if len(notices) != 1 || notices[0].Kind != NoticeOffline {
		t.Fatalf("notices = %v, want one offline notice", notices)
	}
}

func TestLoad_OfflineNoticeIsOneShotUntilReconnect(t *testing.T) {
	var notices []Notice
	l := NewList(pageFetch(nil, nil),
		WithChecker[string](online(false)),
		WithNotifier[string](func(n Notice) { notices = append(notices, n) }),
	)

	_ = l.Load(context.Background())
	_ = l.Refresh(context.Background())
	if len(notices) != 1 {
		t.Fatalf("notices after two offline loads = %d, want 1", len(notices))
	}

	l.ConnectivityChanged(true)
	_ = l.Load(context.Background())
	if len(notices) != 2 {
		t.Fatalf("notices after reconnect and re-offline = %d, want 2", len(notices))
	}
}

func TestLoad_NetworkErrorRoutesToSnapshot(t *testing.T) {
	netErr := errors.New("connection refused")
	snap := &fakeSnap{items: []string{"cached"}}
	l := NewList(pageFetch(nil, netErr),
		WithSnapshot[string](snap),
		WithChecker[string](online(true)),
		WithOfflineClassifier[string](func(err error) bool { return errors.Is(err, netErr) }),
	)

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v, want nil after fallback", err)
	}
	if l.State() != StateOffline {
		t.Fatalf("State = %v, want %v", l.State(), StateOffline)
	}
	if got := l.Items(); len(got) != 1 || got[0] != "cached" {
		t.Fatalf("Items = %v, want [cached]", got)
	}
}

func TestLoad_ServerErrorSetsErrorStateAndClears(t *testing.T) {
	srvErr := errors.New("HTTP 500")
	var notices []Notice
	l := NewList(pageFetch(nil, srvErr),
		WithClearOnError[string](),
		WithNotifier[string](func(n Notice) { notices = append(notices, n) }),
	)
	// Seed items via a prior successful load shape.
	l.items = []string{"old"}

	if err := l.Load(context.Background()); !errors.Is(err, srvErr) {
		t.Fatalf("Load error = %v, want %v", err, srvErr)
	}
	if l.State() != StateError {
		t.Fatalf("State = %v, want %v", l.State(), StateError)
	}
	if got := l.Items(); got != nil {
		t.Fatalf("Items = %v, want nil after clear-on-error", got)
	}
	if len(notices) != 1 || notices[0].Kind != NoticeLoadFailed {
		t.Fatalf("notices = %v, want one load-failed notice", notices)
	}
}

func TestLoad_ServerErrorKeepsItemsWithoutClearPolicy(t *testing.T) {
	srvErr := errors.New("HTTP 500")
	l := NewList(pageFetch(nil, srvErr))
	l.items = []string{"old"}

	_ = l.Load(context.Background())
	if got := l.Items(); len(got) != 1 || got[0] != "old" {
		t.Fatalf("Items = %v, want [old] kept on error", got)
	}
}

func TestLoadMore_AppendsAndAdvances(t *testing.T) {
	l := NewList(pageFetch(map[int]Page[string]{
		1: {Items: []string{"a"}, TotalPages: 2},
		2: {Items: []string{"b"}, TotalPages: 2},
	}, nil))

	_ = l.Load(context.Background())
	if err := l.LoadMore(context.Background()); err != nil {
		t.Fatalf("LoadMore returned error: %v", err)
	}
	if got := l.Items(); len(got) != 2 || got[1] != "b" {
		t.Fatalf("Items = %v, want [a b]", got)
	}
	if l.HasMore() {
		t.Fatal("HasMore = true after last page, want false")
	}
	if l.State() != StateLoaded {
		t.Fatalf("State = %v, want %v", l.State(), StateLoaded)
	}
}

func TestLoadMore_FailureKeepsLoadedItems(t *testing.T) {
	calls := 0
	fetch := func(_ context.Context, page, _ int) (Page[string], error) {
		calls++
		if page == 1 {
			return Page[string]{Items: []string{"a"}, TotalPages: 5}, nil
		}
		return Page[string]{}, errors.New("boom")
	}
	var notices []Notice
	l := NewList(fetch, WithNotifier[string](func(n Notice) { notices = append(notices, n) }))

	_ = l.Load(context.Background())
	if err := l.LoadMore(context.Background()); err == nil {
		t.Fatal("LoadMore error = nil, want failure")
	}
	if got := l.Items(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("Items = %v, want [a] kept after load-more failure", got)
	}
	if l.State() != StateLoaded {
		t.Fatalf("State = %v, want %v for retry", l.State(), StateLoaded)
	}
	if len(notices) != 1 || notices[0].Kind != NoticeLoadMoreFailed {
		t.Fatalf("notices = %v, want one load-more-failed notice", notices)
	}
}

func TestLoadMore_NoOpWithoutMorePages(t *testing.T) {
	calls := 0
	fetch := func(_ context.Context, _, _ int) (Page[string], error) {
		calls++
		return Page[string]{Items: []string{"a"}, TotalPages: 1}, nil
	}
	l := NewList[string](fetch)

	_ = l.Load(context.Background())
	_ = l.LoadMore(context.Background())
	if calls != 1 {
		t.Fatalf("fetch calls = %d, want 1 (load-more should be a no-op)", calls)
	}
}

func TestLoad_ReentrantTriggerIsNoOp(t *testing.T) {
	calls := 0
	var l *List[string]
	fetch := func(ctx context.Context, _, _ int) (Page[string], error) {
		calls++
		// A second trigger arriving while this fetch is in flight.
		_ = l.Load(ctx)
		return Page[string]{Items: []string{"a"}, TotalPages: 1}, nil
	}
	l = NewList[string](fetch)

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", calls)
	}
}

func TestReset_OrphansInFlightResponse(t *testing.T) {
	var l *List[string]
	fetch := func(ctx context.Context, _, _ int) (Page[string], error) {
		// The filter changes while this response is in flight.
		l.Reset()
		return Page[string]{Items: []string{"stale"}, TotalPages: 1}, nil
	}
	l = NewList[string](fetch)

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := l.Items(); got != nil {
		t.Fatalf("Items = %v, want nil (stale response must be discarded)", got)
	}
	if l.State() != StateIdle {
		t.Fatalf("State = %v, want %v after reset", l.State(), StateIdle)
	}
}

func TestItems_ReturnsIndependentCopy(t *testing.T) {
	l := NewList(pageFetch(map[int]Page[string]{
		1: {Items: []string{"a", "b"}, TotalPages: 1},
	}, nil))

	_ = l.Load(context.Background())
	got := l.Items()
	got[0] = "mutated"
	if again := l.Items(); again[0] != "a" {
		t.Fatalf("Items not cloned: got %v", again)
	}
}
