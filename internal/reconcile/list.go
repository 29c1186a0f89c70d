// Package reconcile implements the offline-aware paginated list synchronizer.
// A List decides, per fetch trigger, whether to hit the network or fall back
// to the offline snapshot, and how the result merges into displayed state.
package reconcile

import (
	"context"
	"log/slog"
	"sync"

	"github.com/communityhub/mobilecore/internal/connectivity"
)

// State is the reconciler's user-visible phase.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateLoadingMore
	StateRefreshing
	StateOffline
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateLoadingMore:
		return "loading_more"
	case StateRefreshing:
		return "refreshing"
	case StateOffline:
		return "offline"
	case StateError:
		return "error"
	}
	return "unknown"
}

// NoticeKind classifies user-facing notices the reconciler emits.
type NoticeKind int

const (
	NoticeOffline NoticeKind = iota
	NoticeLoadFailed
	NoticeLoadMoreFailed
)

// Notice is a one-shot, dismissable message for the UI.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Page is one fetched page of a remote list.
type Page[T any] struct {
	Items      []T
	TotalPages int
}

// FetchFunc requests one page from the backend.
type FetchFunc[T any] func(ctx context.Context, page, pageSize int) (Page[T], error)

// Snapshotter is the offline fallback store for a list. A nil Snapshotter
// means the list has no offline fallback.
type Snapshotter[T any] interface {
	Replace(ctx context.Context, items []T) error
	Read(ctx context.Context) ([]T, error)
}

// Option configures a List.
type Option[T any] func(*List[T])

// WithSnapshot wires the offline snapshot store.
func WithSnapshot[T any](s Snapshotter[T]) Option[T] {
	return func(l *List[T]) { l.snap = s }
}

// WithChecker wires the connectivity checker consulted before initial loads.
func WithChecker[T any](c connectivity.Checker) Option[T] {
	return func(l *List[T]) { l.checker = c }
}

// WithNotifier wires the notice sink.
func WithNotifier[T any](fn func(Notice)) Option[T] {
	return func(l *List[T]) { l.notify = fn }
}

// WithOfflineClassifier marks which fetch errors route to the offline
// fallback instead of the error state.
func WithOfflineClassifier[T any](fn func(error) bool) Option[T] {
	return func(l *List[T]) { l.isOffline = fn }
}

// WithPageSize sets the page size requested from the backend.
func WithPageSize[T any](n int) Option[T] {
	return func(l *List[T]) {
		if n > 0 {
			l.pageSize = n
		}
	}
}

// WithClearOnError makes a failed initial load clear the in-memory list
// instead of keeping the last known items. Call-site policy.
func WithClearOnError[T any]() Option[T] {
	return func(l *List[T]) { l.clearOnError = true }
}

// WithLogger sets the logger.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(l *List[T]) { l.logger = logger }
}

// List is one synchronized list instance. All flags (re-entrancy guard,
// offline-notice latch, request sequence) are fields of the instance, so
// separate lists never share state.
type List[T any] struct {
	fetch     FetchFunc[T]
	snap      Snapshotter[T]
	checker   connectivity.Checker
	notify    func(Notice)
	isOffline func(error) bool
	logger    *slog.Logger
	pageSize  int

	mu                 sync.Mutex
	state              State
	items              []T
	page               int
	hasMore            bool
	busy               bool
	offlineNoticeShown bool
	seq                uint64
	clearOnError       bool
}

func NewList[T any](fetch FetchFunc[T], opts ...Option[T]) *List[T] {
	l := &List[T]{
		fetch:    fetch,
		pageSize: 20,
		logger:   slog.Default(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load performs the initial page-1 load.
func (l *List[T]) Load(ctx context.Context) error {
	return l.loadFirst(ctx, StateLoading)
}

// Refresh reloads page 1 from any state (pull-to-refresh).
func (l *List[T]) Refresh(ctx context.Context) error {
	return l.loadFirst(ctx, StateRefreshing)
}

// Reset abandons current items and any in-flight request; the next Load
// starts from scratch. Used on filter or sort-source changes.
func (l *List[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++ // orphans in-flight responses
	l.items = nil
	l.page = 0
	l.hasMore = false
	l.state = StateIdle
}

// Items returns a copy of the currently loaded items.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.items) == 0 {
		return nil
	}
	dup := make([]T, len(l.items))
	copy(dup, l.items)
	return dup
}

// State returns the current phase.
func (l *List[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// HasMore reports whether pages beyond the loaded ones exist.
func (l *List[T]) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasMore
}

// ConnectivityChanged re-arms the one-shot offline notice when connectivity
// is regained. Wire it to the connectivity watcher.
func (l *List[T]) ConnectivityChanged(online bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if online {
		l.offlineNoticeShown = false
	}
}

func (l *List[T]) loadFirst(ctx context.Context, entering State) error {
	l.mu.Lock()
	if l.busy {
		// A fetch is already in flight; the trigger is a no-op.
		l.mu.Unlock()
		return nil
	}
	l.busy = true
	l.seq++
	seq := l.seq
	l.state = entering
	l.mu.Unlock()

	if l.checker != nil && !l.checker.IsConnected(ctx) {
		l.fallBackToSnapshot(ctx, seq)
		return nil
	}

	page, err := l.fetch(ctx, 1, l.pageSize)
	if err != nil {
		if l.isOffline != nil && l.isOffline(err) {
			l.logger.Warn("fetch failed, falling back to snapshot", "error", err)
			l.fallBackToSnapshot(ctx, seq)
			return nil
		}
		l.failLoad(seq, err)
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.busy = false
	if seq != l.seq {
		// A newer request was issued while this one was in flight.
		l.logger.Debug("stale page-1 response discarded", "seq", seq)
		return nil
	}
	l.items = page.Items
	l.page = 1
	l.hasMore = 1 < page.TotalPages
	l.state = StateLoaded
	l.offlineNoticeShown = false

	// Write-through: only a non-empty page 1 becomes the offline snapshot.
	if l.snap != nil && len(page.Items) > 0 {
		if err := l.snap.Replace(ctx, page.Items); err != nil {
			// Local-store failures degrade silently; never user-visible.
			l.logger.Warn("snapshot write-through failed", "error", err)
		}
	}
	return nil
}

// LoadMore appends the next page. Only valid from Loaded with more pages and
// no fetch in flight; anything else is a no-op.
func (l *List[T]) LoadMore(ctx context.Context) error {
	l.mu.Lock()
	if l.busy || l.state != StateLoaded || !l.hasMore {
		l.mu.Unlock()
		return nil
	}
	l.busy = true
	next := l.page + 1
	seq := l.seq
	l.state = StateLoadingMore
	l.mu.Unlock()

	page, err := l.fetch(ctx, next, l.pageSize)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.busy = false
	if seq != l.seq {
		l.logger.Debug("stale load-more response discarded", "seq", seq)
		return nil
	}
	if err != nil {
		// Already-loaded items stay; the failure is only a notice.
		l.state = StateLoaded
		l.sendNotice(Notice{Kind: NoticeLoadMoreFailed, Message: err.Error()})
		return err
	}
	l.items = append(l.items, page.Items...)
	l.page = next
	l.hasMore = next < page.TotalPages
	l.state = StateLoaded
	return nil
}

func (l *List[T]) fallBackToSnapshot(ctx context.Context, seq uint64) {
	var cached []T
	if l.snap != nil {
		var err error
		cached, err = l.snap.Read(ctx)
		if err != nil {
			// Treat a failed read as an empty cache.
			l.logger.Warn("snapshot read failed, treating as empty", "error", err)
			cached = nil
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.busy = false
	if seq != l.seq {
		return
	}
	l.items = cached
	l.page = 0
	l.hasMore = false
	l.state = StateOffline
	if !l.offlineNoticeShown {
		l.offlineNoticeShown = true
		l.sendNotice(Notice{Kind: NoticeOffline, Message: "you are offline, showing saved data"})
	}
}

func (l *List[T]) failLoad(seq uint64, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.busy = false
	if seq != l.seq {
		return
	}
	if l.clearOnError {
		l.items = nil
	}
	l.page = 0
	l.hasMore = false
	l.state = StateError
	l.sendNotice(Notice{Kind: NoticeLoadFailed, Message: err.Error()})
}

// sendNotice must be called with l.mu held; the callback itself runs outside
// any assumption about ordering with other lists.
func (l *List[T]) sendNotice(n Notice) {
	if l.notify != nil {
		l.notify(n)
	}
}
