// Package server exposes the synchronized lists to the UI shell over a local
// gRPC socket. RPCs map one-to-one to UI triggers; degraded outcomes
// (offline, fetch failure) come back as list state plus a one-shot notice,
// not as RPC errors.
package server

import (
	"log/slog"
	"sync"

	communitypb "github.com/communityhub/mobilecore/gen/proto/community/v1"
	"github.com/communityhub/mobilecore/constants"
	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/export"
	"github.com/communityhub/mobilecore/internal/feeds"
	"github.com/communityhub/mobilecore/internal/reconcile"
)

// NoticeBox collects the latest pending notice per feed. Notices are one-shot:
// Take returns and clears. One box is shared by all feeds so the daemon wiring
// stays in one place, but entries are keyed per feed and never collide.
type NoticeBox struct {
	mu      sync.Mutex
	pending map[constants.FeedKind]string
}

func NewNoticeBox() *NoticeBox {
	return &NoticeBox{pending: make(map[constants.FeedKind]string)}
}

// Sink returns a notifier for one feed, suitable for reconcile.WithNotifier.
func (nb *NoticeBox) Sink(kind constants.FeedKind) func(reconcile.Notice) {
	return func(n reconcile.Notice) {
		nb.mu.Lock()
		defer nb.mu.Unlock()
		nb.pending[kind] = n.Message
	}
}

// Take consumes the pending notice for a feed, if any.
func (nb *NoticeBox) Take(kind constants.FeedKind) string {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	msg := nb.pending[kind]
	delete(nb.pending, kind)
	return msg
}

// FeedService implements communitypb.FeedServiceServer.
type FeedService struct {
	communitypb.UnimplementedFeedServiceServer
	news     *reconcile.List[entity.NewsItem]
	gallery  *feeds.GalleryFeed
	users    *feeds.ActiveUserList
	ledger   *feeds.Ledger
	board    *feeds.CategoryBoard
	exporter *export.Service
	notices  *NoticeBox
	logger   *slog.Logger
}

func NewFeedService(
	news *reconcile.List[entity.NewsItem],
	gallery *feeds.GalleryFeed,
	users *feeds.ActiveUserList,
	ledger *feeds.Ledger,
	board *feeds.CategoryBoard,
	exporter *export.Service,
	notices *NoticeBox,
	logger *slog.Logger,
) *FeedService {
	return &FeedService{
		news:     news,
		gallery:  gallery,
		users:    users,
		ledger:   ledger,
		board:    board,
		exporter: exporter,
		notices:  notices,
		logger:   logger,
	}
}

func (s *FeedService) listStatus(kind constants.FeedKind, state reconcile.State, hasMore bool) *communitypb.ListStatus {
	return &communitypb.ListStatus{
		State:   state.String(),
		HasMore: hasMore,
		Notice:  s.notices.Take(kind),
	}
}
