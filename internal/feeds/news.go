// Package feeds wires the reconciler to the concrete list instances the app
// shows: news, gallery, active users, the donation/expense ledger and the
// category board.
package feeds

import (
	"context"
	"log/slog"

	"github.com/communityhub/mobilecore/internal/api"
	"github.com/communityhub/mobilecore/internal/connectivity"
	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/reconcile"
	"github.com/communityhub/mobilecore/internal/snapshot"
)

// NewNewsFeed builds the news list: snapshot-backed, initial-load failures
// clear the screen.
func NewNewsFeed(client *api.Client, store snapshot.NewsStore, checker connectivity.Checker,
	notify func(reconcile.Notice), pageSize int, logger *slog.Logger) *reconcile.List[entity.NewsItem] {

	fetch := func(ctx context.Context, page, limit int) (reconcile.Page[entity.NewsItem], error) {
		items, pg, err := client.News(ctx, page, limit)
		if err != nil {
			return reconcile.Page[entity.NewsItem]{}, err
		}
		return reconcile.Page[entity.NewsItem]{Items: items, TotalPages: pg.TotalPages}, nil
	}
	return reconcile.NewList(fetch,
		reconcile.WithSnapshot[entity.NewsItem](store),
		reconcile.WithChecker[entity.NewsItem](checker),
		reconcile.WithNotifier[entity.NewsItem](notify),
		reconcile.WithOfflineClassifier[entity.NewsItem](api.IsNetworkError),
		reconcile.WithPageSize[entity.NewsItem](pageSize),
		reconcile.WithClearOnError[entity.NewsItem](),
		reconcile.WithLogger[entity.NewsItem](logger),
	)
}
