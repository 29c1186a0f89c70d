package feeds

import (
	"context"
	"log/slog"
	"sync"

	"github.com/communityhub/mobilecore/internal/api"
	"github.com/communityhub/mobilecore/internal/connectivity"
	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/reconcile"
	"github.com/communityhub/mobilecore/internal/snapshot"
)

// GalleryFeed is the gallery list plus its status filter. A status change
// resets pagination and reloads from page 1; a stale response from before the
// change is discarded by the reconciler's sequence check.
type GalleryFeed struct {
	list *reconcile.List[entity.GalleryImage]

	mu     sync.Mutex
	status string
}

func NewGalleryFeed(client *api.Client, store snapshot.GalleryStore, checker connectivity.Checker,
	notify func(reconcile.Notice), pageSize int, logger *slog.Logger) *GalleryFeed {

	g := &GalleryFeed{}
	fetch := func(ctx context.Context, page, limit int) (reconcile.Page[entity.GalleryImage], error) {
		g.mu.Lock()
		status := g.status
		g.mu.Unlock()
		items, pg, err := client.Gallery(ctx, page, limit, status)
		if err != nil {
			return reconcile.Page[entity.GalleryImage]{}, err
		}
		return reconcile.Page[entity.GalleryImage]{Items: items, TotalPages: pg.TotalPages}, nil
	}
	g.list = reconcile.NewList(fetch,
		reconcile.WithSnapshot[entity.GalleryImage](store),
		reconcile.WithChecker[entity.GalleryImage](checker),
		reconcile.WithNotifier[entity.GalleryImage](notify),
		reconcile.WithOfflineClassifier[entity.GalleryImage](api.IsNetworkError),
		reconcile.WithPageSize[entity.GalleryImage](pageSize),
		reconcile.WithLogger[entity.GalleryImage](logger),
	)
	return g
}

// SetStatus changes the status filter and reloads from page 1.
func (g *GalleryFeed) SetStatus(ctx context.Context, status string) error {
	g.mu.Lock()
	g.status = status
	g.mu.Unlock()
	g.list.Reset()
	return g.list.Load(ctx)
}

func (g *GalleryFeed) Load(ctx context.Context) error     { return g.list.Load(ctx) }
func (g *GalleryFeed) Refresh(ctx context.Context) error  { return g.list.Refresh(ctx) }
func (g *GalleryFeed) LoadMore(ctx context.Context) error { return g.list.LoadMore(ctx) }
func (g *GalleryFeed) Items() []entity.GalleryImage       { return g.list.Items() }
func (g *GalleryFeed) State() reconcile.State             { return g.list.State() }
func (g *GalleryFeed) HasMore() bool                      { return g.list.HasMore() }
func (g *GalleryFeed) ConnectivityChanged(online bool)    { g.list.ConnectivityChanged(online) }
