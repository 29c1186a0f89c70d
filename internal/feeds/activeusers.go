package feeds

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/communityhub/mobilecore/internal/api"
	"github.com/communityhub/mobilecore/internal/connectivity"
	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/reconcile"
)

// ActiveUserList is the daily-active-users list plus its date filter. Active
// users are transient; there is no offline snapshot for them.
type ActiveUserList struct {
	list *reconcile.List[entity.ActiveUser]

	mu   sync.Mutex
	date time.Time
}

func NewActiveUserList(client *api.Client, checker connectivity.Checker,
	notify func(reconcile.Notice), pageSize int, logger *slog.Logger) *ActiveUserList {

	a := &ActiveUserList{date: time.Now()}
	fetch := func(ctx context.Context, page, limit int) (reconcile.Page[entity.ActiveUser], error) {
		a.mu.Lock()
		date := a.date
		a.mu.Unlock()
		items, pg, err := client.ActiveUsers(ctx, date, page, limit)
		if err != nil {
			return reconcile.Page[entity.ActiveUser]{}, err
		}
		return reconcile.Page[entity.ActiveUser]{Items: items, TotalPages: pg.TotalPages}, nil
	}
	a.list = reconcile.NewList(fetch,
		reconcile.WithChecker[entity.ActiveUser](checker),
		reconcile.WithNotifier[entity.ActiveUser](notify),
		reconcile.WithOfflineClassifier[entity.ActiveUser](api.IsNetworkError),
		reconcile.WithPageSize[entity.ActiveUser](pageSize),
		reconcile.WithClearOnError[entity.ActiveUser](),
		reconcile.WithLogger[entity.ActiveUser](logger),
	)
	return a
}

// SetDate changes the report date and reloads from page 1.
func (a *ActiveUserList) SetDate(ctx context.Context, date time.Time) error {
	a.mu.Lock()
	a.date = date
	a.mu.Unlock()
	a.list.Reset()
	return a.list.Load(ctx)
}

func (a *ActiveUserList) Load(ctx context.Context) error     { return a.list.Load(ctx) }
func (a *ActiveUserList) Refresh(ctx context.Context) error  { return a.list.Refresh(ctx) }
func (a *ActiveUserList) LoadMore(ctx context.Context) error { return a.list.LoadMore(ctx) }
func (a *ActiveUserList) Items() []entity.ActiveUser         { return a.list.Items() }
func (a *ActiveUserList) State() reconcile.State             { return a.list.State() }
func (a *ActiveUserList) HasMore() bool                      { return a.list.HasMore() }
func (a *ActiveUserList) ConnectivityChanged(online bool)    { a.list.ConnectivityChanged(online) }
