package snapshot

import (
	"context"
	"log/slog"
	"time"

	"github.com/communityhub/mobilecore/gen/ent"
	"github.com/communityhub/mobilecore/gen/ent/pinnedcategory"
)

// PinStore persists which donation categories the user pinned.
type PinStore interface {
	Pin(ctx context.Context, categoryID string) error
	Unpin(ctx context.Context, categoryID string) error
	Pinned(ctx context.Context) (map[string]time.Time, error)
}

type pinStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPinStore(client *ent.Client, logger *slog.Logger) PinStore {
	return &pinStore{client: client, logger: logger}
}

// Pin records categoryID as pinned. Pinning an already pinned category is a
// no-op.
func (s *pinStore) Pin(ctx context.Context, categoryID string) error {
	exists, err := s.client.PinnedCategory.Query().
		Where(pinnedcategory.CategoryID(categoryID)).
		Exist(ctx)
	if err != nil {
		s.logger.Error("failed to query pin", "category_id", categoryID, "error", err)
		return err
	}
	if exists {
		return nil
	}
	_, err = s.client.PinnedCategory.Create().
		SetCategoryID(categoryID).
		SetPinnedAt(time.Now()).
		Save(ctx)
	if err != nil {
		s.logger.Error("failed to pin category", "category_id", categoryID, "error", err)
	}
	return err
}

// Unpin deletes the pin row. Unpinning an unpinned category is a no-op.
func (s *pinStore) Unpin(ctx context.Context, categoryID string) error {
	_, err := s.client.PinnedCategory.Delete().
		Where(pinnedcategory.CategoryID(categoryID)).
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to unpin category", "category_id", categoryID, "error", err)
	}
	return err
}

// Pinned returns every pinned category ID with its pin time.
func (s *pinStore) Pinned(ctx context.Context) (map[string]time.Time, error) {
	rows, err := s.client.PinnedCategory.Query().All(ctx)
	if err != nil {
		s.logger.Error("failed to list pins", "error", err)
		return nil, err
	}
	pins := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		pins[row.CategoryID] = row.PinnedAt
	}
	return pins, nil
}
