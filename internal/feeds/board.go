package feeds

import (
	"context"
	"log/slog"
	"sync"

	"github.com/communityhub/mobilecore/internal/api"
	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/snapshot"
)

// CategoryBoard is the donation-category screen: the remote category list
// decorated with local pin state, ordered pinned-first then by name.
type CategoryBoard struct {
	client *api.Client
	pins   snapshot.PinStore
	logger *slog.Logger

	mu         sync.Mutex
	categories []entity.Category
}

func NewCategoryBoard(client *api.Client, pins snapshot.PinStore, logger *slog.Logger) *CategoryBoard {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryBoard{client: client, pins: pins, logger: logger}
}

// Load fetches categories, applies pin state and sorts. A pin-store read
// failure degrades to "nothing pinned"; it is never surfaced.
func (b *CategoryBoard) Load(ctx context.Context) error {
	cats, err := b.client.Categories(ctx)
	if err != nil {
		return err
	}

	pinned, err := b.pins.Pinned(ctx)
	if err != nil {
		b.logger.Warn("pin read failed, treating as unpinned", "error", err)
		pinned = nil
	}
	for i := range cats {
		if at, ok := pinned[cats[i].ID]; ok {
			cats[i].Pinned = true
			t := at
			cats[i].PinnedAt = &t
		}
	}
	SortCategories(cats)

	b.mu.Lock()
	b.categories = cats
	b.mu.Unlock()
	return nil
}

// Pin persists the pin and reorders the in-memory board.
func (b *CategoryBoard) Pin(ctx context.Context, categoryID string) error {
	if err := b.pins.Pin(ctx, categoryID); err != nil {
		return err
	}
	b.setPinned(categoryID, true)
	return nil
}

// Unpin removes the pin and reorders the in-memory board.
func (b *CategoryBoard) Unpin(ctx context.Context, categoryID string) error {
	if err := b.pins.Unpin(ctx, categoryID); err != nil {
		return err
	}
	b.setPinned(categoryID, false)
	return nil
}

func (b *CategoryBoard) setPinned(categoryID string, pinned bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.categories {
		if b.categories[i].ID == categoryID {
			b.categories[i].Pinned = pinned
			if !pinned {
				b.categories[i].PinnedAt = nil
			}
		}
	}
	SortCategories(b.categories)
}

// Categories returns a copy of the board in display order.
func (b *CategoryBoard) Categories() []entity.Category {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.categories) == 0 {
		return nil
	}
	dup := make([]entity.Category, len(b.categories))
	copy(dup, b.categories)
	return dup
}

// Subcategories lists the subcategories of one category.
func (b *CategoryBoard) Subcategories(ctx context.Context, categoryID string) ([]entity.Subcategory, error) {
	return b.client.Subcategories(ctx, categoryID)
}
