package snapshot

import (
	"context"
	"log/slog"

	"github.com/communityhub/mobilecore/gen/ent"
	"github.com/communityhub/mobilecore/gen/ent/cachedgalleryimage"
	"github.com/communityhub/mobilecore/internal/entity"
)

// GalleryStore is the gallery offline snapshot.
type GalleryStore interface {
	Replace(ctx context.Context, items []entity.GalleryImage) error
	Read(ctx context.Context) ([]entity.GalleryImage, error)
}

type galleryStore struct {
	client *ent.Client
	limit  int
	logger *slog.Logger
}

func NewGalleryStore(client *ent.Client, limit int, logger *slog.Logger) GalleryStore {
	return &galleryStore{client: client, limit: limit, logger: logger}
}

func (s *galleryStore) Replace(ctx context.Context, items []entity.GalleryImage) error {
	items = bound(items, s.limit)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.CachedGalleryImage.Delete().Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	builders := make([]*ent.CachedGalleryImageCreate, len(items))
	for i, it := range items {
		builders[i] = tx.CachedGalleryImage.Create().
			SetID(it.ID).
			SetTitle(it.Title).
			SetURL(it.URL).
			SetThumbnailURL(it.ThumbnailURL).
			SetStatus(it.Status).
			SetUploadedBy(it.UploadedBy).
			SetUploadedAt(it.UploadedAt).
			SetPosition(i)
	}
	if _, err := tx.CachedGalleryImage.CreateBulk(builders...).Save(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Debug("gallery snapshot replaced", "count", len(items))
	return nil
}

func (s *galleryStore) Read(ctx context.Context) ([]entity.GalleryImage, error) {
	rows, err := s.client.CachedGalleryImage.Query().
		Order(cachedgalleryimage.ByPosition()).
		All(ctx)
	if err != nil {
		s.logger.Error("failed to read gallery snapshot", "error", err)
		return nil, err
	}
	items := make([]entity.GalleryImage, len(rows))
	for i, row := range rows {
		items[i] = entity.GalleryImage{
			ID:           row.ID,
			Title:        row.Title,
			URL:          row.URL,
			ThumbnailURL: row.ThumbnailURL,
			Status:       row.Status,
			UploadedBy:   row.UploadedBy,
			UploadedAt:   row.UploadedAt,
		}
	}
	return items, nil
}
