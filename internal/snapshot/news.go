package snapshot

import (
	"context"
	"log/slog"

	"github.com/communityhub/mobilecore/gen/ent"
	"github.com/communityhub/mobilecore/gen/ent/cachednewsitem"
	"github.com/communityhub/mobilecore/internal/entity"
)

// NewsStore is the news offline snapshot: Replace swaps the whole set in one
// transaction, Read returns it in stored order.
type NewsStore interface {
	Replace(ctx context.Context, items []entity.NewsItem) error
	Read(ctx context.Context) ([]entity.NewsItem, error)
}

type newsStore struct {
	client *ent.Client
	limit  int
	logger *slog.Logger
}

func NewNewsStore(client *ent.Client, limit int, logger *slog.Logger) NewsStore {
	return &newsStore{client: client, limit: limit, logger: logger}
}

func (s *newsStore) Replace(ctx context.Context, items []entity.NewsItem) error {
	items = bound(items, s.limit)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.CachedNewsItem.Delete().Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	builders := make([]*ent.CachedNewsItemCreate, len(items))
	for i, it := range items {
		builders[i] = tx.CachedNewsItem.Create().
			SetID(it.ID).
			SetTitle(it.Title).
			SetSummary(it.Summary).
			SetImageURL(it.ImageURL).
			SetAuthor(it.Author).
			SetLikeCount(it.LikeCount).
			SetCommentCount(it.CommentCount).
			SetPublishedAt(it.PublishedAt).
			SetPosition(i)
	}
	if _, err := tx.CachedNewsItem.CreateBulk(builders...).Save(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Debug("news snapshot replaced", "count", len(items))
	return nil
}

func (s *newsStore) Read(ctx context.Context) ([]entity.NewsItem, error) {
	rows, err := s.client.CachedNewsItem.Query().
		Order(cachednewsitem.ByPosition()).
		All(ctx)
	if err != nil {
		s.logger.Error("failed to read news snapshot", "error", err)
		return nil, err
	}
	items := make([]entity.NewsItem, len(rows))
	for i, row := range rows {
		items[i] = entity.NewsItem{
			ID:           row.ID,
			Title:        row.Title,
			Summary:      row.Summary,
			ImageURL:     row.ImageURL,
			Author:       row.Author,
			LikeCount:    row.LikeCount,
			CommentCount: row.CommentCount,
			PublishedAt:  row.PublishedAt,
		}
	}
	return items, nil
}
