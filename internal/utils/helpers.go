package utils

import (
	"time"

	communitypb "github.com/communityhub/mobilecore/gen/proto/community/v1"
	"github.com/communityhub/mobilecore/internal/entity"
)

// ParseYMD parses a YYYY-MM-DD date as midnight UTC.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func timeOrEmpty(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToPBNewsItem(n entity.NewsItem) *communitypb.NewsItem {
	return &communitypb.NewsItem{
		Id:           n.ID,
		Title:        n.Title,
		Summary:      n.Summary,
		ImageUrl:     n.ImageURL,
		Author:       n.Author,
		LikeCount:    int32(n.LikeCount),
		CommentCount: int32(n.CommentCount),
		PublishedAt:  timeOrEmpty(n.PublishedAt),
	}
}

func ToPBGalleryImage(g entity.GalleryImage) *communitypb.GalleryImage {
	return &communitypb.GalleryImage{
		Id:           g.ID,
		Title:        g.Title,
		Url:          g.URL,
		ThumbnailUrl: g.ThumbnailURL,
		Status:       g.Status,
		UploadedBy:   g.UploadedBy,
		UploadedAt:   timeOrEmpty(g.UploadedAt),
	}
}

func ToPBActiveUser(u entity.ActiveUser) *communitypb.ActiveUser {
	return &communitypb.ActiveUser{
		Id:        u.ID,
		FullName:  u.FullName,
		AvatarUrl: u.AvatarURL,
		LastSeen:  timeOrEmpty(u.LastSeen),
	}
}

func ToPBTransaction(t entity.Transaction) *communitypb.Transaction {
	out := &communitypb.Transaction{
		Id:            t.ID,
		Kind:          string(t.Kind),
		SubcategoryId: t.SubcategoryID,
		Title:         t.Title,
		Amount:        t.Amount,
		CurrencyCode:  t.CurrencyCode,
		RecordedBy:    t.RecordedBy,
		Note:          t.Note,
	}
	if !t.TxDate.IsZero() {
		out.TxDate = t.TxDate.Format("2006-01-02")
	}
	return out
}

func ToPBCategory(c entity.Category) *communitypb.Category {
	out := &communitypb.Category{
		Id:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Pinned:      c.Pinned,
	}
	if c.PinnedAt != nil {
		out.PinnedAt = c.PinnedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func ToPBSubcategory(s entity.Subcategory) *communitypb.Subcategory {
	return &communitypb.Subcategory{
		Id:         s.ID,
		CategoryId: s.CategoryID,
		Name:       s.Name,
	}
}
