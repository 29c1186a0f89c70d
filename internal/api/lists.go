package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/communityhub/mobilecore/internal/entity"
)

// News fetches one page of the news feed.
func (c *Client) News(ctx context.Context, page, limit int) ([]entity.NewsItem, entity.Pagination, error) {
	values := pageValues(page, limit)
	rel := &url.URL{Path: "/news", RawQuery: values.Encode()}
	var items []entity.NewsItem
	pg, err := c.getList(ctx, rel, &items)
	if err != nil {
		return nil, entity.Pagination{}, err
	}
	return items, pg, nil
}

// Gallery fetches one page of gallery images. An empty status means the
// server default.
func (c *Client) Gallery(ctx context.Context, page, limit int, status string) ([]entity.GalleryImage, entity.Pagination, error) {
	values := pageValues(page, limit)
	if s := strings.TrimSpace(status); s != "" {
		values.Set("status", s)
	}
	rel := &url.URL{Path: "/gallery", RawQuery: values.Encode()}
	var items []entity.GalleryImage
	pg, err := c.getList(ctx, rel, &items)
	if err != nil {
		return nil, entity.Pagination{}, err
	}
	return items, pg, nil
}

// ActiveUsers fetches one page of daily active users for the given date.
func (c *Client) ActiveUsers(ctx context.Context, date time.Time, page, limit int) ([]entity.ActiveUser, entity.Pagination, error) {
	values := pageValues(page, limit)
	if !date.IsZero() {
		values.Set("date", date.Format("2006-01-02"))
	}
	rel := &url.URL{Path: "/daily-active-users/active-users", RawQuery: values.Encode()}
	var items []entity.ActiveUser
	pg, err := c.getList(ctx, rel, &items)
	if err != nil {
		return nil, entity.Pagination{}, err
	}
	return items, pg, nil
}

func pageValues(page, limit int) url.Values {
	values := url.Values{}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	return values
}
