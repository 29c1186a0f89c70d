package api

import (
	"context"
	"net/url"

	"github.com/communityhub/mobilecore/internal/entity"
)

// Categories fetches the full donation-category list. The endpoint is not
// paginated; the envelope's pagination block is ignored.
func (c *Client) Categories(ctx context.Context) ([]entity.Category, error) {
	rel := &url.URL{Path: "/categories"}
	var items []entity.Category
	if _, err := c.getList(ctx, rel, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Subcategories fetches the subcategories of one category.
func (c *Client) Subcategories(ctx context.Context, categoryID string) ([]entity.Subcategory, error) {
	rel := &url.URL{Path: "/categories/" + url.PathEscape(categoryID) + "/subcategories"}
	var items []entity.Subcategory
	if _, err := c.getList(ctx, rel, &items); err != nil {
		return nil, err
	}
	return items, nil
}
