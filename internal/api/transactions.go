package api

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/communityhub/mobilecore/internal/entity"
)

// TransactionQuery carries the filter and page parameters shared by the
// donations and expenses endpoints.
type TransactionQuery struct {
	SubcategoryID string
	Page          int
	Limit         int
	StartDate     *time.Time
	EndDate       *time.Time
}

func (q TransactionQuery) values() url.Values {
	values := pageValues(q.Page, q.Limit)
	if id := strings.TrimSpace(q.SubcategoryID); id != "" {
		values.Set("subcategory_id", id)
	}
	if q.StartDate != nil {
		values.Set("startDate", q.StartDate.Format("2006-01-02"))
	}
	if q.EndDate != nil {
		values.Set("endDate", q.EndDate.Format("2006-01-02"))
	}
	return values
}

// Donations fetches one page of donation (income) records.
func (c *Client) Donations(ctx context.Context, q TransactionQuery) ([]entity.Transaction, entity.Pagination, error) {
	return c.listTransactions(ctx, "/donations", entity.TxIncome, q)
}

// Expenses fetches one page of expense records.
func (c *Client) Expenses(ctx context.Context, q TransactionQuery) ([]entity.Transaction, entity.Pagination, error) {
	return c.listTransactions(ctx, "/expenses", entity.TxExpense, q)
}

func (c *Client) listTransactions(ctx context.Context, path string, kind entity.TxKind, q TransactionQuery) ([]entity.Transaction, entity.Pagination, error) {
	rel := &url.URL{Path: path, RawQuery: q.values().Encode()}
	var items []entity.Transaction
	pg, err := c.getList(ctx, rel, &items)
	if err != nil {
		return nil, entity.Pagination{}, err
	}
	// The endpoints don't echo the record kind; it is implied by the path.
	for i := range items {
		items[i].Kind = kind
	}
	return items, pg, nil
}
