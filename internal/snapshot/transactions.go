package snapshot

import (
	"context"
	"log/slog"

	"github.com/communityhub/mobilecore/gen/ent"
	"github.com/communityhub/mobilecore/gen/ent/cachedtransaction"
	"github.com/communityhub/mobilecore/internal/entity"
)

// TransactionStore is the donation/expense offline snapshot. Income and
// expense rows share one table; the kind column tells them apart.
type TransactionStore interface {
	Replace(ctx context.Context, items []entity.Transaction) error
	Read(ctx context.Context) ([]entity.Transaction, error)
}

type transactionStore struct {
	client *ent.Client
	kind   entity.TxKind
	limit  int
	logger *slog.Logger
}

// NewTransactionStore scopes the snapshot to one record kind so the donation
// and expense lists replace their own rows without clobbering each other.
func NewTransactionStore(client *ent.Client, kind entity.TxKind, limit int, logger *slog.Logger) TransactionStore {
	return &transactionStore{client: client, kind: kind, limit: limit, logger: logger}
}

func (s *transactionStore) Replace(ctx context.Context, items []entity.Transaction) error {
	items = bound(items, s.limit)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.CachedTransaction.Delete().
		Where(cachedtransaction.Kind(string(s.kind))).
		Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	builders := make([]*ent.CachedTransactionCreate, len(items))
	for i, it := range items {
		builders[i] = tx.CachedTransaction.Create().
			SetID(it.ID).
			SetKind(string(s.kind)).
			SetSubcategoryID(it.SubcategoryID).
			SetTitle(it.Title).
			SetAmount(it.Amount).
			SetCurrencyCode(it.CurrencyCode).
			SetTxDate(it.TxDate).
			SetRecordedBy(it.RecordedBy).
			SetNote(it.Note).
			SetPosition(i)
	}
	if _, err := tx.CachedTransaction.CreateBulk(builders...).Save(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Debug("transaction snapshot replaced", "kind", string(s.kind), "count", len(items))
	return nil
}

func (s *transactionStore) Read(ctx context.Context) ([]entity.Transaction, error) {
	rows, err := s.client.CachedTransaction.Query().
		Where(cachedtransaction.Kind(string(s.kind))).
		Order(cachedtransaction.ByPosition()).
		All(ctx)
	if err != nil {
		s.logger.Error("failed to read transaction snapshot", "kind", string(s.kind), "error", err)
		return nil, err
	}
	items := make([]entity.Transaction, len(rows))
	for i, row := range rows {
		items[i] = entity.Transaction{
			ID:            row.ID,
			Kind:          entity.TxKind(row.Kind),
			SubcategoryID: row.SubcategoryID,
			Title:         row.Title,
			Amount:        row.Amount,
			CurrencyCode:  row.CurrencyCode,
			TxDate:        row.TxDate,
			RecordedBy:    row.RecordedBy,
			Note:          row.Note,
		}
	}
	return items, nil
}
