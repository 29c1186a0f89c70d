// Package snapshot is the on-device cache layer: a small sqlite database
// holding the most recent successful page of each cached list plus the
// pinned-category set. It exists only as an offline fallback; it is never
// merged with newer data.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/communityhub/mobilecore/gen/ent"
)

// Open opens (creating if necessary) the snapshot database at path and runs
// the schema migration.
func Open(ctx context.Context, path string, logger *slog.Logger) (*ent.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("opening snapshot database", "path", path)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("snapshot dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open snapshot database", "error", err)
		return nil, err
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	// Migration runs at store-open time.
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("migrate snapshot schema: %w", err)
	}

	logger.Info("snapshot database ready")
	return client, nil
}

// Close closes the snapshot database gracefully.
func Close(client *ent.Client, logger *slog.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Error("failed to close snapshot database", "error", err)
	}
}

// rollback rolls tx back, keeping the original error primary.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}

// bound truncates items to the snapshot limit.
func bound[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
