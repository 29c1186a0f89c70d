// exportxlsx fetches every donation and expense page from the backend and
// writes a single XLSX report. It talks straight to the REST API; the local
// snapshot database is not involved.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/communityhub/mobilecore/internal/api"
	"github.com/communityhub/mobilecore/internal/auth"
	"github.com/communityhub/mobilecore/internal/common"
	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/export"
)

func main() {
	_ = godotenv.Load()

	var (
		out       = flag.String("o", "", "output path (default transactions-<timestamp>.xlsx)")
		startDate = flag.String("start", "", "start date filter, YYYY-MM-DD")
		endDate   = flag.String("end", "", "end date filter, YYYY-MM-DD")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := common.LoadConfig(getenv("CONFIG_PATH", "config.toml"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tokens, err := auth.NewTokenStore(cfg.Auth.TokenPath, cfg.Auth.Secret)
	if err != nil {
		logger.Error("failed to build token store", "error", err)
		os.Exit(1)
	}
	client, err := api.NewClient(cfg.API.BaseURL, tokens, cfg.API.RequestTimeout, logger)
	if err != nil {
		logger.Error("failed to build API client", "base_url", cfg.API.BaseURL, "error", err)
		os.Exit(1)
	}

	query := api.TransactionQuery{Limit: cfg.API.PageSize}
	if *startDate != "" {
		t, err := time.ParseInLocation("2006-01-02", *startDate, time.UTC)
		if err != nil {
			logger.Error("invalid -start date", "value", *startDate, "error", err)
			os.Exit(2)
		}
		query.StartDate = &t
	}
	if *endDate != "" {
		t, err := time.ParseInLocation("2006-01-02", *endDate, time.UTC)
		if err != nil {
			logger.Error("invalid -end date", "value", *endDate, "error", err)
			os.Exit(2)
		}
		query.EndDate = &t
	}

	donations, err := fetchAll(ctx, client.Donations, query)
	if err != nil {
		logger.Error("fetching donations failed", "error", err)
		os.Exit(1)
	}
	expenses, err := fetchAll(ctx, client.Expenses, query)
	if err != nil {
		logger.Error("fetching expenses failed", "error", err)
		os.Exit(1)
	}

	data, err := export.NewService(logger).ExportTransactionsXLSX(append(donations, expenses...))
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	path := *out
	if path == "" {
		path = fmt.Sprintf("transactions-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error("writing workbook failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("workbook written",
		"path", path,
		"donations", len(donations),
		"expenses", len(expenses),
	)
}

// fetchAll walks a paginated endpoint until the last page.
func fetchAll(ctx context.Context,
	fetch func(context.Context, api.TransactionQuery) ([]entity.Transaction, entity.Pagination, error),
	query api.TransactionQuery) ([]entity.Transaction, error) {

	var all []entity.Transaction
	for page := 1; ; page++ {
		query.Page = page
		items, pg, err := fetch(ctx, query)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if page >= pg.TotalPages || len(items) == 0 {
			return all, nil
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
