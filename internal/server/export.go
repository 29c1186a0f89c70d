package server

import (
	"context"
	"fmt"
	"time"

	communitypb "github.com/communityhub/mobilecore/gen/proto/community/v1"
	"github.com/communityhub/mobilecore/internal/common"
)

// ExportTransactions renders the ledger's currently loaded set as an XLSX
// workbook. It never refetches; the UI exports what it is looking at.
func (s *FeedService) ExportTransactions(_ context.Context, _ *communitypb.ExportTransactionsRequest) (*communitypb.ExportTransactionsResponse, error) {
	items := s.ledger.Transactions()
	data, err := s.exporter.ExportTransactionsXLSX(items)
	if err != nil {
		s.logger.Error("transaction export failed", "rows", len(items), "error", err)
		return nil, common.InternalErrorf("export transactions: %v", err)
	}
	return &communitypb.ExportTransactionsResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("transactions-%s.xlsx", time.Now().UTC().Format("20060102-150405")),
	}, nil
}
