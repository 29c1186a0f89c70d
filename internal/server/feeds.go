package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	communitypb "github.com/communityhub/mobilecore/gen/proto/community/v1"
	"github.com/communityhub/mobilecore/constants"
	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/feeds"
	"github.com/communityhub/mobilecore/internal/utils"
)

func (s *FeedService) LoadNews(ctx context.Context, req *communitypb.LoadNewsRequest) (*communitypb.LoadNewsResponse, error) {
	switch req.GetAction() {
	case communitypb.LoadAction_LOAD_ACTION_REFRESH:
		_ = s.news.Refresh(ctx)
	case communitypb.LoadAction_LOAD_ACTION_MORE:
		_ = s.news.LoadMore(ctx)
	default:
		_ = s.news.Load(ctx)
	}

	items := s.news.Items()
	out := make([]*communitypb.NewsItem, 0, len(items))
	for _, it := range items {
		out = append(out, utils.ToPBNewsItem(it))
	}
	return &communitypb.LoadNewsResponse{
		Items:  out,
		Status: s.listStatus(constants.FeedNews, s.news.State(), s.news.HasMore()),
	}, nil
}

func (s *FeedService) LoadGallery(ctx context.Context, req *communitypb.LoadGalleryRequest) (*communitypb.LoadGalleryResponse, error) {
	switch {
	case req.GetApplyFilter():
		_ = s.gallery.SetStatus(ctx, req.GetStatusFilter())
	case req.GetAction() == communitypb.LoadAction_LOAD_ACTION_REFRESH:
		_ = s.gallery.Refresh(ctx)
	case req.GetAction() == communitypb.LoadAction_LOAD_ACTION_MORE:
		_ = s.gallery.LoadMore(ctx)
	default:
		_ = s.gallery.Load(ctx)
	}

	items := s.gallery.Items()
	out := make([]*communitypb.GalleryImage, 0, len(items))
	for _, it := range items {
		out = append(out, utils.ToPBGalleryImage(it))
	}
	return &communitypb.LoadGalleryResponse{
		Items:  out,
		Status: s.listStatus(constants.FeedGallery, s.gallery.State(), s.gallery.HasMore()),
	}, nil
}

func (s *FeedService) LoadActiveUsers(ctx context.Context, req *communitypb.LoadActiveUsersRequest) (*communitypb.LoadActiveUsersResponse, error) {
	switch {
	case req.GetApplyDate():
		date, err := utils.ParseYMD(strings.TrimSpace(req.GetDate()))
		if err != nil {
			s.logger.Error("invalid date for active users", "date", req.GetDate(), "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "date invalid (YYYY-MM-DD): %v", err)
		}
		_ = s.users.SetDate(ctx, date)
	case req.GetAction() == communitypb.LoadAction_LOAD_ACTION_REFRESH:
		_ = s.users.Refresh(ctx)
	case req.GetAction() == communitypb.LoadAction_LOAD_ACTION_MORE:
		_ = s.users.LoadMore(ctx)
	default:
		_ = s.users.Load(ctx)
	}

	items := s.users.Items()
	out := make([]*communitypb.ActiveUser, 0, len(items))
	for _, it := range items {
		out = append(out, utils.ToPBActiveUser(it))
	}
	return &communitypb.LoadActiveUsersResponse{
		Items:  out,
		Status: s.listStatus(constants.FeedActiveUsers, s.users.State(), s.users.HasMore()),
	}, nil
}

func (s *FeedService) LoadTransactions(ctx context.Context, req *communitypb.LoadTransactionsRequest) (*communitypb.LoadTransactionsResponse, error) {
	if sortBy := strings.TrimSpace(req.GetSortBy()); sortBy != "" || strings.TrimSpace(req.GetSortOrder()) != "" {
		field, _ := constants.ParseSortField(sortBy)
		order, _ := constants.ParseSortOrder(req.GetSortOrder())
		s.ledger.SetSort(field, order)
	}

	switch {
	case req.GetApplyFilter():
		filter, err := parseFilter(req)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		_ = s.ledger.SetFilter(ctx, filter)
	case req.GetAction() == communitypb.LoadAction_LOAD_ACTION_REFRESH:
		_ = s.ledger.Refresh(ctx)
	case req.GetAction() == communitypb.LoadAction_LOAD_ACTION_MORE:
		if req.GetMoreKind() == string(entity.TxExpense) {
			_ = s.ledger.LoadMoreExpenses(ctx)
		} else {
			_ = s.ledger.LoadMoreDonations(ctx)
		}
	default:
		_ = s.ledger.Load(ctx)
	}

	items := s.ledger.Transactions()
	out := make([]*communitypb.Transaction, 0, len(items))
	for _, it := range items {
		out = append(out, utils.ToPBTransaction(it))
	}
	totals := s.ledger.Totals()
	return &communitypb.LoadTransactionsResponse{
		Items: out,
		Totals: &communitypb.Totals{
			Income:  totals.Income,
			Expense: totals.Expense,
			Net:     totals.Net,
		},
		Donations: s.listStatus(constants.FeedDonations, s.ledger.DonationsState(), s.ledger.HasMoreDonations()),
		Expenses:  s.listStatus(constants.FeedExpenses, s.ledger.ExpensesState(), s.ledger.HasMoreExpenses()),
	}, nil
}

func parseFilter(req *communitypb.LoadTransactionsRequest) (feeds.Filter, error) {
	var f feeds.Filter
	f.SubcategoryID = strings.TrimSpace(req.GetSubcategoryId())
	if sd := strings.TrimSpace(req.GetStartDate()); sd != "" {
		t, err := utils.ParseYMD(sd)
		if err != nil {
			return f, err
		}
		f.StartDate = &t
	}
	if ed := strings.TrimSpace(req.GetEndDate()); ed != "" {
		t, err := utils.ParseYMD(ed)
		if err != nil {
			return f, err
		}
		f.EndDate = &t
	}
	return f, nil
}
