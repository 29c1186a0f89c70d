package server

import (
	"context"
	"strings"

	communitypb "github.com/communityhub/mobilecore/gen/proto/community/v1"
	"github.com/communityhub/mobilecore/internal/api"
	"github.com/communityhub/mobilecore/internal/common"
	"github.com/communityhub/mobilecore/internal/utils"
)

func (s *FeedService) ListCategories(ctx context.Context, _ *communitypb.ListCategoriesRequest) (*communitypb.ListCategoriesResponse, error) {
	if err := s.board.Load(ctx); err != nil {
		s.logger.Error("category load failed", "error", err)
		return nil, remoteError(err, "load categories")
	}
	return &communitypb.ListCategoriesResponse{Categories: s.pbCategories()}, nil
}

func (s *FeedService) ListSubcategories(ctx context.Context, req *communitypb.ListSubcategoriesRequest) (*communitypb.ListSubcategoriesResponse, error) {
	categoryID := strings.TrimSpace(req.GetCategoryId())
	if categoryID == "" {
		return nil, common.InvalidArgumentError("category_id is required")
	}

	subs, err := s.board.Subcategories(ctx, categoryID)
	if err != nil {
		s.logger.Error("subcategory load failed", "category_id", categoryID, "error", err)
		return nil, remoteError(err, "load subcategories")
	}

	out := make([]*communitypb.Subcategory, 0, len(subs))
	for _, sub := range subs {
		out = append(out, utils.ToPBSubcategory(sub))
	}
	return &communitypb.ListSubcategoriesResponse{Subcategories: out}, nil
}

func (s *FeedService) PinCategory(ctx context.Context, req *communitypb.PinCategoryRequest) (*communitypb.PinCategoryResponse, error) {
	categoryID := strings.TrimSpace(req.GetCategoryId())
	if categoryID == "" {
		return nil, common.InvalidArgumentError("category_id is required")
	}
	if err := s.board.Pin(ctx, categoryID); err != nil {
		s.logger.Error("pin failed", "category_id", categoryID, "error", err)
		return nil, common.InternalErrorf("pin category: %v", err)
	}
	return &communitypb.PinCategoryResponse{Categories: s.pbCategories()}, nil
}

func (s *FeedService) UnpinCategory(ctx context.Context, req *communitypb.UnpinCategoryRequest) (*communitypb.UnpinCategoryResponse, error) {
	categoryID := strings.TrimSpace(req.GetCategoryId())
	if categoryID == "" {
		return nil, common.InvalidArgumentError("category_id is required")
	}
	if err := s.board.Unpin(ctx, categoryID); err != nil {
		s.logger.Error("unpin failed", "category_id", categoryID, "error", err)
		return nil, common.InternalErrorf("unpin category: %v", err)
	}
	return &communitypb.UnpinCategoryResponse{Categories: s.pbCategories()}, nil
}

func (s *FeedService) pbCategories() []*communitypb.Category {
	cats := s.board.Categories()
	out := make([]*communitypb.Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, utils.ToPBCategory(c))
	}
	return out
}

// remoteError maps an upstream fetch failure to a gRPC status. Connectivity
// failures come back Unavailable so the UI can show its offline treatment.
func remoteError(err error, op string) error {
	if api.IsNetworkError(err) {
		return common.UnavailableError(op + ": network unavailable")
	}
	return common.InternalErrorf("%s: %v", op, err)
}
