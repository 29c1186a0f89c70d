package server

import (
	"context"
	"log/slog"
	"strings"

	communitypb "github.com/communityhub/mobilecore/gen/proto/community/v1"
	"github.com/communityhub/mobilecore/internal/auth"
	"github.com/communityhub/mobilecore/internal/common"
)

// AuthService implements communitypb.AuthServiceServer over the on-disk
// token store. The REST client reads the same store on every request, so a
// saved token takes effect immediately.
type AuthService struct {
	communitypb.UnimplementedAuthServiceServer
	tokens *auth.TokenStore
	logger *slog.Logger
}

func NewAuthService(tokens *auth.TokenStore, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{tokens: tokens, logger: logger}
}

func (s *AuthService) SaveToken(_ context.Context, req *communitypb.SaveTokenRequest) (*communitypb.SaveTokenResponse, error) {
	token := strings.TrimSpace(req.GetToken())
	if token == "" {
		return nil, common.InvalidArgumentError("token is required")
	}
	if err := s.tokens.Save(token); err != nil {
		s.logger.Error("token save failed", "error", err)
		return nil, common.InternalErrorf("save token: %v", err)
	}
	s.logger.Info("token saved")
	return &communitypb.SaveTokenResponse{}, nil
}

func (s *AuthService) ClearToken(_ context.Context, _ *communitypb.ClearTokenRequest) (*communitypb.ClearTokenResponse, error) {
	if err := s.tokens.Clear(); err != nil {
		s.logger.Error("token clear failed", "error", err)
		return nil, common.InternalErrorf("clear token: %v", err)
	}
	s.logger.Info("token cleared")
	return &communitypb.ClearTokenResponse{}, nil
}
