package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	communitypb "github.com/communityhub/mobilecore/gen/proto/community/v1"
	"github.com/communityhub/mobilecore/constants"
	"github.com/communityhub/mobilecore/internal/api"
	"github.com/communityhub/mobilecore/internal/auth"
	"github.com/communityhub/mobilecore/internal/common"
	"github.com/communityhub/mobilecore/internal/connectivity"
	"github.com/communityhub/mobilecore/internal/entity"
	"github.com/communityhub/mobilecore/internal/export"
	"github.com/communityhub/mobilecore/internal/feeds"
	"github.com/communityhub/mobilecore/internal/server"
	"github.com/communityhub/mobilecore/internal/snapshot"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, err := snapshot.Open(ctx, cfg.Cache.Path, logger)
	if err != nil {
		logger.Error("failed to open snapshot database", "path", cfg.Cache.Path, "error", err)
		os.Exit(1)
	}
	defer snapshot.Close(entc, logger)

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

	checker := connectivity.NewProbeChecker(cfg.API.BaseURL, cfg.Connectivity.ProbeTimeout, logger)
	watcher := connectivity.NewWatcher(checker, cfg.Connectivity.ProbeInterval, logger)

	newsStore := snapshot.NewNewsStore(entc, cfg.Cache.NewsLimit, logger)
	galleryStore := snapshot.NewGalleryStore(entc, cfg.Cache.GalleryLimit, logger)
	donStore := snapshot.NewTransactionStore(entc, entity.TxIncome, cfg.Cache.TransactionLimit, logger)
	expStore := snapshot.NewTransactionStore(entc, entity.TxExpense, cfg.Cache.TransactionLimit, logger)
	pins := snapshot.NewPinStore(entc, logger)

	notices := server.NewNoticeBox()
	news := feeds.NewNewsFeed(client, newsStore, watcher, notices.Sink(constants.FeedNews), cfg.API.PageSize, logger)
	gallery := feeds.NewGalleryFeed(client, galleryStore, watcher, notices.Sink(constants.FeedGallery), cfg.API.PageSize, logger)
	users := feeds.NewActiveUserList(client, watcher, notices.Sink(constants.FeedActiveUsers), cfg.API.PageSize, logger)
	ledger := feeds.NewLedger(client, donStore, expStore, watcher,
		notices.Sink(constants.FeedDonations), notices.Sink(constants.FeedExpenses), cfg.API.PageSize, logger)
	board := feeds.NewCategoryBoard(client, pins, logger)

	watcher.Subscribe(news.ConnectivityChanged)
	watcher.Subscribe(gallery.ConnectivityChanged)
	watcher.Subscribe(users.ConnectivityChanged)
	watcher.Subscribe(ledger.ConnectivityChanged)
	watcher.Start(ctx)

	exporter := export.NewService(logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	feedService := server.NewFeedService(news, gallery, users, ledger, board, exporter, notices, logger)
	communitypb.RegisterFeedServiceServer(grpcServer, feedService)
	authService := server.NewAuthService(tokens, logger)
	communitypb.RegisterAuthServiceServer(grpcServer, authService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("mobilecored listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
