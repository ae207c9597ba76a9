package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-player/internal/booster"
	"github.com/KirkDiggler/rpg-player/internal/cache"
	"github.com/KirkDiggler/rpg-player/internal/config"
	"github.com/KirkDiggler/rpg-player/internal/handlers/player/v1alpha1"
	"github.com/KirkDiggler/rpg-player/internal/orchestrators/profile"
	"github.com/KirkDiggler/rpg-player/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-player/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-player/internal/redis"
	playerrepo "github.com/KirkDiggler/rpg-player/internal/repositories/player"
)

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the player gRPC server. Settings come from RPG_* environment
variables; --port overrides RPG_PORT.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides RPG_PORT)")
}

// deps are the long-lived components built from config
type deps struct {
	repo    playerrepo.Repository
	booster booster.Checker
	closers []func() error
}

func (d *deps) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			slog.Warn("failed to close dependency", "error", err)
		}
	}
}

func buildDeps(ctx context.Context, cfg *config.Config, clk clock.Clock) (*deps, error) {
	d := &deps{}

	var rc redisclient.Client
	if cfg.UsesRedis() {
		client, target, err := newRedisClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", target, err)
		}
		rc = client
		d.closers = append(d.closers, client.Close)
	}

	switch cfg.Store {
	case config.StoreRedis:
		repo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: rc})
		if err != nil {
			d.close()
			return nil, fmt.Errorf("failed to create redis repository: %w", err)
		}
		d.repo = repo
	case config.StoreSQLite:
		repo, err := playerrepo.NewSQLite(&playerrepo.SQLiteConfig{Path: cfg.SQLitePath, Clock: clk})
		if err != nil {
			d.close()
			return nil, fmt.Errorf("failed to open sqlite repository: %w", err)
		}
		d.repo = repo
		d.closers = append(d.closers, repo.Close)
	default:
		slog.Warn("using in-memory store, player data is lost on restart")
		d.repo = playerrepo.NewInMemory()
	}

	switch cfg.Booster {
	case config.BoosterRedis:
		b, err := booster.NewRedis(&booster.RedisConfig{Client: rc, Key: cfg.BoosterKey})
		if err != nil {
			d.close()
			return nil, fmt.Errorf("failed to create redis booster: %w", err)
		}
		d.booster = b
	default:
		d.booster = booster.NewStatic(cfg.BoostedIDs...)
	}

	return d, nil
}

func newRedisClient(cfg *config.Config) (redisclient.Client, string, error) {
	if cfg.RedisCluster() {
		slog.Info("using redis cluster", "addrs", cfg.RedisClusterAddrs)
		client, err := redisclient.NewClusterClient(cfg.RedisClusterAddrs, &redisclient.Options{
			UseTLS: cfg.RedisTLS,
		})
		return client, strings.Join(cfg.RedisClusterAddrs, ","), err
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		DB:     cfg.RedisDB,
		UseTLS: cfg.RedisTLS,
	})
	return client, cfg.RedisAddr, err
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.Port = grpcPort
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	clk := clock.New()
	d, err := buildDeps(ctx, cfg, clk)
	if err != nil {
		return err
	}
	defer d.close()

	playerCache, err := cache.New(&cache.Config{
		Repository:    d.repo,
		Clock:         clk,
		Roller:        dice.DefaultRoller,
		Booster:       d.booster,
		IdleTTL:       cfg.IdleTTL,
		SweepInterval: cfg.SweepInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create player cache: %w", err)
	}

	profileService, err := profile.NewOrchestrator(&profile.Config{
		Cache:       playerCache,
		IDGenerator: idgen.NewUUID("action"),
	})
	if err != nil {
		return fmt.Errorf("failed to create profile orchestrator: %w", err)
	}

	playerHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ProfileService: profileService,
	})
	if err != nil {
		return fmt.Errorf("failed to create player handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	interceptLogger := interceptorLogger(logger)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptLogger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptLogger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterPlayerServiceServer(srv, playerHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	// stopped after the server, requests finishing in GracefulStop still reach the final flush
	cacheCtx, stopCache := context.WithCancel(context.Background())
	defer stopCache()
	cacheDone := make(chan error, 1)
	go func() {
		cacheDone <- playerCache.Run(cacheCtx)
	}()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port, "store", cfg.Store, "booster", cfg.Booster)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errChan:
		cancel()
	}

	slog.Info("shutting down gRPC server")
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}

	stopCache()
	select {
	case err := <-cacheDone:
		if err != nil {
			slog.Error("final flush failed, some players were not saved", "error", err)
			if serveErr == nil {
				serveErr = err
			}
		}
	case <-shutdownCtx.Done():
		slog.Error("final flush did not finish before the shutdown timeout")
	}

	return serveErr
}

// interceptorLogger adapts slog to the go-grpc-middleware logging interface
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
