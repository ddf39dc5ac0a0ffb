package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-api/internal/config"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/handlers/game/v1alpha1"
	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/game"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/pokemon-api/internal/redis"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/gamesave"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/gamesession"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/ownedpokemon"
	"github.com/KirkDiggler/pokemon-api/internal/rules"
	"github.com/KirkDiggler/pokemon-api/internal/services/enrichment"
	"github.com/KirkDiggler/pokemon-api/internal/validation"
)

var (
	configPath string
	grpcPort   int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Pokemon API gRPC server backed by redis and the pokemon catalog.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "path to a config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = grpcPort
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	redisClient, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		UseTLS:       cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Addr, err)
	}

	handler, err := buildHandler(cfg, redisClient)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
	)

	v1alpha1.RegisterGameServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
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

		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires the stores, catalog, rules and orchestrator behind the
// grpc handler
func buildHandler(cfg *config.Config, redisClient redis.Client) (*v1alpha1.Handler, error) {
	rulesCfg, err := rules.LoadConfig(cfg.Rules.Path)
	if err != nil {
		return nil, err
	}
	rulesService, err := rules.New(&rules.ServiceConfig{Rules: rulesCfg})
	if err != nil {
		return nil, err
	}

	httpCatalog, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPI.HTTPTimeout,
	})
	if err != nil {
		return nil, err
	}
	catalogClient, err := pokeapi.NewCachedClient(&pokeapi.CachedClientConfig{
		Client: httpCatalog,
		Redis:  redisClient,
		TTL:    cfg.PokeAPI.CacheTTL,
	})
	if err != nil {
		return nil, err
	}

	systemClock := clock.New()

	gameSaveRepo, err := gamesave.NewRedis(&gamesave.RedisConfig{Client: redisClient, Clock: systemClock})
	if err != nil {
		return nil, err
	}
	gameSessionRepo, err := gamesession.NewRedis(&gamesession.RedisConfig{Client: redisClient, Clock: systemClock})
	if err != nil {
		return nil, err
	}
	ownedPokemonRepo, err := ownedpokemon.NewRedis(&ownedpokemon.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, err
	}

	enricher, err := enrichment.New(&enrichment.Config{
		Client:               catalogClient,
		OwnedPokemonRepo:     ownedPokemonRepo,
		MaxConcurrentFetches: cfg.PokeAPI.MaxConcurrentFetches,
	})
	if err != nil {
		return nil, err
	}

	validators, err := validation.New(&validation.Config{
		MaxLevel:    rulesCfg.MaxLevel,
		MaxDeckSize: rulesCfg.MaxDeckSize,
	})
	if err != nil {
		return nil, err
	}

	eventBus := events.NewBus()
	subscribeEventLog(eventBus)

	orchestrator, err := game.New(&game.Config{
		GameSaveRepo:     gameSaveRepo,
		GameSessionRepo:  gameSessionRepo,
		OwnedPokemonRepo: ownedPokemonRepo,
		Rules:            rulesService,
		Enrichment:       enricher,
		Validators:       validators,
		IDGenerator:      idgen.NewUUID(""),
		EventBus:         eventBus,
		Clock:            systemClock,
	})
	if err != nil {
		return nil, err
	}

	return v1alpha1.NewHandler(&v1alpha1.HandlerConfig{GameService: orchestrator})
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", p)
	return errors.ToGRPCError(errors.Internalf("panic: %v", p))
}
