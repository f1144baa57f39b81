package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/app"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/creature"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/moves"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
	"github.com/KirkDiggler/pokedex-api/internal/redis"
	"github.com/KirkDiggler/pokedex-api/internal/repositories/session"
)

var (
	grpcPort      int
	redisAddr     string
	redisPassword string
	sessionTTL    time.Duration

	// shared with the lookup command
	pokeAPIURL           string
	language             string
	maxConcurrentLookups int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the pokedex gRPC server. Session state is kept in Redis.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
	serverCmd.Flags().StringVar(&redisPassword, "redis-password", "", "Redis password")
	serverCmd.Flags().DurationVar(&sessionTTL, "session-ttl", session.DefaultTTL, "Idle session lifetime")
	addPipelineFlags(serverCmd)
}

// addPipelineFlags registers the flags shared by every command that talks to
// PokeAPI directly
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pokeAPIURL, "pokeapi-url", pokeapi.DefaultBaseURL, "PokeAPI base URL")
	cmd.Flags().StringVar(&language, "language", creature.DefaultLanguage, "Language for localized names")
	cmd.Flags().IntVar(&maxConcurrentLookups, "max-concurrent-lookups", creature.DefaultMaxConcurrentLookups,
		"Concurrent type and move detail lookups")
}

// pipeline holds the two PokeAPI-backed orchestrators
type pipeline struct {
	creatures creature.Service
	moves     moves.Service
}

func newPipeline() (*pipeline, error) {
	client, err := pokeapi.New(&pokeapi.Config{BaseURL: pokeAPIURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	creatures, err := creature.NewOrchestrator(&creature.Config{
		Client:               client,
		Language:             language,
		MaxConcurrentLookups: maxConcurrentLookups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create creature orchestrator: %w", err)
	}

	moveService, err := moves.NewOrchestrator(&moves.Config{
		Client:               client,
		Language:             language,
		MaxConcurrentLookups: maxConcurrentLookups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create move orchestrator: %w", err)
	}

	return &pipeline{creatures: creatures, moves: moveService}, nil
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := redis.NewClient(redisAddr, &redis.Options{Password: redisPassword})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // shutting down
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := redis.Ping(pingCtx, redisClient); err != nil {
		return err
	}

	sessionRepo, err := session.NewRedisRepository(&session.Config{
		Client: redisClient,
		Clock:  clock.New(),
		TTL:    sessionTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create session repository: %w", err)
	}

	p, err := newPipeline()
	if err != nil {
		return err
	}

	appService, err := app.NewOrchestrator(&app.Config{
		SessionRepo: sessionRepo,
		Creatures:   p.creatures,
		Moves:       p.moves,
		IDGenerator: idgen.NewUUID("sess"),
	})
	if err != nil {
		return fmt.Errorf("failed to create app orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: appService})
	if err != nil {
		return fmt.Errorf("failed to create pokedex handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := interceptorLogger(slog.Default())
	recoveryOpt := grpc_recovery.WithRecoveryHandler(func(r any) error {
		slog.Error("Recovered from panic", "panic", r)
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	pokedexv1alpha1.RegisterPokedexServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(pokedexv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", grpcPort, "pokeapi", pokeAPIURL, "redis", redisAddr)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// interceptorLogger adapts slog to the grpc logging interceptor
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
