package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rubika-tools/planner-api/internal/clients/catalog"
	"github.com/rubika-tools/planner-api/internal/config"
	"github.com/rubika-tools/planner-api/internal/engine/formulas"
	"github.com/rubika-tools/planner-api/internal/gamedata"
	v1 "github.com/rubika-tools/planner-api/internal/handlers/api/v1"
	"github.com/rubika-tools/planner-api/internal/orchestrators/build"
	"github.com/rubika-tools/planner-api/internal/pkg/idgen"
	redisclient "github.com/rubika-tools/planner-api/internal/redis"
	buildrepo "github.com/rubika-tools/planner-api/internal/repositories/build"
)

var (
	configPath    string
	listenAddress string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the planner API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file (PLANNER_CONFIG overrides the default)")
	serverCmd.Flags().StringVar(&listenAddress, "address", "", "Listen address override, e.g. :8080")
}

func runServer(cmd *cobra.Command, args []string) error {
	path := configPath
	if !cmd.Flags().Changed("config") {
		if p := os.Getenv("PLANNER_CONFIG"); p != "" {
			path = p
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if listenAddress != "" {
		cfg.Server.Address = listenAddress
	}

	setupLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redisclient.NewClient(cfg.Redis.Address, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	repo, err := buildrepo.NewRedis(&buildrepo.RedisConfig{
		Client: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create build repository: %w", err)
	}

	cat, err := catalog.New(&catalog.Config{
		DataDir:     cfg.Catalog.DataDir,
		SearchLimit: cfg.Catalog.SearchLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	eng, err := formulas.New(&formulas.Config{
		Tables: gamedata.Default(),
	})
	if err != nil {
		return fmt.Errorf("failed to create formula engine: %w", err)
	}

	orchestrator, err := build.New(&build.Config{
		BuildRepo:   repo,
		Engine:      eng,
		Catalog:     cat,
		IDGenerator: idgen.NewPrefixed("build"),
	})
	if err != nil {
		return fmt.Errorf("failed to create build orchestrator: %w", err)
	}

	handler, err := v1.New(&v1.Config{
		BuildService: orchestrator,
		Catalog:      cat,
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	lis, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "address", cfg.Server.Address)
		if err := srv.Serve(lis); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing stop", "error", err)
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupLogger(cfg config.LogConfig) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
