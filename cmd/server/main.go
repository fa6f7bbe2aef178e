package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/napolitain/solver-cic/internal/config"
	"github.com/napolitain/solver-cic/internal/loader"
	"github.com/napolitain/solver-cic/internal/logger"
	"github.com/napolitain/solver-cic/internal/plancache"
)

var (
	configFile string
	port       int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cic-server",
		Short: "HTTP plan API for the Crafting Idle Clicker planner",
		Run:   runServer,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file")
	rootCmd.Flags().IntVar(&port, "port", config.DefaultPort, "The server port")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}

	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	srv, err := newServer(cfg)
	if err != nil {
		color.Red("Error loading products: %v", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "port", cfg.Server.Port, "products", srv.catalog.Len())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

// newServer loads the default catalog and sets up the plan cache
func newServer(cfg *config.Config) (*server, error) {
	catalog, err := loader.LoadProducts(cfg.Data.Products)
	if err != nil {
		return nil, err
	}
	if err := catalog.Check(); err != nil {
		return nil, err
	}

	return &server{
		catalog:   catalog,
		seedMoney: cfg.Planner.SeedMoney,
		rankStep:  cfg.Planner.RankStep,
		cache:     plancache.New(cfg.Server.CacheSize, cfg.Server.CacheTTL),
		limiter:   rate.NewLimiter(rate.Limit(cfg.Server.RateLimit.Requests), cfg.Server.RateLimit.Burst),
	}, nil
}
