package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/budgetkeeper/internal/config"
	"github.com/iudanet/budgetkeeper/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	configDir := flag.String("config", "", "Directory with config.yaml")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	if err := run(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir string) error {
	var paths []string
	if configDir != "" {
		paths = append(paths, configDir)
	}

	cfg, err := config.Load(paths...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	go func() {
		select {
		case sig := <-quit:
			logger.Info("Received signal", slog.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("Failed to close storage", slog.Any("error", err))
		}
	}()

	logger.Info("BudgetKeeper server starting",
		slog.String("version", Version),
		slog.String("env", cfg.App.Env),
		slog.String("whitelist_backend", cfg.Whitelist.Backend),
	)

	srv := server.New(a.handler, server.Options{
		Addr:            cfg.Addr(),
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		IdleTimeout:     cfg.HTTP.IdleTimeout,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		MaxHeaderBytes:  cfg.HTTP.MaxHeaderBytes,
	}, logger)

	return srv.Run(ctx)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "BudgetKeeper Server\n")
	fmt.Fprintf(w, "Version:    %s\n", Version)
	fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(w, "Git Commit: %s\n", GitCommit)
}
