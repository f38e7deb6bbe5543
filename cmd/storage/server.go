package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/XJIeI5/infixcalc/internal/calculator"
	"github.com/XJIeI5/infixcalc/internal/config"
	"github.com/XJIeI5/infixcalc/internal/storage"
)

func main() {
	configPtr := flag.String("config", "", "path to YAML config")
	hostPtr := flag.String("host", "", "host of server")
	portPtr := flag.Int("port", 0, "port of server")
	dbPtr := flag.String("db", "", "sqlite database file")
	flag.Parse()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *hostPtr != "" {
		cfg.Server.Host = *hostPtr
	}
	if *portPtr != 0 {
		cfg.Server.Port = *portPtr
	}
	if *dbPtr != "" {
		cfg.Storage.DSN = *dbPtr
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, cfg.Storage.DSN)
	if err != nil {
		slog.Error("Failed to open database", "dsn", cfg.Storage.DSN, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	calc := calculator.New(calculator.WithMode(cfg.Tokenizer), calculator.WithLogger(logger))
	s := storage.GetServer(ctx, cfg.Server.Host, cfg.Server.Port, db,
		storage.WithCalculator(calc),
		storage.WithLogger(logger),
		storage.WithWorkers(cfg.Server.Workers),
		storage.WithQueueSize(cfg.Server.QueueSize),
	)

	go func() {
		slog.Info("run storage server", "host", cfg.Server.Host, "port", cfg.Server.Port, "tokenizer", cfg.Tokenizer)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done() // wait for SIGINT
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
	slog.Info("stop storage server")
}
