package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kcbailey111/AffordRX/config"
	"github.com/kcbailey111/AffordRX/data"
	"github.com/kcbailey111/AffordRX/handlers"
	"github.com/kcbailey111/AffordRX/health"
	"github.com/kcbailey111/AffordRX/logging"
	"github.com/kcbailey111/AffordRX/pricesparser"
	"github.com/kcbailey111/AffordRX/scheduler"
	"github.com/kcbailey111/AffordRX/search"
	"github.com/kcbailey111/AffordRX/server"
	"github.com/kcbailey111/AffordRX/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logging.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs", cfg.LogLevel, cfg.LogRetentionWeeks, cfg.MaxLogFileSize)

	dataContainer := data.NewDataContainer(data.DefaultPartitions())
	dataContainer.SetServerStartTime(time.Now())

	parser := pricesparser.NewPricesParser(cfg.DataDir)
	if cfg.DatasetURL != "" {
		parser = parser.WithRemote(cfg.DatasetURL)
	}

	validator := validation.NewDataValidator()

	dataScheduler := scheduler.NewDataScheduler(dataContainer, parser, validator)
	if err := dataScheduler.Start(); err != nil {
		// Partitions that failed stay unavailable until the next refresh;
		// the server still starts so /health can report the state.
		logging.Error("Scheduler started with load errors", "error", err)
	}
	defer dataScheduler.Stop()

	searcher := search.NewService(dataContainer)
	checker := health.NewHealthChecker(dataContainer)
	handler := handlers.NewHTTPHandler(dataContainer, validator, searcher, checker)

	srv := server.NewServer(cfg, handler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
	}
}
