// Command invcored runs the inventory-tracking backend: it opens the embedded
// storage environment, optionally seeds the sample dataset, and serves the
// HTTP API until interrupted.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"invcore/internal/config"
	"invcore/internal/httpapi"
	"invcore/internal/seed"
	"invcore/internal/store"
)

var Version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting invcored",
		zap.String("version", Version),
		zap.String("addr", cfg.Server.Addr),
		zap.String("store_dir", cfg.Store.Dir),
	)

	storeOpts := []store.Option{store.WithMaxSize(cfg.Store.MaxSizeBytes)}
	if cfg.Store.StrictComponents {
		storeOpts = append(storeOpts, store.WithStrictComponents())
	}
	st, err := store.Open(cfg.Store.Dir, storeOpts...)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer st.Close()

	if cfg.Store.SeedOnStart {
		if err := seed.Apply(st); err != nil {
			logger.Fatal("Failed to seed sample data", zap.Error(err))
		}
		logger.Info("Sample data seeded")
	}

	if summary, err := st.Summary(); err == nil {
		logger.Info("Inventory summary",
			zap.Int("products", len(summary.Products)),
			zap.Int("components", len(summary.Components)),
			zap.Int("pending_orders", len(summary.PendingOrders)),
		)
	}

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := httpapi.NewRouter(httpapi.NewHandler(st, logger), logger, Version)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Info("Listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	default:
		return gin.ReleaseMode
	}
}
