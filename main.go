package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"texinroistot-web/config"
	"texinroistot-web/database"
	"texinroistot-web/handlers"
	"texinroistot-web/identity"
	"texinroistot-web/logger"
	"texinroistot-web/metrics"
	"texinroistot-web/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Open(cfg.JournalPath, zlog)
	if err != nil {
		zlog.Fatal("failed to open journal", zap.Error(err))
	}
	defer database.Close(db)

	client := upstream.New(cfg.BackendURL(), cfg.UpstreamTimeout,
		upstream.WithObserver(metrics.Upstream{}),
		upstream.WithObserver(database.NewJournal(db, zlog)),
	)
	widget := identity.NewWidgetConfig(cfg.GoogleClientID, cfg.OAuthLoginURL)

	gin.SetMode(cfg.GinMode)
	r, err := handlers.NewRouter(handlers.NewHandler(client, db, widget, zlog), handlers.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		Log:            zlog,
	})
	if err != nil {
		zlog.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("starting server",
			zap.String("addr", cfg.ListenAddr),
			zap.String("backend", cfg.BackendURL().String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown failed", zap.Error(err))
	}
}
