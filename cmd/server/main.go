package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"signsheet/internal/config"
	"signsheet/internal/handler"
	"signsheet/internal/router"
	"signsheet/internal/service"
	"signsheet/internal/sheet"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.IsProduction() || !cfg.Log.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize parser engine
	engine := sheet.NewEngine(sheet.Options{
		DateFormat: cfg.Parser.DateFormat,
		MinYear:    cfg.Parser.MinYear,
		MaxYear:    cfg.Parser.MaxYear,
	})

	// Initialize services
	sheetSvc := service.NewSheetService(engine, service.SheetServiceConfig{
		DateFormat:  cfg.Parser.DateFormat,
		MaxPages:    cfg.Parser.MaxPages,
		Concurrency: cfg.Parser.Concurrency,
	})

	// Initialize handlers
	sheetH := handler.NewSheetHandler(sheetSvc)
	healthH := handler.NewHealthHandler(engine)

	// Setup router
	r := router.Setup(cfg, sheetH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (env=%s, date_format=%s)",
			cfg.Server.Port, cfg.Server.Environment, cfg.Parser.DateFormat)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down, waiting up to %s for in-flight requests...", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Printf("Shutdown complete")
	return nil
}
