// @title NFL Team Leaders API
// @version 1.0
// @description Top NFL teams per statistical category, as a page, JSON and SVG charts.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/gridironlab/nfl-leaders/docs"
	"github.com/gridironlab/nfl-leaders/internal/config"
	"github.com/gridironlab/nfl-leaders/internal/handlers"
	"github.com/gridironlab/nfl-leaders/internal/logic"
	"github.com/gridironlab/nfl-leaders/internal/views"
)

func main() {
	// Load .env file (optional)
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	colors, err := logic.LoadColorTable(cfg.TeamColorsFile)
	if err != nil {
		return fmt.Errorf("team colors: %w", err)
	}

	leaders := logic.NewLeadersService(logic.LeadersConfig{
		Client:  &http.Client{},
		URL:     cfg.UpstreamURL,
		Timeout: cfg.UpstreamTimeout,
		Logger:  logger,
	})

	h := handlers.New(handlers.Config{
		Leaders: leaders,
		Colors:  colors,
		Layout:  logic.DefaultChartLayout,
		Meta:    views.DefaultMeta(cfg.SiteURL),
		Logger:  logger,
	})

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: h.Routes(handlers.RouterConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.UpstreamTimeout + 5*time.Second,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Team leaders server listening",
			zap.Int("port", cfg.Port),
			zap.String("env", cfg.Env),
			zap.String("upstream", cfg.UpstreamURL),
			zap.Int("team_colors", colors.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
