package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iconidentify/skygallery/internal/api"
	"github.com/iconidentify/skygallery/internal/api/handler"
	"github.com/iconidentify/skygallery/internal/config"
	"github.com/iconidentify/skygallery/internal/feed"
	"github.com/iconidentify/skygallery/internal/service"
	"github.com/iconidentify/skygallery/pkg/ui"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	feedFile := flag.String("feed-file", "", "Serve items from a local JSON file instead of the feed URL")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("skygallery %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting skygallery",
		"version", Version,
		"build_time", BuildTime,
	)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *feedFile != "" {
		cfg.Feed.File = *feedFile
	}

	src, err := newSource(cfg.Feed, logger)
	if err != nil {
		logger.Error("failed to open feed", "error", err)
		os.Exit(1)
	}

	tpl, err := ui.ParseTemplates()
	if err != nil {
		logger.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	gallerySvc := service.NewGalleryService(src, nil, logger)

	uiHandler := handler.NewUIHandler(gallerySvc, tpl, cfg.UI.Title, logger)
	galleryHandler := handler.NewGalleryHandler(gallerySvc, logger)
	healthHandler := handler.NewHealthHandler(gallerySvc)

	router := api.NewRouter(uiHandler, galleryHandler, healthHandler, ui.Static(), cfg.UI.RenderTimeout)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// newSource picks the offline file source when one is configured.
func newSource(cfg config.FeedConfig, logger *slog.Logger) (feed.Source, error) {
	if cfg.File != "" {
		logger.Info("serving feed from file", "path", cfg.File)
		return feed.LoadFile(cfg.File)
	}

	src := feed.NewHTTPSource(cfg)
	src.SetLogger(logger)
	logger.Info("serving feed from url", "url", src.URL())
	return src, nil
}
