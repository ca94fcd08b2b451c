// skygallery-tui browses the astronomy feed from a terminal.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/iconidentify/skygallery/cmd/skygallery-tui/internal/config"
	"github.com/iconidentify/skygallery/cmd/skygallery-tui/internal/ui"
	"github.com/iconidentify/skygallery/internal/feed"
	"github.com/iconidentify/skygallery/internal/service"
)

func main() {
	cfg := config.Load()

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var src feed.Source
	if cfg.Feed.File != "" {
		src, err = feed.LoadFile(cfg.Feed.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading feed file: %v\n", err)
			os.Exit(1)
		}
	} else {
		httpSrc := feed.NewHTTPSource(cfg.Feed)
		httpSrc.SetLogger(logger)
		src = httpSrc
	}

	app := ui.NewApp(cfg, service.NewGalleryService(src, nil, logger))

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes JSON logs to path, or discards them when path is empty.
// The terminal belongs to the UI, so nothing is logged to stdout.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(f, nil)), func() { f.Close() }, nil
}
