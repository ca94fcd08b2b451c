package api

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iconidentify/skygallery/internal/api/handler"
	mw "github.com/iconidentify/skygallery/internal/api/middleware"
)

// NewRouter creates the HTTP router with all routes configured.
func NewRouter(
	uiHandler *handler.UIHandler,
	galleryHandler *handler.GalleryHandler,
	healthHandler *handler.HealthHandler,
	static fs.FS,
	timeout time.Duration,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CleanPath)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Logger)
	r.Use(mw.Recovery)
	r.Use(middleware.Timeout(timeout))

	// Health endpoints
	r.Get("/health", healthHandler.Live)
	r.Get("/ready", healthHandler.Ready)

	// Web UI
	r.Get("/", uiHandler.Index)
	r.Get("/gallery", uiHandler.Gallery)
	r.Get("/items/{snapshotID}/{index}", uiHandler.Item)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	// JSON API
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.CORS)

		r.Get("/gallery", galleryHandler.Gallery)
		r.Get("/hero", galleryHandler.Hero)
		r.Get("/facts", galleryHandler.Facts)
	})

	return r
}
