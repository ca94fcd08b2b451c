package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iconidentify/skygallery/internal/service"
	"github.com/iconidentify/skygallery/internal/view"
)

// GalleryHandler serves the gallery views as JSON.
type GalleryHandler struct {
	svc    *service.GalleryService
	logger *slog.Logger
}

// NewGalleryHandler creates a new gallery API handler.
func NewGalleryHandler(svc *service.GalleryService, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{
		svc:    svc,
		logger: logger,
	}
}

// HeroResponse is the JSON response for hero selection.
type HeroResponse struct {
	HasHero bool       `json:"has_hero"`
	Hero    *view.Hero `json:"hero,omitempty"`
}

// FactsResponse is the JSON response listing every fact.
type FactsResponse struct {
	Facts []string `json:"facts"`
}

// Gallery handles GET /api/v1/gallery
func (h *GalleryHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Gallery(r.Context())
	if err != nil {
		h.writeError(w, http.StatusBadGateway, "failed to fetch feed")
		return
	}
	h.writeJSON(w, http.StatusOK, g)
}

// Hero handles GET /api/v1/hero
func (h *GalleryHandler) Hero(w http.ResponseWriter, r *http.Request) {
	hero, ok, err := h.svc.Hero(r.Context())
	if err != nil {
		h.logger.Warn("hero fetch failed", "error", err)
		h.writeError(w, http.StatusBadGateway, "failed to fetch feed")
		return
	}
	resp := HeroResponse{HasHero: ok}
	if ok {
		resp.Hero = &hero
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Facts handles GET /api/v1/facts
func (h *GalleryHandler) Facts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, FactsResponse{Facts: h.svc.Facts()})
}

func (h *GalleryHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *GalleryHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
