package handler

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iconidentify/skygallery/internal/domain"
	"github.com/iconidentify/skygallery/internal/service"
	"github.com/iconidentify/skygallery/internal/view"
)

// GalleryErrorMessage is shown in place of the gallery when the fetch fails.
const GalleryErrorMessage = "Could not load space images. Please try again."

// UIHandler serves the HTML page and the fragments the client script swaps in.
type UIHandler struct {
	svc    *service.GalleryService
	tpl    *template.Template
	title  string
	logger *slog.Logger
}

// NewUIHandler creates a new UI handler.
func NewUIHandler(svc *service.GalleryService, tpl *template.Template, title string, logger *slog.Logger) *UIHandler {
	return &UIHandler{
		svc:    svc,
		tpl:    tpl,
		title:  title,
		logger: logger,
	}
}

type indexData struct {
	Title string
	Home  service.HomePage
	Blank view.Detail
}

// Index handles GET / - the full page with hero and fact.
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Title: h.title,
		Home:  h.svc.Home(r.Context()),
	}
	h.render(w, http.StatusOK, "index", data)
}

// Gallery handles GET /gallery - the card grid fragment.
func (h *UIHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Gallery(r.Context())
	if err != nil {
		h.render(w, http.StatusBadGateway, "gallery_error", GalleryErrorMessage)
		return
	}
	h.render(w, http.StatusOK, "gallery", g)
}

// Item handles GET /items/{snapshotID}/{index} - one detail fragment.
func (h *UIHandler) Item(w http.ResponseWriter, r *http.Request) {
	snapshotID := chi.URLParam(r, "snapshotID")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if snapshotID == "" || err != nil {
		h.writeText(w, http.StatusBadRequest, "invalid item reference")
		return
	}

	d, err := h.svc.Detail(domain.SnapshotID(snapshotID), index)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSnapshotExpired):
			h.writeText(w, http.StatusGone, "gallery has been refreshed")
		case errors.Is(err, domain.ErrItemNotFound):
			h.writeText(w, http.StatusNotFound, "item not found")
		default:
			h.logger.Error("detail failed", "error", err)
			h.writeText(w, http.StatusInternalServerError, "failed to load item")
		}
		return
	}
	h.render(w, http.StatusOK, "detail", d)
}

// render executes into a buffer first so a template failure never leaves
// a half-written response.
func (h *UIHandler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("render failed", "template", name, "error", err)
		h.writeText(w, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (h *UIHandler) writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}
