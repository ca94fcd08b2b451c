package handler

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/iconidentify/skygallery/internal/domain"
	"github.com/iconidentify/skygallery/internal/service"
	"github.com/iconidentify/skygallery/pkg/ui"
)

// testLogger returns a silent logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSource is a test implementation of feed.Source.
type fakeSource struct {
	mu    sync.Mutex
	items []domain.Item
	err   error
}

func (f *fakeSource) Fetch(ctx context.Context) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeSource) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func testItems() []domain.Item {
	return []domain.Item{
		{
			Title:       "Horsehead Nebula",
			Date:        "2024-02-10",
			Explanation: "Dark dust against glowing hydrogen.",
			MediaType:   domain.MediaImage,
			URL:         "https://apod.nasa.gov/horsehead.jpg",
			HDURL:       "https://apod.nasa.gov/horsehead_hd.jpg",
		},
		{
			Title:     "Lunar Flyby",
			Date:      "2024-02-11",
			MediaType: domain.MediaVideo,
			URL:       "https://www.youtube.com/watch?v=abc123XYZ9",
		},
		{
			Title:     "Untitled",
			MediaType: "other",
		},
	}
}

func newTestService(src *fakeSource) *service.GalleryService {
	return service.NewGalleryService(src, rand.New(rand.NewPCG(1, 1)), testLogger())
}

func newTestUIHandler(src *fakeSource) (*UIHandler, *service.GalleryService) {
	svc := newTestService(src)
	return NewUIHandler(svc, ui.MustParseTemplates(), "Test Gallery", testLogger()), svc
}
