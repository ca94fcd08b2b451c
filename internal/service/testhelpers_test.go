package service

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/iconidentify/skygallery/internal/domain"
)

// testLogger returns a silent logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(3, 9))
}

// fakeSource is a test implementation of feed.Source.
type fakeSource struct {
	mu    sync.Mutex
	items []domain.Item
	err   error
	calls int
}

func (f *fakeSource) Fetch(ctx context.Context) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeSource) set(items []domain.Item, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
	f.err = err
}
