package feed

import (
	"context"
	"fmt"
	"os"

	"github.com/iconidentify/skygallery/internal/domain"
)

// StaticSource serves a fixed item list.
type StaticSource struct {
	items []domain.Item
}

// NewStaticSource returns a source that always yields items.
func NewStaticSource(items []domain.Item) *StaticSource {
	return &StaticSource{items: items}
}

// LoadFile builds a StaticSource from a feed document on disk.
func LoadFile(path string) (*StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed file: %w", err)
	}
	items, err := Decode(data)
	if err != nil {
		return nil, domain.NewFeedError("decode", path, err)
	}
	return NewStaticSource(items), nil
}

// Fetch returns a copy of the fixed items.
func (s *StaticSource) Fetch(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}
