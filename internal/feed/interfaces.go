package feed

import (
	"context"

	"github.com/iconidentify/skygallery/internal/domain"
)

// Source fetches the current item list.
type Source interface {
	// Fetch returns every item in the feed, in feed order.
	Fetch(ctx context.Context) ([]domain.Item, error)
}
