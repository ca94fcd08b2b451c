package view

import (
	"github.com/iconidentify/skygallery/internal/domain"
	"github.com/iconidentify/skygallery/internal/media"
)

// Card is one gallery tile.
type Card struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Date  string `json:"date"`
	// ThumbURL and Placeholder are mutually exclusive.
	ThumbURL    string `json:"thumb_url,omitempty"`
	ThumbAlt    string `json:"thumb_alt,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Detail      Detail `json:"detail"`
}

// Gallery is the full card grid for one snapshot.
type Gallery struct {
	SnapshotID domain.SnapshotID `json:"snapshot_id"`
	Cards      []Card            `json:"cards"`
}

// Empty reports whether the gallery has no cards.
func (g Gallery) Empty() bool {
	return len(g.Cards) == 0
}

// BuildGallery produces one card per snapshot item in feed order. The
// result replaces whatever gallery was shown before; nothing carries over.
func BuildGallery(snap *domain.Snapshot) Gallery {
	g := Gallery{Cards: []Card{}}
	if snap == nil {
		return g
	}
	g.SnapshotID = snap.ID
	g.Cards = make([]Card, 0, len(snap.Items))
	for i, item := range snap.Items {
		g.Cards = append(g.Cards, BuildCard(i, item))
	}
	return g
}

// BuildCard renders a single item as a gallery card.
func BuildCard(index int, item domain.Item) Card {
	c := Card{
		Index:  index,
		Title:  item.Title,
		Date:   item.Date,
		Detail: BuildDetail(item),
	}
	if thumb := media.Thumbnail(item); thumb != "" {
		c.ThumbURL = thumb
		c.ThumbAlt = altOr(item.Title, defaultImageAlt)
	} else {
		c.Placeholder = media.PlaceholderLabel(item)
	}
	return c
}
