package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaType classifies what an item's url points at.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Item is one astronomy picture-of-the-day record from the feed.
// Every field is optional; absent values are the empty string.
type Item struct {
	Title        string    `json:"title"`
	Date         string    `json:"date"`
	Explanation  string    `json:"explanation"`
	MediaType    MediaType `json:"media_type"`
	URL          string    `json:"url"`
	HDURL        string    `json:"hdurl"`
	ThumbnailURL string    `json:"thumbnail_url"`
}

// IsImage reports whether the item is image-typed.
func (i Item) IsImage() bool { return i.MediaType == MediaImage }

// IsVideo reports whether the item is video-typed.
func (i Item) IsVideo() bool { return i.MediaType == MediaVideo }

// SnapshotID identifies one fetched copy of the feed.
type SnapshotID string

// String returns the string representation of the SnapshotID.
func (id SnapshotID) String() string {
	return string(id)
}

// NewSnapshotID returns a fresh random snapshot identifier.
func NewSnapshotID() SnapshotID {
	return SnapshotID("snap_" + uuid.New().String()[:8])
}

// Snapshot is the item list as returned by one fetch. It is never mutated;
// a later fetch replaces it wholesale.
type Snapshot struct {
	ID        SnapshotID
	FetchedAt time.Time
	Items     []Item
}

// NewSnapshot wraps items in a snapshot stamped with a new ID.
func NewSnapshot(items []Item) *Snapshot {
	return &Snapshot{
		ID:        NewSnapshotID(),
		FetchedAt: time.Now(),
		Items:     items,
	}
}

// Videos returns the video-typed items in feed order.
func (s *Snapshot) Videos() []Item {
	return FilterVideos(s.Items)
}

// FilterVideos returns the video-typed items of items in their original order.
func FilterVideos(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if it.IsVideo() {
			out = append(out, it)
		}
	}
	return out
}
