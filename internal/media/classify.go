// Package media decides how an item's media can be displayed: which URL
// makes a thumbnail, whether a link is a YouTube video, and how to embed it.
package media

import (
	"github.com/iconidentify/skygallery/internal/domain"
)

// Placeholder labels shown when an item has no thumbnail.
const (
	PlaceholderVideo     = "Video"
	PlaceholderNoPreview = "No preview"
)

// Thumbnail returns the URL to show on a gallery card, or "" when the item
// has nothing previewable.
func Thumbnail(item domain.Item) string {
	switch item.MediaType {
	case domain.MediaImage:
		return LargeImage(item)
	case domain.MediaVideo:
		return item.ThumbnailURL
	default:
		return ""
	}
}

// LargeImage returns the largest available image URL: hdurl, then url.
func LargeImage(item domain.Item) string {
	if item.HDURL != "" {
		return item.HDURL
	}
	return item.URL
}

// PlaceholderLabel returns the text for a card without a thumbnail.
func PlaceholderLabel(item domain.Item) string {
	if item.IsVideo() {
		return PlaceholderVideo
	}
	return PlaceholderNoPreview
}
