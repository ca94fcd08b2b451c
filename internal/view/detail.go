package view

import (
	"github.com/iconidentify/skygallery/internal/domain"
	"github.com/iconidentify/skygallery/internal/media"
)

// MediaKind selects how detail media is rendered.
type MediaKind string

const (
	MediaNone  MediaKind = ""
	MediaImage MediaKind = "image"
	MediaEmbed MediaKind = "embed"
)

const (
	defaultImageAlt = "NASA image"
	defaultThumbAlt = "Video thumbnail"
	openVideoLabel  = "Open video in new tab"
)

// DetailMedia is the media block of the detail modal.
type DetailMedia struct {
	Kind MediaKind `json:"kind"`
	Src  string    `json:"src,omitempty"`
	Alt  string    `json:"alt,omitempty"`
}

// Detail is the content of the detail modal for one item.
// Text fields are always set, to "" when the item lacks them.
type Detail struct {
	Title       string      `json:"title"`
	Date        string      `json:"date"`
	Explanation string      `json:"explanation"`
	Media       DetailMedia `json:"media"`
	LinkURL     string      `json:"link_url,omitempty"`
	LinkLabel   string      `json:"link_label,omitempty"`
}

// BuildDetail renders an item for the detail modal.
func BuildDetail(item domain.Item) Detail {
	d := Detail{
		Title:       item.Title,
		Date:        item.Date,
		Explanation: item.Explanation,
	}

	switch item.MediaType {
	case domain.MediaImage:
		d.Media = DetailMedia{
			Kind: MediaImage,
			Src:  media.LargeImage(item),
			Alt:  altOr(item.Title, defaultImageAlt),
		}
	case domain.MediaVideo:
		if item.URL != "" && media.IsYouTubeEmbeddable(item.URL) {
			d.Media = DetailMedia{Kind: MediaEmbed, Src: item.URL}
		} else if item.ThumbnailURL != "" {
			d.Media = DetailMedia{
				Kind: MediaImage,
				Src:  item.ThumbnailURL,
				Alt:  altOr(item.Title, defaultThumbAlt),
			}
		}
		if item.URL != "" {
			d.LinkURL = item.URL
			d.LinkLabel = openVideoLabel
		}
	}

	return d
}

func altOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}
