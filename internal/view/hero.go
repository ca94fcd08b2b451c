package view

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/iconidentify/skygallery/internal/domain"
	"github.com/iconidentify/skygallery/internal/media"
)

// HeroKind selects how the hero region is rendered.
type HeroKind string

const (
	HeroNone  HeroKind = ""
	HeroEmbed HeroKind = "embed"
	HeroImage HeroKind = "image"
	HeroVideo HeroKind = "video"
)

const defaultHeroAlt = "Hero video thumbnail"

// Hero is the background media shown on page load.
type Hero struct {
	Kind  HeroKind `json:"kind"`
	Src   string   `json:"src,omitempty"`
	Alt   string   `json:"alt,omitempty"`
	Title string   `json:"title"`
	// Native video attributes; only meaningful for HeroVideo.
	Autoplay    bool `json:"autoplay,omitempty"`
	Muted       bool `json:"muted,omitempty"`
	Loop        bool `json:"loop,omitempty"`
	PlaysInline bool `json:"plays_inline,omitempty"`
}

// Empty reports whether there is nothing to render.
func (h Hero) Empty() bool {
	return h.Kind == HeroNone
}

// SelectHero picks one video item uniformly at random and resolves how to
// show it. It reports false when items holds no videos, in which case the
// hero region must be left untouched. A true result with an empty Hero
// means the chosen video had nothing renderable and the region is cleared.
func SelectHero(items []domain.Item, rng *rand.Rand, logger *slog.Logger) (Hero, bool) {
	videos := domain.FilterVideos(items)
	if len(videos) == 0 {
		return Hero{}, false
	}
	var pick domain.Item
	if rng == nil {
		pick = videos[rand.IntN(len(videos))]
	} else {
		pick = videos[rng.IntN(len(videos))]
	}
	return ResolveHero(pick, logger), true
}

// ResolveHero decides how a video item is embedded as the hero. The first
// match wins: YouTube embed, thumbnail, native video file, thumbnail.
func ResolveHero(item domain.Item, logger *slog.Logger) (h Hero) {
	defer func() {
		if r := recover(); r != nil {
			if logger == nil {
				logger = slog.Default()
			}
			logger.Warn("failed to create hero media",
				"url", item.URL,
				"error", fmt.Sprint(r),
			)
			h = thumbnailHero(item)
		}
	}()

	h = resolveHero(item)
	return h
}

func resolveHero(item domain.Item) Hero {
	url := item.URL

	if embed, ok := media.HeroEmbedURL(url); ok {
		return Hero{Kind: HeroEmbed, Src: embed, Title: item.Title, Muted: true, Autoplay: true}
	}

	if item.ThumbnailURL != "" {
		return thumbnailHero(item)
	}

	if media.IsDirectVideo(url) {
		return Hero{
			Kind:        HeroVideo,
			Src:         url,
			Title:       item.Title,
			Autoplay:    true,
			Muted:       true,
			Loop:        true,
			PlaysInline: true,
		}
	}

	return thumbnailHero(item)
}

func thumbnailHero(item domain.Item) Hero {
	if item.ThumbnailURL == "" {
		return Hero{Title: item.Title}
	}
	return Hero{
		Kind:  HeroImage,
		Src:   item.ThumbnailURL,
		Alt:   altOr(item.Title, defaultHeroAlt),
		Title: item.Title,
	}
}
