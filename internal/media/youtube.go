package media

import (
	"fmt"
	"regexp"
	"strings"
)

// YouTube host markers.
const (
	YouTubeHost      = "youtube.com"
	YouTubeShortHost = "youtu.be"
	YouTubeEmbedBase = "https://www.youtube.com/embed/"
)

// Player parameters for the hero embed. Looping a single video needs the
// video to be its own playlist, so loop is only possible with a known ID.
const (
	heroParams     = "autoplay=1&mute=1&controls=0&rel=0&modestbranding=1&playsinline=1"
	heroLoopParams = "autoplay=1&mute=1&controls=0&rel=0&loop=1&playlist=%s&modestbranding=1&playsinline=1"
)

var (
	youTubeIDRe   = regexp.MustCompile(`(?i)(?:youtube\.com/(?:watch\?v=|embed/)|youtu\.be/)([A-Za-z0-9_-]{6,})`)
	directVideoRe = regexp.MustCompile(`(?i)\.(mp4|webm|ogg)(\?|$)`)
)

// IsYouTube reports whether url mentions a YouTube host.
func IsYouTube(url string) bool {
	return strings.Contains(url, YouTubeHost) || strings.Contains(url, YouTubeShortHost)
}

// IsYouTubeEmbeddable reports whether url can go straight into an iframe.
// Only full youtube.com links qualify; short links are not embeddable as-is.
func IsYouTubeEmbeddable(url string) bool {
	return strings.Contains(url, YouTubeHost)
}

// YouTubeID extracts the video identifier from watch, embed and short-link
// URLs. It is a pattern heuristic and will miss unusual URL shapes.
func YouTubeID(url string) (string, bool) {
	m := youTubeIDRe.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// HeroEmbedURL builds an autoplaying, muted, control-free embed URL for url.
// With a known ID the video also loops. An embed URL without a parsable ID
// is used with its query stripped and without looping. Non-YouTube URLs and
// YouTube pages that are neither report false.
func HeroEmbedURL(url string) (string, bool) {
	if !IsYouTube(url) {
		return "", false
	}
	if id, ok := YouTubeID(url); ok {
		return YouTubeEmbedBase + id + "?" + fmt.Sprintf(heroLoopParams, id), true
	}
	if strings.Contains(url, "/embed/") {
		base, _, _ := strings.Cut(url, "?")
		return base + "?" + heroParams, true
	}
	return "", false
}

// IsDirectVideo reports whether url names a video file a browser can play
// natively (.mp4, .webm or .ogg, optionally followed by a query string).
func IsDirectVideo(url string) bool {
	return directVideoRe.MatchString(url)
}
