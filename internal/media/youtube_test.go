package media

import (
	"strings"
	"testing"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		url    string
		wantID string
		wantOK bool
	}{
		{"https://www.youtube.com/watch?v=abc123XYZ9", "abc123XYZ9", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"HTTPS://WWW.YOUTUBE.COM/WATCH?V=abc123XYZ9", "abc123XYZ9", true},
		{"https://www.youtube.com/embed/abc", "", false},
		{"https://www.youtube.com/channel/UC123456", "", false},
		{"https://example.com/clip.mp4", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			id, ok := YouTubeID(tt.url)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("YouTubeID() = (%q, %v), want (%q, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestHeroEmbedURL_WithID(t *testing.T) {
	got, ok := HeroEmbedURL("https://www.youtube.com/watch?v=abc123XYZ9")
	if !ok {
		t.Fatal("expected embed URL")
	}

	if !strings.HasPrefix(got, "https://www.youtube.com/embed/abc123XYZ9?") {
		t.Errorf("embed base wrong: %q", got)
	}
	for _, want := range []string{"autoplay=1&mute=1", "playlist=abc123XYZ9", "loop=1", "controls=0"} {
		if !strings.Contains(got, want) {
			t.Errorf("embed URL %q missing %q", got, want)
		}
	}
}

func TestHeroEmbedURL_EmbedWithoutID(t *testing.T) {
	// Path segments shorter than six characters are not taken as IDs.
	got, ok := HeroEmbedURL("https://www.youtube.com/embed/x1?list=PL1")
	if !ok {
		t.Fatal("expected embed URL for short embed path")
	}
	want := "https://www.youtube.com/embed/x1?autoplay=1&mute=1&controls=0&rel=0&modestbranding=1&playsinline=1"
	if got != want {
		t.Errorf("HeroEmbedURL() = %q, want %q", got, want)
	}
	if strings.Contains(got, "loop=1") || strings.Contains(got, "playlist=") {
		t.Errorf("no loop without a known ID: %q", got)
	}
}

func TestHeroEmbedURL_NoEmbed(t *testing.T) {
	for _, url := range []string{
		"https://www.youtube.com/channel/UC1",
		"https://example.com/clip.mp4",
		"",
	} {
		if got, ok := HeroEmbedURL(url); ok || got != "" {
			t.Errorf("HeroEmbedURL(%q) = (%q, %v), want none", url, got, ok)
		}
	}
}

func TestIsYouTube(t *testing.T) {
	if !IsYouTube("https://youtu.be/abcdefg") {
		t.Error("short link should count as YouTube")
	}
	if IsYouTubeEmbeddable("https://youtu.be/abcdefg") {
		t.Error("short link is not directly embeddable")
	}
	if !IsYouTubeEmbeddable("https://www.youtube.com/embed/abcdefg") {
		t.Error("youtube.com link should be embeddable")
	}
	if IsYouTube("https://vimeo.com/123") {
		t.Error("vimeo is not YouTube")
	}
}

func TestIsDirectVideo(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/clip.mp4", true},
		{"https://example.com/clip.WEBM", true},
		{"https://example.com/clip.ogg?t=10", true},
		{"https://example.com/clip.mp4/page", false},
		{"https://example.com/clip.mov", false},
		{"https://example.com/mp4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := IsDirectVideo(tt.url); got != tt.want {
				t.Errorf("IsDirectVideo() = %v, want %v", got, tt.want)
			}
		})
	}
}
