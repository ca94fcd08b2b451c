package ui

import (
	"strings"
	"testing"

	"github.com/iconidentify/skygallery/internal/domain"
	"github.com/iconidentify/skygallery/internal/service"
	"github.com/iconidentify/skygallery/internal/view"
)

func TestHeroText(t *testing.T) {
	tests := []struct {
		name     string
		hero     view.Hero
		contains string
	}{
		{"embed", view.Hero{Kind: view.HeroEmbed, Title: "Flyby", Src: "https://www.youtube.com/embed/abc123"}, "YouTube: Flyby"},
		{"direct", view.Hero{Kind: view.HeroVideo, Title: "Comet", Src: "https://x/c.mp4"}, "Now playing: Comet"},
		{"still", view.Hero{Kind: view.HeroImage, Alt: "Hero video thumbnail"}, "Hero video thumbnail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := heroText(tt.hero); !strings.Contains(got, tt.contains) {
				t.Errorf("heroText() = %q, want substring %q", got, tt.contains)
			}
		})
	}

	if got := heroText(view.Hero{}); got != "" {
		t.Errorf("heroText(empty) = %q, want empty", got)
	}
}

func TestHeaderText(t *testing.T) {
	got := headerText("Sky [beta]", service.HomePage{})
	if strings.Contains(got, "Did you know?") {
		t.Error("header without a fact should not show the fact label")
	}
	if !strings.Contains(got, "Sky [beta[]") {
		t.Errorf("title should be escaped, got %q", got)
	}

	got = headerText("Sky", service.HomePage{Fact: "Mars has two moons."})
	if !strings.Contains(got, "Mars has two moons.") {
		t.Errorf("header missing fact: %q", got)
	}
}

func TestCardRow(t *testing.T) {
	image := view.BuildCard(0, domain.Item{Title: "M31", Date: "2024-01-01", MediaType: domain.MediaImage, URL: "https://x/m31.jpg"})
	if got := cardRow(image); got[2] != "https://x/m31.jpg" {
		t.Errorf("image preview = %q", got[2])
	}

	video := view.BuildCard(1, domain.Item{Title: "Flyby", MediaType: domain.MediaVideo, URL: "https://youtu.be/abc123"})
	if got := cardRow(video); got[2] != "Video" {
		t.Errorf("video preview = %q, want Video", got[2])
	}

	other := view.BuildCard(2, domain.Item{MediaType: "other"})
	got := cardRow(other)
	if got[0] != "" || got[1] != "" || got[2] != "No preview" {
		t.Errorf("other row = %q", got)
	}
}

func TestDetailText(t *testing.T) {
	d := view.BuildDetail(domain.Item{
		Title:       "Flyby",
		Date:        "2024-02-11",
		Explanation: "A <b>close</b> pass.",
		MediaType:   domain.MediaVideo,
		URL:         "https://www.youtube.com/watch?v=abc123XYZ9",
	})

	got := detailText(d)
	for _, want := range []string{
		"Flyby",
		"2024-02-11",
		"Embedded video: https://www.youtube.com/watch?v=abc123XYZ9",
		"Open video in new tab",
		"A <b>close</b> pass.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("detailText() missing %q in %q", want, got)
		}
	}

	if got := detailText(view.Detail{}); got != "" {
		t.Errorf("detailText(empty) = %q, want empty", got)
	}
}
