package view

import (
	"testing"

	"github.com/iconidentify/skygallery/internal/domain"
)

func TestBuildDetail_TextFieldsAlwaysSet(t *testing.T) {
	d := BuildDetail(domain.Item{})

	if d.Title != "" || d.Date != "" || d.Explanation != "" {
		t.Errorf("missing fields should be empty strings, got %+v", d)
	}
	if d.Media.Kind != MediaNone {
		t.Errorf("Media.Kind = %q, want none", d.Media.Kind)
	}
}

func TestBuildDetail_Verbatim(t *testing.T) {
	item := domain.Item{
		Title:       "<b>M31</b>",
		Date:        "2024-01-01",
		Explanation: "Line one.\nLine two & more.",
		MediaType:   domain.MediaImage,
		URL:         "a.jpg",
	}
	d := BuildDetail(item)
	if d.Title != item.Title || d.Explanation != item.Explanation || d.Date != item.Date {
		t.Errorf("text should pass through unchanged: %+v", d)
	}
}

func TestBuildDetail_Media(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.Item
		want     DetailMedia
		wantLink string
	}{
		{
			name: "image hd",
			item: domain.Item{Title: "T", MediaType: domain.MediaImage, URL: "sd.jpg", HDURL: "hd.jpg"},
			want: DetailMedia{Kind: MediaImage, Src: "hd.jpg", Alt: "T"},
		},
		{
			name: "image sd only",
			item: domain.Item{MediaType: domain.MediaImage, URL: "sd.jpg"},
			want: DetailMedia{Kind: MediaImage, Src: "sd.jpg", Alt: "NASA image"},
		},
		{
			name:     "youtube embedded as-is",
			item:     domain.Item{MediaType: domain.MediaVideo, URL: "https://www.youtube.com/embed/abc123XYZ9?rel=0", ThumbnailURL: "t.jpg"},
			want:     DetailMedia{Kind: MediaEmbed, Src: "https://www.youtube.com/embed/abc123XYZ9?rel=0"},
			wantLink: "https://www.youtube.com/embed/abc123XYZ9?rel=0",
		},
		{
			name:     "non-youtube video shows thumbnail and link",
			item:     domain.Item{MediaType: domain.MediaVideo, URL: "https://vimeo.com/1", ThumbnailURL: "t.jpg"},
			want:     DetailMedia{Kind: MediaImage, Src: "t.jpg", Alt: "Video thumbnail"},
			wantLink: "https://vimeo.com/1",
		},
		{
			name:     "short link is not embedded",
			item:     domain.Item{MediaType: domain.MediaVideo, URL: "https://youtu.be/abc123XYZ9"},
			want:     DetailMedia{},
			wantLink: "https://youtu.be/abc123XYZ9",
		},
		{
			name: "video without url or thumbnail",
			item: domain.Item{MediaType: domain.MediaVideo},
			want: DetailMedia{},
		},
		{
			name: "unknown type",
			item: domain.Item{MediaType: "gif", URL: "a.gif"},
			want: DetailMedia{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := BuildDetail(tt.item)
			if d.Media != tt.want {
				t.Errorf("Media = %+v, want %+v", d.Media, tt.want)
			}
			if d.LinkURL != tt.wantLink {
				t.Errorf("LinkURL = %q, want %q", d.LinkURL, tt.wantLink)
			}
			if tt.wantLink != "" && d.LinkLabel != "Open video in new tab" {
				t.Errorf("LinkLabel = %q", d.LinkLabel)
			}
		})
	}
}
