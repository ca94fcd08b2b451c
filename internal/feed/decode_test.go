package feed

import (
	"errors"
	"testing"

	"github.com/iconidentify/skygallery/internal/domain"
)

func TestDecode_FullItems(t *testing.T) {
	data := []byte(`[
		{"title":"Galaxy","date":"2024-01-01","explanation":"A galaxy.","media_type":"image",
		 "url":"https://apod.nasa.gov/a.jpg","hdurl":"https://apod.nasa.gov/a_hd.jpg"},
		{"title":"Launch","media_type":"video","url":"https://www.youtube.com/embed/abc123XYZ9",
		 "thumbnail_url":"https://img.youtube.com/vi/abc123XYZ9/0.jpg"}
	]`)

	items, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}

	want := domain.Item{
		Title:       "Galaxy",
		Date:        "2024-01-01",
		Explanation: "A galaxy.",
		MediaType:   domain.MediaImage,
		URL:         "https://apod.nasa.gov/a.jpg",
		HDURL:       "https://apod.nasa.gov/a_hd.jpg",
	}
	if items[0] != want {
		t.Errorf("items[0] = %+v, want %+v", items[0], want)
	}
	if items[1].ThumbnailURL != "https://img.youtube.com/vi/abc123XYZ9/0.jpg" {
		t.Errorf("ThumbnailURL = %q", items[1].ThumbnailURL)
	}
	if items[1].Date != "" {
		t.Errorf("missing date should decode as empty, got %q", items[1].Date)
	}
}

func TestDecode_TolerantFields(t *testing.T) {
	data := []byte(`[
		{"title":42,"date":null,"media_type":["image"],"url":{"x":1},"hdurl":true},
		"not an object",
		7,
		{"title":"ok"}
	]`)

	items, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2 (non-objects skipped)", len(items))
	}
	if items[0] != (domain.Item{}) {
		t.Errorf("wrongly typed fields should all be empty, got %+v", items[0])
	}
	if items[1].Title != "ok" {
		t.Errorf("Title = %q, want ok", items[1].Title)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"object", `{"title":"x"}`},
		{"invalid", `[{"title":`},
		{"empty", ``},
		{"string", `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if !errors.Is(err, domain.ErrFeedMalformed) {
				t.Errorf("err = %v, want ErrFeedMalformed", err)
			}
		})
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	items, err := Decode([]byte(`[]`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len = %d, want 0", len(items))
	}
}
