package feed

import (
	"github.com/tidwall/gjson"

	"github.com/iconidentify/skygallery/internal/domain"
)

// Decode parses a feed document into items.
//
// The document must be a JSON array. Each object element becomes an Item;
// fields that are missing or not strings decode as "". Elements that are
// not objects are skipped.
func Decode(data []byte) ([]domain.Item, error) {
	if !gjson.ValidBytes(data) {
		return nil, domain.ErrFeedMalformed
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, domain.ErrFeedMalformed
	}

	items := make([]domain.Item, 0, len(doc.Array()))
	doc.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		items = append(items, domain.Item{
			Title:        str(v, "title"),
			Date:         str(v, "date"),
			Explanation:  str(v, "explanation"),
			MediaType:    domain.MediaType(str(v, "media_type")),
			URL:          str(v, "url"),
			HDURL:        str(v, "hdurl"),
			ThumbnailURL: str(v, "thumbnail_url"),
		})
		return true
	})
	return items, nil
}

func str(v gjson.Result, key string) string {
	f := v.Get(key)
	if f.Type != gjson.String {
		return ""
	}
	return f.Str
}
