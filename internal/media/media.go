// Package media implements the gallery ordering/classification rules and the
// hero rotator math shared by the storefront pages.
package media

import (
	"net/url"
	"regexp"
	"strings"
)

type Type string

const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
)

// Item is one displayable gallery entry.
type Item struct {
	Type Type
	Src  string
}

var mp4Pattern = regexp.MustCompile(`(?i)\.mp4($|\?)`)

// IsVideoSource reports whether a URL looks like a video by shape: an .mp4
// path (optionally followed by a query string) or a YouTube host.
func IsVideoSource(src string) bool {
	if mp4Pattern.MatchString(src) {
		return true
	}
	return IsYouTube(src)
}

// IsYouTube matches the substring check the original renderer used, on
// purpose broader than a strict host comparison.
func IsYouTube(src string) bool {
	return strings.Contains(src, "youtube") || strings.Contains(src, "youtu.be")
}

// Merge builds the display sequence for a vehicle's gallery.
//
// When ordered is non-empty it wins as-is: no deduplication, no check that
// entries exist in images/videos, and each entry is classified by URL shape.
// Otherwise the sequence is images followed by videos, classified purely by
// source list membership. The two branches classify differently and that
// asymmetry is kept: a video passed only through the ordered list renders as
// an image unless its URL matches the video patterns.
func Merge(images, videos, ordered []string) []Item {
	if len(ordered) > 0 {
		items := make([]Item, 0, len(ordered))
		for _, src := range ordered {
			t := TypeImage
			if IsVideoSource(src) {
				t = TypeVideo
			}
			items = append(items, Item{Type: t, Src: src})
		}
		return items
	}

	items := make([]Item, 0, len(images)+len(videos))
	for _, src := range images {
		items = append(items, Item{Type: TypeImage, Src: src})
	}
	for _, src := range videos {
		items = append(items, Item{Type: TypeVideo, Src: src})
	}
	return items
}

// YouTubeEmbed derives an embeddable URL from a YouTube page or short link.
// Unparseable or unmatched inputs pass through unchanged, possibly rendering
// as a raw (broken) source.
func YouTubeEmbed(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	host := u.Hostname()
	if strings.Contains(host, "youtu.be") {
		id := strings.TrimPrefix(u.Path, "/")
		return "https://www.youtube.com/embed/" + id
	}
	if strings.Contains(host, "youtube.com") {
		if id := u.Query().Get("v"); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
		if strings.HasPrefix(u.Path, "/embed/") {
			return raw
		}
	}
	return raw
}
