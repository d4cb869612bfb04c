package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDefaultOrder(t *testing.T) {
	items := Merge(
		[]string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		[]string{"https://cdn.example.com/c.jpg"},
		nil,
	)

	require.Len(t, items, 3)
	assert.Equal(t, "https://cdn.example.com/a.jpg", items[0].Src)
	assert.Equal(t, "https://cdn.example.com/b.jpg", items[1].Src)
	assert.Equal(t, "https://cdn.example.com/c.jpg", items[2].Src)

	// Without an explicit order, type comes purely from list membership. The
	// third entry has an image extension but came from the videos list.
	assert.Equal(t, TypeImage, items[0].Type)
	assert.Equal(t, TypeImage, items[1].Type)
	assert.Equal(t, TypeVideo, items[2].Type)
}

func TestMergeOrderedOverride(t *testing.T) {
	images := []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}
	videos := []string{"https://cdn.example.com/c.mp4"}

	items := Merge(images, videos, []string{"https://cdn.example.com/c.mp4", "https://cdn.example.com/a.jpg"})

	require.Len(t, items, 2)
	assert.Equal(t, "https://cdn.example.com/c.mp4", items[0].Src)
	assert.Equal(t, TypeVideo, items[0].Type)
	assert.Equal(t, "https://cdn.example.com/a.jpg", items[1].Src)
	assert.Equal(t, TypeImage, items[1].Type)
}

func TestMergeOrderedSniffsByShapeOnly(t *testing.T) {
	// A video referenced only through the ordered list is classified by URL
	// shape; a shape matching neither pattern renders as an image.
	items := Merge(nil, []string{"https://cdn.example.com/clip.webm"}, []string{"https://cdn.example.com/clip.webm"})
	require.Len(t, items, 1)
	assert.Equal(t, TypeImage, items[0].Type)

	items = Merge(nil, nil, []string{
		"https://cdn.example.com/clip.MP4?version=2",
		"https://youtu.be/XYZ123",
		"https://www.youtube.com/watch?v=XYZ123",
	})
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, TypeVideo, it.Type, it.Src)
	}
}

func TestMergeOrderedNoDeduplication(t *testing.T) {
	items := Merge(nil, nil, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"})
	assert.Len(t, items, 2)
}

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, Merge(nil, nil, nil))
}

func TestYouTubeEmbed(t *testing.T) {
	cases := map[string]string{
		"https://youtu.be/XYZ123":                  "https://www.youtube.com/embed/XYZ123",
		"https://www.youtube.com/watch?v=XYZ123":   "https://www.youtube.com/embed/XYZ123",
		"https://www.youtube.com/embed/XYZ123":     "https://www.youtube.com/embed/XYZ123",
		"https://www.youtube.com/playlist?list=pl": "https://www.youtube.com/playlist?list=pl",
		"not a url":                                "not a url",
		"https://cdn.example.com/clip.mp4":         "https://cdn.example.com/clip.mp4",
	}
	for in, want := range cases {
		assert.Equal(t, want, YouTubeEmbed(in), in)
	}
}

func TestHeroImagesDropsEmptyEntries(t *testing.T) {
	got := HeroImages("https://cdn.example.com/hero.jpg", []string{"", "https://cdn.example.com/b.jpg", ""})
	assert.Equal(t, []string{"https://cdn.example.com/hero.jpg", "https://cdn.example.com/b.jpg"}, got)

	assert.Empty(t, HeroImages("", nil))
}

func TestNextIndex(t *testing.T) {
	// Single candidate: the selection never moves.
	assert.Equal(t, 0, NextIndex(0, 1))
	assert.Equal(t, 0, NextIndex(0, 0))

	// Three candidates cycle 0 -> 1 -> 2 -> 0.
	i := 0
	var seen []int
	for step := 0; step < 4; step++ {
		i = NextIndex(i, 3)
		seen = append(seen, i)
	}
	assert.Equal(t, []int{1, 2, 0, 1}, seen)
}
