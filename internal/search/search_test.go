package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/shelf/internal/catalog"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello", "hello"},
		{"UPPERCASE", "uppercase"},
		{"", ""},
		{"Café", "cafe"},
		{"Sigur Rós", "sigur ros"},
		{"Mötley Crüe", "motley crue"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalize(tt.input); got != tt.expected {
				t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrigrams(t *testing.T) {
	tris := trigrams("cat")
	for _, want := range []string{"  c", " ca", "cat", "at ", "t  "} {
		if _, ok := tris[want]; !ok {
			t.Errorf("trigrams(cat) missing %q", want)
		}
	}
	if _, ok := tris["   "]; ok {
		t.Error("all-blank trigram should be skipped")
	}
	if trigrams("") != nil {
		t.Error("trigrams of empty string should be nil")
	}
}

func TestCoverage(t *testing.T) {
	q := trigrams("dark")
	assert.InDelta(t, 4.0/6.0, coverage(q, trigrams("the dark side")), 0.001)
	assert.InDelta(t, 1.0, coverage(q, trigrams("dark")), 0.001)
	assert.Zero(t, coverage(q, trigrams("wish you were here")))
	assert.Zero(t, coverage(nil, trigrams("anything")))
}

func sampleTracks() []catalog.Track {
	return []catalog.Track{
		{ID: 1, Artist: "Pink Floyd", Album: "The Dark Side of the Moon", Title: "Time"},
		{ID: 2, Artist: "Pink Floyd", Album: "Wish You Were Here", Title: "Shine On You Crazy Diamond"},
		{ID: 3, Artist: "Sigur Rós", Album: "Ágætis byrjun", Title: "Svefn-g-englar"},
		{ID: 4, Artist: "Darkside", Album: "Psychic", Title: "Golden Arrow"},
	}
}

func ids(matches []Match) []int64 {
	out := make([]int64, len(matches))
	for i, m := range matches {
		out[i] = m.Track.ID
	}
	return out
}

func TestSearch_AllWordsMustMatch(t *testing.T) {
	idx := NewIndex(sampleTracks())
	assert.Equal(t, 4, idx.Len())

	assert.Equal(t, []int64{2}, ids(idx.Search("floyd diamond", 0)))
	assert.Empty(t, idx.Search("floyd psychic", 0))
}

func TestSearch_TiesKeepCatalogOrder(t *testing.T) {
	idx := NewIndex(sampleTracks())

	assert.Equal(t, []int64{1, 4}, ids(idx.Search("dark", 0)))
}

func TestSearch_IgnoresDiacritics(t *testing.T) {
	idx := NewIndex(sampleTracks())
	assert.Equal(t, []int64{3}, ids(idx.Search("agætis", 0)))
	assert.Equal(t, []int64{3}, ids(idx.Search("RÓS", 0)))
}

func TestSearch_ToleratesTypos(t *testing.T) {
	idx := NewIndex(sampleTracks())
	assert.Equal(t, []int64{2}, ids(idx.Search("diamnod", 0)))
}

func TestSearch_EmptyQueryAndLimit(t *testing.T) {
	idx := NewIndex(sampleTracks())
	assert.Empty(t, idx.Search("   ", 0))
	assert.Len(t, idx.Search("pink", 1), 1)
}
