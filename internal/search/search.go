// Package search ranks catalog tracks against a free-text query using
// trigram coverage, so partial and slightly misspelled words still match.
package search

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/llehouerou/shelf/internal/catalog"
)

// minCoverage is the share of a query word's trigrams an entry must hold.
const minCoverage = 0.4

// Match is one ranked result.
type Match struct {
	Track catalog.Track
	Score float64
}

// Index holds the trigram sets of a track list.
type Index struct {
	tracks   []catalog.Track
	text     []string
	trigrams []map[string]struct{}
}

// NewIndex indexes tracks by artist, album and title.
func NewIndex(tracks []catalog.Track) *Index {
	idx := &Index{
		tracks:   tracks,
		text:     make([]string, len(tracks)),
		trigrams: make([]map[string]struct{}, len(tracks)),
	}
	for i, t := range tracks {
		text := normalize(t.Artist + " " + t.Album + " " + t.Title)
		idx.text[i] = text
		idx.trigrams[i] = trigrams(text)
	}
	return idx
}

// Len returns the number of indexed tracks.
func (idx *Index) Len() int { return len(idx.tracks) }

// Search returns the tracks matching every word of query, best first.
// Ties keep catalog order. An empty query matches nothing.
func (idx *Index) Search(query string, limit int) []Match {
	words := strings.Fields(normalize(query))
	if len(words) == 0 {
		return nil
	}
	wordTris := make([]map[string]struct{}, len(words))
	for i, w := range words {
		wordTris[i] = trigrams(w)
	}

	var matches []Match
	for i := range idx.tracks {
		if score := idx.score(i, words, wordTris); score > 0 {
			matches = append(matches, Match{Track: idx.tracks[i], Score: score})
		}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func (idx *Index) score(i int, words []string, wordTris []map[string]struct{}) float64 {
	text := idx.text[i]
	total := 0.0
	for j, w := range words {
		// short words have too few trigrams to be meaningful
		if len([]rune(w)) <= 2 {
			if !strings.Contains(text, w) {
				return 0
			}
			total++
			continue
		}
		sim := coverage(wordTris[j], idx.trigrams[i])
		if sim < minCoverage {
			return 0
		}
		if strings.Contains(text, w) {
			sim += 0.5
		}
		total += sim
	}
	return total / float64(len(words))
}

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize lowercases s and strips diacritics, so "Café" matches "cafe".
func normalize(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// trigrams returns the rune trigrams of s padded with two spaces on each
// side. All-blank trigrams are skipped.
func trigrams(s string) map[string]struct{} {
	if s == "" {
		return nil
	}
	r := []rune("  " + s + "  ")
	tris := make(map[string]struct{}, len(r))
	for i := 0; i+3 <= len(r); i++ {
		tri := string(r[i : i+3])
		if strings.TrimSpace(tri) != "" {
			tris[tri] = struct{}{}
		}
	}
	return tris
}

// coverage is |query ∩ item| / |query|.
func coverage(query, item map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	n := 0
	for tri := range query {
		if _, ok := item[tri]; ok {
			n++
		}
	}
	return float64(n) / float64(len(query))
}
