// Package browse keeps the artist → album → title navigation state coherent
// with the catalog.
package browse

import (
	"strings"

	"github.com/llehouerou/shelf/internal/catalog"
)

// Position addresses one row of the three lists.
//
// AlbumIndex counts the "All" pseudo-entry as 0, so the first real album is
// 1. TitleIndex indexes the title list directly and is -1 when nothing is
// selected. Album mirrors the entry at AlbumIndex so a position can be
// recognised after the list shifts.
type Position struct {
	Artist     catalog.Filter
	Album      catalog.Filter
	AlbumIndex int
	TitleIndex int
	TrackID    int64
}

// Start is the position of a freshly opened browser.
var Start = Position{Artist: catalog.Any, Album: catalog.Any, TitleIndex: -1}

// IsZero reports whether no track is addressed.
func (p Position) IsZero() bool {
	return p.TrackID == 0
}

// SameAlbum reports whether both positions are inside the same album list.
func (p Position) SameAlbum(o Position) bool {
	return p.Artist == o.Artist && p.AlbumIndex == o.AlbumIndex && p.Album == o.Album
}

// Row is one title list entry as displayed.
type Row struct {
	catalog.Title
	Queued bool
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// albumIndex returns the display index (1-based) of name, or 0 if absent.
// Under "All" artists albums are grouped case-insensitively.
func albumIndex(albums []catalog.Album, name string, anyArtist bool) int {
	for i, a := range albums {
		if a.Name == name || (anyArtist && strings.EqualFold(a.Name, name)) {
			return i + 1
		}
	}
	return 0
}

func albumAt(albums []catalog.Album, displayIndex int) catalog.Filter {
	if displayIndex <= 0 || displayIndex > len(albums) {
		return catalog.Any
	}
	return catalog.Named(albums[displayIndex-1].Name)
}

func titleIndex(titles []catalog.Title, id int64) int {
	if id == 0 {
		return -1
	}
	for i, t := range titles {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func trackAt(titles []catalog.Title, index int) int64 {
	if index < 0 || index >= len(titles) {
		return 0
	}
	return titles[index].ID
}

func firstTitle(titles []catalog.Title) int {
	if len(titles) == 0 {
		return -1
	}
	return 0
}
