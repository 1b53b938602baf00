// Package catalog is the persistent table of imported tracks and the
// grouped queries the browser is built from.
package catalog

import (
	"time"
)

// Track is one row of the catalog.
type Track struct {
	ID          int64
	Artist      string
	Album       string
	Year        int
	TrackNumber int
	Title       string
	Path        string
	Length      time.Duration
	PlayCount   int
}

// Label is the short display form used by the queue.
func (t Track) Label() string {
	return t.Artist + " - " + t.Title
}

// Filter restricts a grouped query to one artist or album, or selects the
// synthetic "All" aggregate.
type Filter struct {
	Name string
	All  bool
}

// Any is the "All" aggregate.
var Any = Filter{All: true}

// Named restricts to a single group. The empty name is a real group:
// tracks imported without tags carry empty metadata.
func Named(name string) Filter {
	return Filter{Name: name}
}

func (f Filter) String() string {
	if f.All {
		return AllLabel
	}
	return f.Name
}

// AllLabel is the display text of the leading pseudo-entry in every list.
const AllLabel = "All"

// Album is one entry of an album list.
type Album struct {
	Artist string
	Name   string
	Year   int
}

// Title is one entry of a title list.
type Title struct {
	ID          int64
	TrackNumber int
	Title       string
}

// ScopeKind enumerates delete granularities.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeArtist
	ScopeArtistAlbum
	ScopeAlbum
	ScopeTrack
)

// Scope selects the rows removed by Delete.
type Scope struct {
	Kind   ScopeKind
	Artist string
	Album  string
	ID     int64
}

// AllTracks empties the catalog.
func AllTracks() Scope { return Scope{Kind: ScopeAll} }

// ByArtist removes every track whose artist is exactly name.
func ByArtist(name string) Scope { return Scope{Kind: ScopeArtist, Artist: name} }

// ByArtistAlbum removes one album of one artist.
func ByArtistAlbum(artist, album string) Scope {
	return Scope{Kind: ScopeArtistAlbum, Artist: artist, Album: album}
}

// ByAlbum removes an album across all artists, matching the name
// case-insensitively like the "All artists" album list groups it.
func ByAlbum(album string) Scope { return Scope{Kind: ScopeAlbum, Album: album} }

// ByID removes a single track.
func ByID(id int64) Scope { return Scope{Kind: ScopeTrack, ID: id} }
