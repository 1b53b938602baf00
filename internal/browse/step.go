package browse

import (
	"github.com/llehouerou/shelf/internal/catalog"
)

// Step returns the ordered-traversal successor of from.
//
// The title index advances first. Past the last title the next album of
// the same artist is taken, never the "All" album. Past the last album the
// next artist's first real album is taken, wrapping from the last artist
// to the first real one; the "All" artist is never entered.
func (c *Cursor) Step(from Position) (Position, error) {
	if len(c.artists) == 0 {
		return Position{}, ErrEmptyCatalog
	}

	artist := from.Artist
	artistIdx := c.artistIndex(artist)
	if !artist.All && artistIdx == 0 {
		// The artist is gone; restart from the first one.
		artistIdx = 1
		artist = catalog.Named(c.artists[0])
		from = Position{Artist: artist, AlbumIndex: 1, TitleIndex: -1}
	}

	albums, err := c.src.Albums(artist)
	if err != nil {
		return Position{}, err
	}
	albumIdx := clamp(from.AlbumIndex, 0, len(albums))
	album := albumAt(albums, albumIdx)
	titles, err := c.src.Titles(artist, album)
	if err != nil {
		return Position{}, err
	}
	titleIdx := from.TitleIndex + 1

	// Every artist owns at least one album and track, so one full lap over
	// the artist list is enough unless the catalog changed underneath.
	for wraps := 0; wraps <= len(c.artists)+1; {
		if titleIdx >= 0 && titleIdx < len(titles) {
			return Position{
				Artist:     artist,
				Album:      album,
				AlbumIndex: albumIdx,
				TitleIndex: titleIdx,
				TrackID:    titles[titleIdx].ID,
			}, nil
		}

		titleIdx = 0
		albumIdx++
		if albumIdx > len(albums) {
			albumIdx = 1
			artistIdx++
			if artistIdx > len(c.artists) {
				artistIdx = 1
			}
			wraps++
			artist = catalog.Named(c.artists[artistIdx-1])
			if albums, err = c.src.Albums(artist); err != nil {
				return Position{}, err
			}
		}
		album = albumAt(albums, albumIdx)
		if titles, err = c.src.Titles(artist, album); err != nil {
			return Position{}, err
		}
	}
	return Position{}, ErrEmptyCatalog
}

// First returns the first title of the first real artist's first album.
func (c *Cursor) First() (Position, error) {
	if len(c.artists) == 0 {
		return Position{}, ErrEmptyCatalog
	}
	return c.Step(Position{
		Artist:     catalog.Named(c.artists[0]),
		AlbumIndex: 1,
		TitleIndex: -1,
	})
}
