package browse

import (
	"github.com/llehouerou/shelf/internal/catalog"
)

// Refresh recomputes every list from the source after an insert or delete
// and repairs both the selection and the current track position:
//
//   - a vanished artist is replaced by the artist that now occupies its
//     slot, or the first real artist when it was the last one;
//   - a vanished album keeps its slot (clamped) and the title resets to 0;
//   - a vanished track keeps its row index if a row is still there, else
//     the last row.
//
// A title list that gains rows while nothing is selected selects its
// first row.
//
// The current track position is the anchor of ordered traversal. When its
// track vanished it is repaired to the slot just before the track that
// should play next, with no track id: the first real album of the next
// artist, the start of the repaired album, or the row before the pinned
// one.
func (c *Cursor) Refresh() error {
	oldArtists := c.artists
	artists, err := c.src.Artists()
	if err != nil {
		return err
	}
	c.artists = artists
	if len(artists) == 0 {
		c.ClearCurrent()
	}

	sel, err := c.repair(c.sel, oldArtists, false)
	if err != nil {
		return err
	}
	if c.hasCur {
		cur, err := c.repair(c.cur, oldArtists, true)
		if err != nil {
			return err
		}
		c.cur = cur
	}
	return c.show(sel)
}

func (c *Cursor) repair(pos Position, oldArtists []string, anchor bool) (Position, error) {
	artist := pos.Artist
	artistGone := !artist.All && indexOf(c.artists, artist.Name) < 0
	if artistGone {
		slot := indexOf(oldArtists, artist.Name)
		switch {
		case len(c.artists) == 0:
			artist = catalog.Any
		case slot >= 0 && slot < len(c.artists):
			artist = catalog.Named(c.artists[slot])
		default:
			artist = catalog.Named(c.artists[0])
		}
	}

	albums, err := c.src.Albums(artist)
	if err != nil {
		return Position{}, err
	}
	albumIdx, album := pos.AlbumIndex, pos.Album
	albumGone := artistGone
	switch {
	case artistGone:
		albumIdx, album = 0, catalog.Any
	case album.All:
		albumIdx = 0
	default:
		if i := albumIndex(albums, album.Name, artist.All); i > 0 {
			albumIdx = i
			album = albumAt(albums, i)
		} else {
			albumGone = true
			albumIdx = clamp(albumIdx, 1, len(albums))
			if len(albums) == 0 {
				albumIdx = 0
			}
			album = albumAt(albums, albumIdx)
		}
	}

	titles, err := c.src.Titles(artist, album)
	if err != nil {
		return Position{}, err
	}
	titleIdx := pos.TitleIndex
	switch {
	case albumGone:
		titleIdx = firstTitle(titles)
	case titleIndex(titles, pos.TrackID) >= 0:
		titleIdx = titleIndex(titles, pos.TrackID)
	case titleIdx >= len(titles):
		titleIdx = len(titles) - 1
	case titleIdx < 0:
		titleIdx = firstTitle(titles)
	}

	if anchor && titleIndex(titles, pos.TrackID) < 0 {
		return anchorBefore(pos, artist, albums, albumIdx, album, len(titles), artistGone, albumGone), nil
	}

	return Position{
		Artist:     artist,
		Album:      album,
		AlbumIndex: albumIdx,
		TitleIndex: titleIdx,
		TrackID:    trackAt(titles, titleIdx),
	}, nil
}

// anchorBefore builds the traversal anchor for a current position whose track
// is gone. Step from the result yields the track that should play next.
func anchorBefore(pos Position, artist catalog.Filter, albums []catalog.Album,
	albumIdx int, album catalog.Filter, rows int, artistGone, albumGone bool,
) Position {
	titleIdx := -1
	switch {
	case artistGone:
		albumIdx = min(1, len(albums))
		album = albumAt(albums, albumIdx)
	case albumGone:
	case pos.TrackID == 0:
		titleIdx = clamp(pos.TitleIndex, -1, rows-1)
	default:
		titleIdx = clamp(pos.TitleIndex, 0, rows) - 1
	}
	return Position{
		Artist:     artist,
		Album:      album,
		AlbumIndex: albumIdx,
		TitleIndex: titleIdx,
	}
}
