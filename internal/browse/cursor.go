package browse

import (
	"errors"
	"fmt"

	"github.com/llehouerou/shelf/internal/catalog"
)

var (
	// ErrEmptyCatalog is returned when there is nothing to navigate to.
	ErrEmptyCatalog = errors.New("catalog is empty")
	// ErrOutOfRange is returned for a selection index outside its list.
	ErrOutOfRange = errors.New("selection out of range")
)

// Source is the subset of the catalog store the cursor reads.
type Source interface {
	Artists() ([]string, error)
	Albums(artist catalog.Filter) ([]catalog.Album, error)
	Titles(artist, album catalog.Filter) ([]catalog.Title, error)
	TrackByID(id int64) (*catalog.Track, error)
}

// Cursor is the browser state: the selected row in each list, the lists
// themselves, and the remembered position of the current track.
//
// Lists are always recomputed from the source; nothing is diffed.
type Cursor struct {
	src Source

	artists []string
	albums  []catalog.Album
	titles  []catalog.Title

	sel    Position
	cur    Position
	hasCur bool
}

// New returns a cursor over src. Call Load before use.
func New(src Source) *Cursor {
	return &Cursor{src: src, sel: Start}
}

// Load reads the artist list and selects the "All" aggregate.
func (c *Cursor) Load() error {
	artists, err := c.src.Artists()
	if err != nil {
		return err
	}
	c.artists = artists
	return c.SelectArtist(0)
}

// Artists returns the real artist names; display index i+1.
func (c *Cursor) Artists() []string {
	return append([]string(nil), c.artists...)
}

// Albums returns the real albums of the selected artist; display index i+1.
func (c *Cursor) Albums() []catalog.Album {
	return append([]catalog.Album(nil), c.albums...)
}

// Titles returns the title list of the selected album.
func (c *Cursor) Titles() []catalog.Title {
	return append([]catalog.Title(nil), c.titles...)
}

// Rows returns the title list with queued rows marked.
func (c *Cursor) Rows(queued func(id int64) bool) []Row {
	rows := make([]Row, len(c.titles))
	for i, t := range c.titles {
		rows[i] = Row{Title: t, Queued: queued != nil && queued(t.ID)}
	}
	return rows
}

// ArtistIndex returns the display index of the selected artist.
func (c *Cursor) ArtistIndex() int {
	return c.artistIndex(c.sel.Artist)
}

func (c *Cursor) artistIndex(f catalog.Filter) int {
	if f.All {
		return 0
	}
	return indexOf(c.artists, f.Name) + 1
}

// Selection returns the selected position.
func (c *Cursor) Selection() Position {
	return c.sel
}

// Current returns the remembered position of the current track.
func (c *Cursor) Current() (Position, bool) {
	return c.cur, c.hasCur
}

// ClearCurrent forgets the current track position.
func (c *Cursor) ClearCurrent() {
	c.cur = Position{}
	c.hasCur = false
}

// SelectArtist selects an artist by display index (0 = All) and rebuilds
// the album list. The album selection returns to the current track's album
// when the current track belongs to this artist, otherwise to "All".
func (c *Cursor) SelectArtist(index int) error {
	if index < 0 || index > len(c.artists) {
		return fmt.Errorf("%w: artist %d", ErrOutOfRange, index)
	}
	artist := catalog.Any
	if index > 0 {
		artist = catalog.Named(c.artists[index-1])
	}

	albums, err := c.src.Albums(artist)
	if err != nil {
		return err
	}
	c.sel.Artist = artist
	c.albums = albums

	albumIdx := 0
	if c.hasCur && c.cur.Artist == artist && c.cur.AlbumIndex <= len(albums) {
		albumIdx = c.cur.AlbumIndex
	}
	return c.SelectAlbum(albumIdx)
}

// SelectAlbum selects an album by display index (0 = All) and rebuilds the
// title list. The title selection returns to the current track when it is
// in this album, otherwise to the first row.
func (c *Cursor) SelectAlbum(index int) error {
	if index < 0 || index > len(c.albums) {
		return fmt.Errorf("%w: album %d", ErrOutOfRange, index)
	}
	album := albumAt(c.albums, index)

	titles, err := c.src.Titles(c.sel.Artist, album)
	if err != nil {
		return err
	}
	c.sel.Album = album
	c.sel.AlbumIndex = index
	c.titles = titles

	titleIdx := firstTitle(titles)
	if c.hasCur && c.cur.SameAlbum(c.sel) {
		if i := titleIndex(titles, c.cur.TrackID); i >= 0 {
			titleIdx = i
		}
	}
	c.setTitle(titleIdx)
	return nil
}

// SelectTitle selects a row of the title list.
func (c *Cursor) SelectTitle(index int) error {
	if index < 0 || index >= len(c.titles) {
		return fmt.Errorf("%w: title %d", ErrOutOfRange, index)
	}
	c.setTitle(index)
	return nil
}

func (c *Cursor) setTitle(index int) {
	c.sel.TitleIndex = index
	c.sel.TrackID = trackAt(c.titles, index)
}

// MoveTo selects pos in all three lists and remembers it as the current
// track. A position whose indexes no longer address pos.TrackID is located
// afresh.
func (c *Cursor) MoveTo(pos Position) error {
	resolved, err := c.resolve(pos)
	if err != nil {
		return err
	}
	if err := c.show(resolved); err != nil {
		return err
	}
	c.cur = c.sel
	c.hasCur = true
	return nil
}

// show loads the lists for pos and makes it the selection.
func (c *Cursor) show(pos Position) error {
	albums, err := c.src.Albums(pos.Artist)
	if err != nil {
		return err
	}
	titles, err := c.src.Titles(pos.Artist, pos.Album)
	if err != nil {
		return err
	}
	c.albums = albums
	c.titles = titles
	c.sel = pos
	return nil
}

func (c *Cursor) resolve(pos Position) (Position, error) {
	if pos.TrackID == 0 {
		return Position{}, fmt.Errorf("%w: no track", ErrOutOfRange)
	}
	if !pos.Artist.All && indexOf(c.artists, pos.Artist.Name) < 0 {
		return c.Locate(pos.TrackID)
	}
	albums, err := c.src.Albums(pos.Artist)
	if err != nil {
		return Position{}, err
	}
	if albumAt(albums, pos.AlbumIndex) != pos.Album {
		return c.Locate(pos.TrackID)
	}
	titles, err := c.src.Titles(pos.Artist, pos.Album)
	if err != nil {
		return Position{}, err
	}
	if trackAt(titles, pos.TitleIndex) != pos.TrackID {
		return c.Locate(pos.TrackID)
	}
	return pos, nil
}

// Locate computes the position of a track under its own artist and album.
func (c *Cursor) Locate(id int64) (Position, error) {
	track, err := c.src.TrackByID(id)
	if err != nil {
		return Position{}, err
	}
	artist := catalog.Named(track.Artist)
	albums, err := c.src.Albums(artist)
	if err != nil {
		return Position{}, err
	}
	albumIdx := albumIndex(albums, track.Album, false)
	album := albumAt(albums, albumIdx)
	titles, err := c.src.Titles(artist, album)
	if err != nil {
		return Position{}, err
	}
	titleIdx := titleIndex(titles, id)
	if titleIdx < 0 {
		return Position{}, fmt.Errorf("%w: id %d", catalog.ErrTrackNotFound, id)
	}
	return Position{
		Artist:     artist,
		Album:      album,
		AlbumIndex: albumIdx,
		TitleIndex: titleIdx,
		TrackID:    id,
	}, nil
}

// RestoreSelection reinstates a saved selection without touching the
// current track position. A selection whose track still exists is located
// exactly. Otherwise it is restored leniently: a vanished artist falls back
// to "All" and indexes are clamped to their lists.
func (c *Cursor) RestoreSelection(pos Position) error {
	if pos.TrackID != 0 {
		resolved, err := c.resolve(pos)
		switch {
		case err == nil:
			return c.show(resolved)
		case !errors.Is(err, catalog.ErrTrackNotFound):
			return err
		}
	}
	return c.restoreLenient(pos)
}

func (c *Cursor) restoreLenient(pos Position) error {
	artistIdx := 0
	if !pos.Artist.All {
		artistIdx = indexOf(c.artists, pos.Artist.Name) + 1
	}
	if err := c.SelectArtist(artistIdx); err != nil {
		return err
	}
	if err := c.SelectAlbum(clamp(pos.AlbumIndex, 0, len(c.albums))); err != nil {
		return err
	}
	if len(c.titles) > 0 {
		c.setTitle(clamp(pos.TitleIndex, 0, len(c.titles)-1))
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
