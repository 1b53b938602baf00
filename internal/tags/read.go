package tags

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

// Reader reads tags from a file path.
type Reader interface {
	Read(path string) (*Tag, error)
}

// FileReader is the Reader backed by the files themselves.
type FileReader struct{}

// Read implements Reader.
func (FileReader) Read(path string) (*Tag, error) {
	return Read(path)
}

// Length returns the stream length of path.
func (FileReader) Length(path string) (time.Duration, error) {
	return ReadLength(path)
}

// Read reads tag metadata from a music file. A missing title falls back
// to the file name.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch strings.ToLower(filepath.Ext(path)) {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2Fallback(path)
		case ExtM4A, ExtMP4, ExtFLAC, ExtOPUS, ExtOGG, ExtOGA:
			return readWithTaglib(path)
		}
		return nil, err
	}

	title := m.Title()
	if title == "" {
		title = filepath.Base(path)
	}
	track, _ := m.Track()

	return &Tag{
		Path:        path,
		Title:       title,
		Artist:      m.Artist(),
		Album:       m.Album(),
		Date:        yearToDate(m.Year()),
		TrackNumber: track,
	}, nil
}

// ReadLength returns the stream length reported by TagLib.
func ReadLength(path string) (time.Duration, error) {
	props, err := taglib.ReadProperties(path)
	if err != nil {
		return 0, err
	}
	return props.Length, nil
}

// readWithTaglib reads FLAC, MP4 and Ogg metadata using TagLib when
// dhowden/tag fails.
func readWithTaglib(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	title := tags.get(taglib.Title)
	if title == "" {
		title = filepath.Base(path)
	}

	return &Tag{
		Path:        path,
		Title:       title,
		Artist:      tags.get(taglib.Artist, taglib.AlbumArtist),
		Album:       tags.get(taglib.Album),
		Date:        tags.get(taglib.Date, "YEAR"),
		TrackNumber: tags.number(taglib.TrackNumber),
	}, nil
}
