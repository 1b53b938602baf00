package tags

import (
	"path/filepath"

	"github.com/bogem/id3v2/v2"
)

// readMP3WithID3v2Fallback reads MP3 metadata using only the id3v2 library.
func readMP3WithID3v2Fallback(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	title := id3tag.Title()
	if title == "" {
		title = filepath.Base(path)
	}

	artist := id3tag.Artist()
	if artist == "" {
		artist = getID3TextFrame(id3tag, "TPE2")
	}

	track, _ := parseTrackNumber(getID3TextFrame(id3tag, "TRCK"))

	return &Tag{
		Path:        path,
		Title:       title,
		Artist:      artist,
		Album:       id3tag.Album(),
		Date:        id3Date(id3tag),
		TrackNumber: track,
	}, nil
}

// id3Date tries the ID3v2.4 recording date, then the ID3v2.3 year frame.
func id3Date(id3tag *id3v2.Tag) string {
	if date := getID3TextFrame(id3tag, "TDRC"); date != "" {
		return date
	}
	if year := id3tag.Year(); len(year) >= 4 {
		return year[:4]
	}
	return ""
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
