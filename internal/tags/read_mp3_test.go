package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// createMinimalMP3 creates a minimal valid MP3 file for testing.
// Returns MP3 frame header + padding (417 bytes total for 128kbps frame).
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00

	if err := os.WriteFile(path, mp3Frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
}

// tagMP3 writes ID3v2 frames to an existing MP3 file.
func tagMP3(t *testing.T, path string, set func(tag *id3v2.Tag)) {
	t.Helper()
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("failed to open MP3 for tagging: %v", err)
	}
	set(tag)
	if err := tag.Save(); err != nil {
		t.Fatalf("failed to save ID3 tags: %v", err)
	}
	tag.Close()
}

func TestReadMP3WithID3v2Fallback(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "test.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, func(tag *id3v2.Tag) {
		tag.SetTitle("Test Title")
		tag.SetArtist("Test Artist")
		tag.SetAlbum("Test Album")
		tag.SetYear("2024")
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, "3/12")
	})

	info, err := readMP3WithID3v2Fallback(mp3Path)
	if err != nil {
		t.Fatalf("readMP3WithID3v2Fallback failed: %v", err)
	}

	if info.Title != "Test Title" {
		t.Errorf("Title = %q, want %q", info.Title, "Test Title")
	}
	if info.Artist != "Test Artist" {
		t.Errorf("Artist = %q, want %q", info.Artist, "Test Artist")
	}
	if info.Album != "Test Album" {
		t.Errorf("Album = %q, want %q", info.Album, "Test Album")
	}
	if info.Year() != 2024 {
		t.Errorf("Year() = %d, want %d", info.Year(), 2024)
	}
	if info.TrackNumber != 3 {
		t.Errorf("TrackNumber = %d, want %d", info.TrackNumber, 3)
	}
}

func TestReadMP3WithID3v2Fallback_ArtistFallsBackToAlbumArtist(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "test.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, func(tag *id3v2.Tag) {
		tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, "Band")
		tag.SetAlbum("Album")
	})

	info, err := readMP3WithID3v2Fallback(mp3Path)
	if err != nil {
		t.Fatalf("readMP3WithID3v2Fallback failed: %v", err)
	}

	if info.Artist != "Band" {
		t.Errorf("Artist = %q, want %q (should fall back to TPE2)", info.Artist, "Band")
	}
}

func TestReadMP3WithID3v2Fallback_TitleFallsBackToFilename(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "my-song.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, func(tag *id3v2.Tag) {
		tag.SetArtist("Artist")
	})

	info, err := readMP3WithID3v2Fallback(mp3Path)
	if err != nil {
		t.Fatalf("readMP3WithID3v2Fallback failed: %v", err)
	}

	if info.Title != "my-song.mp3" {
		t.Errorf("Title = %q, want %q (should fall back to filename)", info.Title, "my-song.mp3")
	}
}

func TestRead_MP3(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "song.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, func(tag *id3v2.Tag) {
		tag.SetTitle("Come Together")
		tag.SetArtist("The Beatles")
		tag.SetAlbum("Abbey Road")
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, "1/17")
	})

	info, err := Read(mp3Path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if info.Title != "Come Together" {
		t.Errorf("Title = %q, want %q", info.Title, "Come Together")
	}
	if info.Artist != "The Beatles" {
		t.Errorf("Artist = %q, want %q", info.Artist, "The Beatles")
	}
	if info.Album != "Abbey Road" {
		t.Errorf("Album = %q, want %q", info.Album, "Abbey Road")
	}
	if info.TrackNumber != 1 {
		t.Errorf("TrackNumber = %d, want 1", info.TrackNumber)
	}
	if info.Path != mp3Path {
		t.Errorf("Path = %q, want %q", info.Path, mp3Path)
	}
}

func TestRead_NonexistentFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Error("Read should fail for a missing file")
	}
}

func TestFileReader_ImplementsReader(t *testing.T) {
	var r Reader = FileReader{}
	mp3Path := filepath.Join(t.TempDir(), "x.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, func(tag *id3v2.Tag) { tag.SetTitle("X") })

	info, err := r.Read(mp3Path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if info.Title != "X" {
		t.Errorf("Title = %q, want X", info.Title)
	}
}
