package catalog

import (
	"strings"
	"testing"
)

func seedLibrary(t *testing.T, s *Store) {
	t.Helper()
	mustInsert(t, s,
		Track{Artist: "the Beatles", Album: "Abbey Road", Year: 1969, TrackNumber: 2, Title: "Something", Path: "/b/ar/02.mp3"},
		Track{Artist: "the Beatles", Album: "Abbey Road", Year: 1969, TrackNumber: 1, Title: "Come Together", Path: "/b/ar/01.mp3"},
		Track{Artist: "the Beatles", Album: "Revolver", Year: 1966, TrackNumber: 1, Title: "Taxman", Path: "/b/rv/01.mp3"},
		Track{Artist: "Led Zeppelin", Album: "IV", Year: 1971, TrackNumber: 4, Title: "Stairway", Path: "/lz/iv/04.mp3"},
		Track{Artist: "Led Zeppelin", Album: "IV", Year: 1971, TrackNumber: 1, Title: "Black Dog", Path: "/lz/iv/01.mp3"},
		Track{Artist: "Pink Floyd", Album: "abbey road", Year: 1970, TrackNumber: 1, Title: "Echoes", Path: "/pf/ar/01.mp3"},
	)
}

func titleNames(titles []Title) []string {
	names := make([]string, len(titles))
	for i, title := range titles {
		names[i] = title.Title
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestArtists(t *testing.T) {
	s := setupStore(t)

	artists, err := s.Artists()
	if err != nil {
		t.Fatalf("Artists failed: %v", err)
	}
	if len(artists) != 0 {
		t.Errorf("expected 0 artists, got %d", len(artists))
	}

	seedLibrary(t, s)

	artists, err = s.Artists()
	if err != nil {
		t.Fatalf("Artists failed: %v", err)
	}

	// Sorted case-insensitively: "the Beatles" sorts under T.
	expected := []string{"Led Zeppelin", "Pink Floyd", "the Beatles"}
	if !equalStrings(artists, expected) {
		t.Errorf("Artists() = %v, want %v", artists, expected)
	}
}

func TestAlbums_ForArtist(t *testing.T) {
	s := setupStore(t)
	seedLibrary(t, s)

	albums, err := s.Albums(Named("the Beatles"))
	if err != nil {
		t.Fatalf("Albums failed: %v", err)
	}
	if len(albums) != 2 {
		t.Fatalf("expected 2 albums, got %d", len(albums))
	}

	// Ordered by year, then name.
	if albums[0].Name != "Revolver" || albums[0].Year != 1966 {
		t.Errorf("albums[0] = %+v, want Revolver (1966)", albums[0])
	}
	if albums[1].Name != "Abbey Road" || albums[1].Year != 1969 {
		t.Errorf("albums[1] = %+v, want Abbey Road (1969)", albums[1])
	}
	for _, a := range albums {
		if a.Artist != "the Beatles" {
			t.Errorf("album %q artist = %q", a.Name, a.Artist)
		}
	}

	albums, err = s.Albums(Named("Non Existent"))
	if err != nil {
		t.Fatalf("Albums failed: %v", err)
	}
	if len(albums) != 0 {
		t.Errorf("expected 0 albums for non-existent artist, got %d", len(albums))
	}
}

func TestAlbums_AllGroupsByNameCaseInsensitively(t *testing.T) {
	s := setupStore(t)
	seedLibrary(t, s)

	albums, err := s.Albums(Any)
	if err != nil {
		t.Fatalf("Albums failed: %v", err)
	}
	if len(albums) != 3 {
		t.Fatalf("expected 3 album groups, got %d: %+v", len(albums), albums)
	}

	expected := []string{"abbey road", "iv", "revolver"}
	for i, a := range albums {
		if !strings.EqualFold(a.Name, expected[i]) {
			t.Errorf("albums[%d] = %q, want %q (any case)", i, a.Name, expected[i])
		}
	}
}

func TestTitles_FourShapes(t *testing.T) {
	s := setupStore(t)
	seedLibrary(t, s)

	tests := []struct {
		name   string
		artist Filter
		album  Filter
		want   []string
	}{
		{
			name:   "all artists all albums by title",
			artist: Any,
			album:  Any,
			want:   []string{"Black Dog", "Come Together", "Echoes", "Something", "Stairway", "Taxman"},
		},
		{
			name:   "one artist all albums by title",
			artist: Named("the Beatles"),
			album:  Any,
			want:   []string{"Come Together", "Something", "Taxman"},
		},
		{
			name:   "all artists one album by track number",
			artist: Any,
			album:  Named("ABBEY ROAD"),
			want:   []string{"Come Together", "Echoes", "Something"},
		},
		{
			name:   "one artist one album by track number",
			artist: Named("Led Zeppelin"),
			album:  Named("IV"),
			want:   []string{"Black Dog", "Stairway"},
		},
		{
			name:   "album match is exact for a named artist",
			artist: Named("the Beatles"),
			album:  Named("abbey road"),
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			titles, err := s.Titles(tt.artist, tt.album)
			if err != nil {
				t.Fatalf("Titles failed: %v", err)
			}
			got := titleNames(titles)
			if !equalStrings(got, tt.want) {
				t.Errorf("Titles() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTitles_CarryTrackNumbers(t *testing.T) {
	s := setupStore(t)
	seedLibrary(t, s)

	titles, err := s.Titles(Named("Led Zeppelin"), Named("IV"))
	if err != nil {
		t.Fatalf("Titles failed: %v", err)
	}
	if titles[0].TrackNumber != 1 || titles[1].TrackNumber != 4 {
		t.Errorf("track numbers = %d, %d, want 1, 4", titles[0].TrackNumber, titles[1].TrackNumber)
	}
	if titles[0].ID == 0 {
		t.Error("title rows should carry the track id")
	}
}

func TestTitleShape(t *testing.T) {
	tests := []struct {
		artist, album Filter
		want          queryShape
		wantArgs      int
	}{
		{Any, Any, shapeEverything, 0},
		{Named("a"), Any, shapeArtist, 1},
		{Any, Named("b"), shapeAlbum, 1},
		{Named("a"), Named("b"), shapeArtistAlbum, 2},
	}
	for _, tt := range tests {
		shape := titleShape(tt.artist, tt.album)
		if shape != tt.want {
			t.Errorf("titleShape(%v, %v) = %d, want %d", tt.artist, tt.album, shape, tt.want)
		}
		if n := len(shape.args(tt.artist, tt.album)); n != tt.wantArgs {
			t.Errorf("shape %d args = %d, want %d", shape, n, tt.wantArgs)
		}
		if _, ok := titleQueries[shape]; !ok {
			t.Errorf("no query for shape %d", shape)
		}
	}
}

func TestFilter_String(t *testing.T) {
	if Any.String() != AllLabel {
		t.Errorf("Any.String() = %q, want %q", Any.String(), AllLabel)
	}
	if Named("Björk").String() != "Björk" {
		t.Errorf("Named.String() = %q", Named("Björk").String())
	}
}
