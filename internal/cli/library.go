package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/search"
)

func newArtistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "artists",
		Short: "List artists",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			sqlDB, store, err := a.openStore()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			artists, err := store.Artists()
			if err != nil {
				return a.absorb(errmsg.OpCatalogQuery, err)
			}
			t := newTable(a.out)
			t.row("0", catalog.AllLabel)
			for i, name := range artists {
				t.row(strconv.Itoa(i+1), displayName(name))
			}
			t.flush()
			return nil
		},
	}
}

func newAlbumsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "albums [artist]",
		Short: "List the albums of an artist, or of every artist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sqlDB, store, err := a.openStore()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			artist := catalog.Any
			if len(args) == 1 {
				artist = catalog.Named(args[0])
			}
			albums, err := store.Albums(artist)
			if err != nil {
				return a.absorb(errmsg.OpCatalogQuery, err)
			}
			t := newTable(a.out)
			t.row("0", catalog.AllLabel, "")
			for i, al := range albums {
				year := ""
				if al.Year > 0 {
					year = strconv.Itoa(al.Year)
				}
				t.row(strconv.Itoa(i+1), displayName(al.Name), year)
			}
			t.flush()
			return nil
		},
	}
}

func newTitlesCmd(a *app) *cobra.Command {
	var artistName, albumName string
	cmd := &cobra.Command{
		Use:   "titles",
		Short: "List titles, optionally restricted to an artist and album",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sqlDB, store, err := a.openStore()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			artist, album := catalog.Any, catalog.Any
			if cmd.Flags().Changed("artist") {
				artist = catalog.Named(artistName)
			}
			if cmd.Flags().Changed("album") {
				album = catalog.Named(albumName)
			}
			titles, err := store.Titles(artist, album)
			if err != nil {
				return a.absorb(errmsg.OpCatalogQuery, err)
			}
			t := newTable(a.out, "ROW", "ID", "NO", "TITLE")
			for i, ti := range titles {
				no := ""
				if ti.TrackNumber > 0 {
					no = strconv.Itoa(ti.TrackNumber)
				}
				t.row(strconv.Itoa(i), strconv.FormatInt(ti.ID, 10), no, ti.Title)
			}
			t.flush()
			return nil
		},
	}
	cmd.Flags().StringVar(&artistName, "artist", "", "restrict to one artist")
	cmd.Flags().StringVar(&albumName, "album", "", "restrict to one album")
	return cmd
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show a track",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid track id %q", args[0])
			}
			sqlDB, store, err := a.openStore()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			track, err := store.TrackByID(id)
			if err != nil {
				return a.absorb(errmsg.OpTrackLoad, err)
			}
			t := newTable(a.out)
			t.row("ID", strconv.FormatInt(track.ID, 10))
			t.row("Artist", displayName(track.Artist))
			t.row("Album", displayName(track.Album))
			if track.Year > 0 {
				t.row("Year", strconv.Itoa(track.Year))
			}
			if track.TrackNumber > 0 {
				t.row("Track", strconv.Itoa(track.TrackNumber))
			}
			t.row("Title", track.Title)
			t.row("Length", formatDuration(track.Length))
			t.row("Played", formatPlays(track.PlayCount))
			t.row("Path", track.Path)
			t.flush()
			return nil
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "find <words...>",
		Short: "Search tracks by artist, album and title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sqlDB, store, err := a.openStore()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			tracks, err := store.AllTracks()
			if err != nil {
				return a.absorb(errmsg.OpCatalogQuery, err)
			}
			matches := search.NewIndex(tracks).Search(strings.Join(args, " "), limit)
			if len(matches) == 0 {
				fmt.Fprintln(a.out, "No matches")
				return nil
			}
			t := newTable(a.out, "ID", "ARTIST", "ALBUM", "TITLE")
			for _, m := range matches {
				t.row(strconv.FormatInt(m.Track.ID, 10), displayName(m.Track.Artist), displayName(m.Track.Album), m.Track.Title)
			}
			t.flush()
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of results (0 for all)")
	return cmd
}
