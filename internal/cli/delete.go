package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/errmsg"
)

func newDeleteCmd(a *app) *cobra.Command {
	var (
		all    bool
		artist string
		album  string
		id     int64
	)
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete tracks from the catalog",
		Long: `Delete tracks from the catalog. The queue and history drop the removed
tracks and playback stops if the current track was removed.

Examples:
  shelf delete --artist "Nick Drake"
  shelf delete --artist "Nick Drake" --album "Pink Moon"
  shelf delete --album "Greatest Hits"   # that album under every artist
  shelf delete --id 42
  shelf delete --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			var scope catalog.Scope
			switch {
			case all:
				scope = catalog.AllTracks()
			case flags.Changed("id"):
				scope = catalog.ByID(id)
			case flags.Changed("artist") && flags.Changed("album"):
				scope = catalog.ByArtistAlbum(artist, album)
			case flags.Changed("artist"):
				scope = catalog.ByArtist(artist)
			case flags.Changed("album"):
				scope = catalog.ByAlbum(album)
			default:
				return errors.New("choose what to delete: --all, --artist, --album or --id")
			}

			return a.withSession(func(s *session) error {
				n, err := s.seq.Delete(scope)
				if err != nil {
					return a.absorb(errmsg.OpCatalogDelete, err)
				}
				fmt.Fprintf(a.out, "Deleted %s %s\n", humanize.Comma(n), plural(n, "track"))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "delete every track")
	cmd.Flags().StringVar(&artist, "artist", "", "artist to delete")
	cmd.Flags().StringVar(&album, "album", "", "album to delete")
	cmd.Flags().Int64Var(&id, "id", 0, "track id to delete")
	cmd.MarkFlagsMutuallyExclusive("all", "id", "artist")
	cmd.MarkFlagsMutuallyExclusive("all", "id", "album")
	return cmd
}

func plural(n int64, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
