package cli

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/shelf/internal/browse"
	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/playback"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the playback session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.withSession(func(s *session) error {
				count, err := s.store.Count()
				if err != nil {
					return err
				}
				seq := s.seq
				a.printNowPlaying(seq)
				a.printSelection(seq)

				t := newTable(a.out)
				t.row("Catalog", humanize.Comma(int64(count))+" "+plural(int64(count), "track"))
				t.row("Shuffle", onOff(seq.Shuffle()))
				t.row("Queue", strconv.Itoa(len(seq.QueueEntries())))
				t.row("History", strconv.Itoa(seq.HistoryLen()))
				t.flush()
				return nil
			})
		},
	}
}

func (a *app) printNowPlaying(seq *playback.Sequencer) {
	cur := seq.Current()
	if cur == nil {
		fmt.Fprintf(a.out, "%s\n", seq.State())
		return
	}
	line := fmt.Sprintf("%s: %s", seq.State(), formatTrack(cur))
	if seq.State().IsActive() && seq.Tick() > 0 {
		line += " at " + formatDuration(seq.Tick())
	}
	fmt.Fprintln(a.out, line)
}

func (a *app) printSelection(seq *playback.Sequencer) {
	c := seq.Cursor()
	sel := c.Selection()
	title := "-"
	if rows := c.Titles(); sel.TitleIndex >= 0 && sel.TitleIndex < len(rows) {
		title = rows[sel.TitleIndex].Title
		if seq.Queued(sel.TrackID) {
			title += " (queued)"
		}
	}
	fmt.Fprintf(a.out, "Selected: %s / %s / %s\n", filterName(sel.Artist), albumName(sel), title)
}

func filterName(f catalog.Filter) string {
	if f.All {
		return catalog.AllLabel
	}
	return displayName(f.Name)
}

func albumName(p browse.Position) string {
	if p.AlbumIndex == 0 {
		return catalog.AllLabel
	}
	return filterName(p.Album)
}
