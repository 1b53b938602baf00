package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/playback"
)

// opAnnotation records the errmsg.Op a transport command reports under.
const opAnnotation = "op"

// sessionCmd builds a command that runs fn on the restored session and
// prints the resulting playback line.
func sessionCmd(a *app, use, short string, op errmsg.Op, fn func(seq *playback.Sequencer) error) *cobra.Command {
	return &cobra.Command{
		Use:         use,
		Short:       short,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{opAnnotation: string(op)},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.withSession(func(s *session) error {
				if err := a.absorb(op, fn(s.seq)); err != nil {
					return err
				}
				a.printNowPlaying(s.seq)
				return nil
			})
		},
	}
}

func newPlayCmd(a *app) *cobra.Command {
	return sessionCmd(a, "play", "Resume, or play the selected title", errmsg.OpPlaybackStart,
		func(seq *playback.Sequencer) error { return seq.Play() })
}

func newPauseCmd(a *app) *cobra.Command {
	return sessionCmd(a, "pause", "Pause playback", errmsg.OpPlaybackPause,
		func(seq *playback.Sequencer) error {
			seq.Pause()
			return nil
		})
}

func newNextCmd(a *app) *cobra.Command {
	return sessionCmd(a, "next", "Skip to the next track", errmsg.OpPlaybackAdvance,
		func(seq *playback.Sequencer) error { return seq.Advance(true) })
}

func newPrevCmd(a *app) *cobra.Command {
	return sessionCmd(a, "prev", "Go back to the previous track", errmsg.OpPlaybackPrevious,
		func(seq *playback.Sequencer) error { return seq.Previous() })
}

func newStopCmd(a *app) *cobra.Command {
	return sessionCmd(a, "stop", "Stop playback", errmsg.OpPlaybackStop,
		func(seq *playback.Sequencer) error {
			seq.Stop()
			return nil
		})
}

func newShuffleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "shuffle [on|off|toggle]",
		Short:     "Show or change shuffle mode",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(_ *cobra.Command, args []string) error {
			return a.withSession(func(s *session) error {
				if len(args) == 1 {
					switch strings.ToLower(args[0]) {
					case "on":
						s.seq.SetShuffle(true)
					case "off":
						s.seq.SetShuffle(false)
					case "toggle":
						s.seq.ToggleShuffle()
					default:
						return fmt.Errorf("unknown shuffle mode %q (want on, off or toggle)", args[0])
					}
				}
				fmt.Fprintf(a.out, "Shuffle: %s\n", onOff(s.seq.Shuffle()))
				return nil
			})
		},
	}
}

func newSelectCmd(a *app) *cobra.Command {
	var artist, album string
	var title int
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select an artist, album and title in the browser",
		Long: `Select by name in the artist and album lists, and by row in the title list.
An omitted artist or album selects "All".

Examples:
  shelf select --artist "Nick Drake" --album "Pink Moon" --title 2
  shelf select --album "Pink Moon"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			return a.withSession(func(s *session) error {
				c := s.seq.Cursor()

				artistIdx := 0
				if flags.Changed("artist") {
					artistIdx = indexOfName(c.Artists(), artist)
					if artistIdx == 0 {
						fmt.Fprintln(a.err, errmsg.FormatWith(errmsg.OpSelect, artist, fmt.Errorf("no such artist")))
						return nil
					}
				}
				if err := c.SelectArtist(artistIdx); err != nil {
					return a.absorb(errmsg.OpSelect, err)
				}

				if flags.Changed("album") {
					names := make([]string, len(c.Albums()))
					for i, al := range c.Albums() {
						names[i] = al.Name
					}
					albumIdx := indexOfName(names, album)
					if albumIdx == 0 {
						fmt.Fprintln(a.err, errmsg.FormatWith(errmsg.OpSelect, album, fmt.Errorf("no such album")))
						return nil
					}
					if err := c.SelectAlbum(albumIdx); err != nil {
						return a.absorb(errmsg.OpSelect, err)
					}
				}

				if flags.Changed("title") {
					if err := c.SelectTitle(title); err != nil {
						return a.absorb(errmsg.OpSelect, err)
					}
				}

				a.printSelection(s.seq)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&artist, "artist", "", "artist name")
	cmd.Flags().StringVar(&album, "album", "", "album name")
	cmd.Flags().IntVar(&title, "title", 0, "title row (from 0)")
	return cmd
}

// indexOfName returns the display index (1-based) of name, or 0. Exact
// matches win over case-insensitive ones.
func indexOfName(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i + 1
		}
	}
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i + 1
		}
	}
	return 0
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
