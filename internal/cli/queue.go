package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/playback"
)

func newQueueCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Show and edit the play queue",
		Long: `Show the play queue. Queued tracks play before shuffle or ordered
traversal, head first. Rows count from 1.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.withSession(func(s *session) error {
				a.printQueue(s.seq)
				return nil
			})
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle [id]",
		Short: "Queue a track, or dequeue it if already queued (default: the selected title)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.withSession(func(s *session) error {
				var (
					queued bool
					err    error
				)
				if len(args) == 1 {
					id, perr := strconv.ParseInt(args[0], 10, 64)
					if perr != nil {
						return fmt.Errorf("invalid track id %q", args[0])
					}
					queued, err = s.seq.ToggleQueueID(id)
				} else {
					queued, err = s.seq.ToggleQueue()
				}
				if err != nil {
					return a.absorb(errmsg.OpQueueToggle, err)
				}
				if queued {
					fmt.Fprintln(a.out, "Queued")
				} else {
					fmt.Fprintln(a.out, "Dequeued")
				}
				a.printQueue(s.seq)
				return nil
			})
		},
	}

	cmd.AddCommand(
		toggle,
		queueEditCmd(a, "top", "Move a row to the head of the queue", playback.EditTop),
		queueEditCmd(a, "up", "Move a row one place towards the head", playback.EditUp),
		queueEditCmd(a, "down", "Move a row one place towards the tail", playback.EditDown),
		queueEditCmd(a, "bottom", "Move a row to the tail of the queue", playback.EditBottom),
		queueEditCmd(a, "remove", "Remove a row from the queue", playback.EditRemove),
	)
	return cmd
}

func queueEditCmd(a *app, use, short string, op playback.EditOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <row>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row %q", args[0])
			}
			return a.withSession(func(s *session) error {
				if _, err := s.seq.EditQueue(op, row-1); err != nil {
					return a.absorb(errmsg.OpQueueEdit, err)
				}
				a.printQueue(s.seq)
				return nil
			})
		},
	}
}

func (a *app) printQueue(seq *playback.Sequencer) {
	entries := seq.QueueEntries()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Queue is empty")
		return
	}
	t := newTable(a.out, "ROW", "ID", "TRACK")
	for i, e := range entries {
		t.row(strconv.Itoa(i+1), strconv.FormatInt(e.ID, 10), e.Label)
	}
	t.flush()
}
