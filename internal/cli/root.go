// Package cli is the shelf command-line host. Each invocation opens the
// catalog, replays the saved session into a sequencer, runs one command
// and saves the session again.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/shelf/internal/config"
	"github.com/llehouerou/shelf/internal/db"
)

// app carries what the commands share for one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
	log zerolog.Logger
	out io.Writer
	err io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "shelf",
		Short: "Browse a music catalog and sequence its playback",
		Long: `Shelf keeps a catalog of imported tracks, browsed by artist, album and
title, and sequences playback through a queue, shuffle or ordered traversal.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ~/.config/shelf/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newImportCmd(a),
		newArtistsCmd(a),
		newAlbumsCmd(a),
		newTitlesCmd(a),
		newInfoCmd(a),
		newFindCmd(a),
		newDeleteCmd(a),
		newPlayCmd(a),
		newPauseCmd(a),
		newNextCmd(a),
		newPrevCmd(a),
		newStopCmd(a),
		newShuffleCmd(a),
		newSelectCmd(a),
		newQueueCmd(a),
		newStatusCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	a.cfg = cfg
	a.out = cmd.OutOrStdout()
	a.err = cmd.ErrOrStderr()

	level := cfg.GetLogLevel()
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: a.err, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

// Execute runs the root command. An unavailable store exits 1, usage and
// configuration errors exit 2. Recoverable engine failures are reported by
// the commands and do not change the exit status.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, db.ErrStorageUnavailable) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
