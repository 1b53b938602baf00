package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/importer"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import [paths...]",
		Short: "Import music files into the catalog",
		Long: `Import music files or directories into the catalog. Without arguments the
configured library_sources are imported. Ctrl-C stops after the current file;
what was imported so far is kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = a.cfg.LibrarySources
			}
			if len(paths) == 0 {
				return errors.New("nothing to import: pass paths or set library_sources")
			}

			files, err := importer.Discover(paths)
			if err != nil {
				a.report(errmsg.OpImportDiscover, err)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return a.withSession(func(s *session) error {
				return a.runImport(ctx, s, files)
			})
		},
	}
}

func (a *app) runImport(ctx context.Context, s *session, files []string) error {
	progress := make(chan importer.Progress)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range progress {
			if p.Err != nil {
				fmt.Fprintf(a.err, "%s\n", errmsg.FormatWith(errmsg.OpImportFile, p.Path, p.Err))
			}
			if a.verbose {
				fmt.Fprintf(a.out, "[%d/%d] %s\n", p.Current, p.Total, p.Path)
			}
		}
	}()

	res, err := s.seq.Import(ctx, files, progress)
	<-done

	fmt.Fprintf(a.out, "Imported %s of %s files", humanize.Comma(int64(res.Imported)), humanize.Comma(int64(len(files))))
	if res.Untagged > 0 {
		fmt.Fprintf(a.out, ", %s without tags", humanize.Comma(int64(res.Untagged)))
	}
	if res.Failed > 0 {
		fmt.Fprintf(a.out, ", %s failed", humanize.Comma(int64(res.Failed)))
	}
	fmt.Fprintln(a.out)

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(a.out, "Import cancelled")
		return nil
	}
	return a.absorb(errmsg.OpImportFile, err)
}
