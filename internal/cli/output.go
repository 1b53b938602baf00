package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/shelf/internal/catalog"
)

// table is a tab-aligned writer with an optional header row.
type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, headers ...string) *table {
	t := &table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	if len(headers) > 0 {
		t.row(headers...)
	}
	return t
}

func (t *table) row(cols ...string) {
	_, _ = fmt.Fprintln(t.w, strings.Join(cols, "\t"))
}

func (t *table) flush() {
	_ = t.w.Flush()
}

// displayName shows the empty group of untagged tracks.
func displayName(name string) string {
	if name == "" {
		return "(unknown)"
	}
	return name
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "--:--"
	}
	d = d.Round(time.Second)
	m := int(d / time.Minute)
	s := int(d % time.Minute / time.Second)
	if m >= 60 {
		return fmt.Sprintf("%d:%02d:%02d", m/60, m%60, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func formatPlays(n int) string {
	if n == 1 {
		return "1 play"
	}
	return humanize.Comma(int64(n)) + " plays"
}

func formatTrack(t *catalog.Track) string {
	return fmt.Sprintf("%s - %s [%s] (%s)", displayName(t.Artist), t.Title, displayName(t.Album), formatDuration(t.Length))
}
