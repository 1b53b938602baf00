// Package importer discovers music files and inserts one catalog row per
// file, tolerating unreadable tags.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/tags"
)

// ErrNoFiles is returned by Discover when no music file was found.
var ErrNoFiles = errors.New("no music files found")

// Inserter is the catalog write used by the importer.
type Inserter interface {
	Insert(t catalog.Track) (int64, error)
}

// LengthReader is implemented by tag readers that can also report the
// stream length.
type LengthReader interface {
	Length(path string) (time.Duration, error)
}

// Progress reports one processed file.
type Progress struct {
	Current int // 1-based
	Total   int
	Path    string
	ID      int64 // 0 when the insert failed
	Err     error // tag or insert failure; the batch continues
}

// Result summarises a run.
type Result struct {
	Imported int
	Untagged int // imported with empty metadata
	Failed   int
}

// Importer inserts files into the catalog.
type Importer struct {
	store  Inserter
	reader tags.Reader
	log    zerolog.Logger
}

// New returns an importer writing to store. A nil reader reads the files.
func New(store Inserter, reader tags.Reader, log zerolog.Logger) *Importer {
	if reader == nil {
		reader = tags.FileReader{}
	}
	return &Importer{
		store:  store,
		reader: reader,
		log:    log.With().Str("component", "importer").Logger(),
	}
}

// Discover expands paths into a sorted, de-duplicated list of music files.
// Directories are walked recursively; unreadable entries below a root are
// skipped. A root that cannot be stat'ed is an error.
func Discover(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", root, err)
		}
		if !info.IsDir() {
			if tags.IsMusicFile(root) {
				files = append(files, filepath.Clean(root))
			}
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if !d.IsDir() && tags.IsMusicFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// Run imports files in order. Each file yields one Progress on progress,
// which is closed when Run returns; a nil channel disables reporting.
//
// A file whose tags cannot be read is inserted with empty metadata and its
// base name as title. Cancelling ctx stops before the next file; rows
// already inserted stay committed and ctx.Err() is returned.
func (im *Importer) Run(ctx context.Context, files []string, progress chan<- Progress) (Result, error) {
	if progress != nil {
		defer close(progress)
	}

	var res Result
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			im.log.Info().Int("done", i).Int("total", len(files)).Msg("import cancelled")
			return res, err
		}

		p := Progress{Current: i + 1, Total: len(files), Path: path}
		track, tagErr := im.track(path)
		if tagErr != nil {
			res.Untagged++
			p.Err = tagErr
			im.log.Warn().Err(tagErr).Str("path", path).Msg("tags unreadable, importing untagged")
		}

		id, err := im.store.Insert(track)
		p.ID = id
		if err != nil {
			res.Failed++
			p.Err = err
			im.log.Warn().Err(err).Str("path", path).Msg("insert failed")
		} else {
			res.Imported++
		}

		if progress != nil {
			select {
			case progress <- p:
			case <-ctx.Done():
			}
		}
	}

	im.log.Info().
		Int("imported", res.Imported).
		Int("untagged", res.Untagged).
		Int("failed", res.Failed).
		Msg("import finished")
	return res, nil
}

// track builds the catalog row for path. The returned error is the tag
// failure, if any; the row is usable either way.
func (im *Importer) track(path string) (catalog.Track, error) {
	t, err := im.reader.Read(path)
	if err != nil || t == nil {
		if err == nil {
			err = fmt.Errorf("no tags in %s", path)
		}
		return catalog.Track{Title: filepath.Base(path), Path: path}, err
	}

	track := catalog.Track{
		Artist:      t.Artist,
		Album:       t.Album,
		Year:        t.Year(),
		TrackNumber: t.TrackNumber,
		Title:       t.Title,
		Path:        path,
	}
	if track.Title == "" {
		track.Title = filepath.Base(path)
	}
	if lr, ok := im.reader.(LengthReader); ok {
		if length, err := lr.Length(path); err == nil {
			track.Length = length
		} else {
			im.log.Debug().Err(err).Str("path", path).Msg("length unavailable")
		}
	}
	return track, nil
}
