package playback

import (
	"time"

	"github.com/llehouerou/shelf/internal/browse"
	"github.com/llehouerou/shelf/internal/catalog"
)

// Catalog is the store surface the sequencer drives.
type Catalog interface {
	browse.Source
	Count() (int, error)
	TrackAtOffset(offset int) (int64, error)
	Exists(id int64) (bool, error)
	Delete(scope catalog.Scope) (int64, error)
	IncrementPlayCount(id int64) error
	SetLength(id int64, length time.Duration) error
}

var _ Catalog = (*catalog.Store)(nil)
