package manager

import (
	"github.com/kasuboski/streamportal/pkg/availability"
	"github.com/kasuboski/streamportal/pkg/tmdb"
)

const (
	// MovieSearchPages and SeriesSearchPages are the catalog pages fetched per search
	MovieSearchPages  = 5
	SeriesSearchPages = 3
)

// MediaManager answers searches against the catalog and enriches details with mirror availability
type MediaManager struct {
	tmdb         tmdb.ITmdb
	availability availability.Checker
}

func New(tmdbClient tmdb.ITmdb, checker availability.Checker) MediaManager {
	return MediaManager{
		tmdb:         tmdbClient,
		availability: checker,
	}
}
