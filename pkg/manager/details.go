package manager

import (
	"context"

	"github.com/kasuboski/streamportal/pkg/availability"
	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/kasuboski/streamportal/pkg/tmdb"
	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"
)

// GetMovieDetails fetches the catalog record of a movie and checks whether the mirror serves it.
// Catalog errors are returned as is, availability problems only make the movie unavailable.
func (m MediaManager) GetMovieDetails(ctx context.Context, id int, lang string) (*MovieDetails, error) {
	log := logger.FromCtx(ctx, "movie_id", id, "language", lang)

	det, err := m.tmdb.GetMovieDetails(ctx, id, lang)
	if err != nil {
		log.Errorw("failed to fetch movie details", zap.Error(err))
		return nil, err
	}

	avail := m.availability.Movie(ctx, id)
	result := FromMediaDetails(*det, avail)

	log.Infow("movie details retrieved",
		"title", result.OriginalTitle,
		"is_available", result.IsAvailable,
		"genres_count", len(result.Genres),
	)
	return &result, nil
}

// GetSeriesDetails fetches the catalog record of a series and resolves the seasons and episodes the mirror serves
func (m MediaManager) GetSeriesDetails(ctx context.Context, id int, lang string) (*SeriesDetails, error) {
	log := logger.FromCtx(ctx, "series_id", id, "language", lang)

	det, err := m.tmdb.GetSeriesDetails(ctx, id, lang)
	if err != nil {
		log.Errorw("failed to fetch series details", zap.Error(err))
		return nil, err
	}

	avail := m.availability.Series(ctx, id, deref(det.NumberOfSeasons))
	result := FromSeriesDetails(*det, avail)

	log.Infow("series details retrieved",
		"name", result.Name,
		"is_available", result.IsAvailable,
		"seasons_count", len(result.ValidSeasons),
		"episodes_count", len(result.StreamingURLs),
	)
	return &result, nil
}

// FromMediaDetails shapes a catalog movie record
func FromMediaDetails(det tmdb.MediaDetails, avail availability.MovieAvailability) MovieDetails {
	result := MovieDetails{
		ID:            det.ID,
		IsAvailable:   avail.IsAvailable,
		OriginalTitle: deref(det.OriginalTitle),
		Overview:      deref(det.Overview),
		ReleaseDate:   deref(det.ReleaseDate),
		VoteAverage:   deref(det.VoteAverage),
		VoteCount:     deref(det.VoteCount),
		Runtime:       deref(det.Runtime),
		Genres:        genreNames(det.Genres),
		Poster:        posterURL(tmdb.Value(det.PosterPath), MoviePosterPlaceholder),
		BackdropPath:  backdropURL(tmdb.Value(det.BackdropPath)),
		Budget:        deref(det.Budget),
		Revenue:       deref(det.Revenue),
		Status:        unknown,
	}
	if det.Status != nil {
		result.Status = *det.Status
	}
	if avail.IsAvailable {
		result.URL = avail.URL
	}
	return result
}

// FromSeriesDetails shapes a catalog series record
func FromSeriesDetails(det tmdb.SeriesDetails, avail availability.SeriesAvailability) SeriesDetails {
	result := SeriesDetails{
		ID:               det.ID,
		Name:             deref(det.OriginalName),
		AirDate:          orDefault(det.FirstAirDate, notAvailable),
		VoteAvg:          deref(det.VoteAverage),
		Overview:         orDefault(det.Overview, noOverviewPlaceholder),
		Poster:           posterURL(tmdb.Value(det.PosterPath), SeriesPosterPlaceholder),
		IsAvailable:      avail.IsAvailable(),
		ValidSeasons:     avail.ValidSeasons,
		ValidEpisodes:    avail.EpisodesBySeason,
		StreamingURLs:    avail.StreamingURLs,
		NumberOfSeasons:  deref(det.NumberOfSeasons),
		NumberOfEpisodes: deref(det.NumberOfEpisodes),
		Status:           unknown,
		Genres:           genreNames(det.Genres),
		BackdropPath:     backdropURL(tmdb.Value(det.BackdropPath)),
		FirstAirDate:     orDefault(det.FirstAirDate, unknown),
		LastAirDate:      orDefault(det.LastAirDate, unknown),
		VoteCount:        deref(det.VoteCount),
		Popularity:       deref(det.Popularity),
	}
	if det.Status != nil {
		result.Status = *det.Status
	}

	// the json payload always carries lists, never null
	if result.ValidSeasons == nil {
		result.ValidSeasons = []int{}
	}
	if result.ValidEpisodes == nil {
		result.ValidEpisodes = map[int][]int{}
	}
	if result.StreamingURLs == nil {
		result.StreamingURLs = []string{}
	}
	return result
}

func posterURL(path, placeholder string) string {
	if path == "" {
		return placeholder
	}
	return posterBaseURL + path
}

func backdropURL(path string) *string {
	if path == "" {
		return nil
	}
	u := backdropBaseURL + path
	return &u
}

func genreNames(genres []tmdb.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

// orDefault returns the catalog value, or def when the field was absent or null
func orDefault(n nullable.Nullable[string], def string) string {
	v, err := n.Get()
	if err != nil {
		return def
	}
	return v
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
