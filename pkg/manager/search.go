package manager

import (
	"context"

	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/kasuboski/streamportal/pkg/tmdb"
)

// SearchMovies returns the movies matching query across the first MovieSearchPages catalog pages.
// Pages that fail are skipped so the result may be partial.
func (m MediaManager) SearchMovies(ctx context.Context, query, lang string) ([]MovieSummary, error) {
	log := logger.FromCtx(ctx, "search_query", query, "language", lang)
	log.Infow("starting movie search")

	movies := paginate(ctx, MovieSearchPages, func(ctx context.Context, page int) ([]MovieSummary, error) {
		res, err := m.tmdb.SearchMovies(ctx, query, lang, page)
		if err != nil {
			return nil, err
		}

		out := make([]MovieSummary, 0, len(res.Results))
		for _, r := range res.Results {
			out = append(out, FromMovieResult(r))
		}
		return out, nil
	})

	log.Infow("movie search completed", "total_movies", len(movies))
	return movies, nil
}

// SearchSeries returns the series matching query across the first SeriesSearchPages catalog pages.
// Pages that fail are skipped so the result may be partial.
func (m MediaManager) SearchSeries(ctx context.Context, query, lang string) ([]SeriesSummary, error) {
	log := logger.FromCtx(ctx, "search_query", query, "language", lang)
	log.Infow("starting series search")

	series := paginate(ctx, SeriesSearchPages, func(ctx context.Context, page int) ([]SeriesSummary, error) {
		res, err := m.tmdb.SearchSeries(ctx, query, lang, page)
		if err != nil {
			return nil, err
		}

		out := make([]SeriesSummary, 0, len(res.Results))
		for _, r := range res.Results {
			out = append(out, FromSeriesResult(r))
		}
		return out, nil
	})

	log.Infow("series search completed", "total_series", len(series))
	return series, nil
}

// FromMovieResult shapes a catalog movie hit
func FromMovieResult(r tmdb.MovieResult) MovieSummary {
	return MovieSummary{
		ID:            r.ID,
		OriginalTitle: r.OriginalTitle,
		Overview:      r.Overview,
		ReleaseDate:   r.ReleaseDate,
		VoteAverage:   r.VoteAverage,
		Poster:        posterURL(tmdb.Value(r.PosterPath), MoviePosterPlaceholder),
	}
}

// FromSeriesResult shapes a catalog series hit
func FromSeriesResult(r tmdb.SeriesResult) SeriesSummary {
	return SeriesSummary{
		ID:       r.ID,
		Name:     r.OriginalName,
		AirDate:  orDefault(r.FirstAirDate, notAvailable),
		VoteAvg:  deref(r.VoteAverage),
		Overview: orDefault(r.Overview, noOverviewPlaceholder),
		Poster:   posterURL(tmdb.Value(r.PosterPath), SeriesPosterPlaceholder),
	}
}
