package tmdb

import (
	"github.com/oapi-codegen/nullable"
)

// SearchMovieParams defines parameters for SearchMovie.
type SearchMovieParams struct {
	Query        string  `form:"query" json:"query"`
	IncludeAdult *bool   `form:"include_adult,omitempty" json:"include_adult,omitempty"`
	Language     *string `form:"language,omitempty" json:"language,omitempty"`
	Page         *int32  `form:"page,omitempty" json:"page,omitempty"`
}

// SearchTvParams defines parameters for SearchTv.
type SearchTvParams struct {
	Query        string  `form:"query" json:"query"`
	IncludeAdult *bool   `form:"include_adult,omitempty" json:"include_adult,omitempty"`
	Language     *string `form:"language,omitempty" json:"language,omitempty"`
	Page         *int32  `form:"page,omitempty" json:"page,omitempty"`
}

// MovieDetailsParams defines parameters for MovieDetails.
type MovieDetailsParams struct {
	Language *string `form:"language,omitempty" json:"language,omitempty"`
}

// TvSeriesDetailsParams defines parameters for TvSeriesDetails.
type TvSeriesDetailsParams struct {
	Language *string `form:"language,omitempty" json:"language,omitempty"`
}

// MovieResult is one entry of a movie search page
type MovieResult struct {
	ID               int                       `json:"id"`
	Adult            bool                      `json:"adult"`
	Title            string                    `json:"title"`
	OriginalTitle    string                    `json:"original_title"`
	OriginalLanguage string                    `json:"original_language"`
	Overview         string                    `json:"overview"`
	ReleaseDate      string                    `json:"release_date"`
	PosterPath       nullable.Nullable[string] `json:"poster_path,omitempty"`
	BackdropPath     nullable.Nullable[string] `json:"backdrop_path,omitempty"`
	GenreIds         []int                     `json:"genre_ids"`
	Popularity       float32                   `json:"popularity"`
	VoteAverage      float32                   `json:"vote_average"`
	VoteCount        int                       `json:"vote_count"`
}

// SeriesResult is one entry of a tv search page
type SeriesResult struct {
	ID               int                       `json:"id"`
	Name             string                    `json:"name"`
	OriginalName     string                    `json:"original_name"`
	OriginalLanguage string                    `json:"original_language"`
	Overview         nullable.Nullable[string] `json:"overview,omitempty"`
	FirstAirDate     nullable.Nullable[string] `json:"first_air_date,omitempty"`
	PosterPath       nullable.Nullable[string] `json:"poster_path,omitempty"`
	BackdropPath     nullable.Nullable[string] `json:"backdrop_path,omitempty"`
	OriginCountry    []string                  `json:"origin_country"`
	Popularity       float32                   `json:"popularity"`
	VoteAverage      *float32                  `json:"vote_average,omitempty"`
	VoteCount        int                       `json:"vote_count"`
}

// SearchMoviesResponse is a single page of movie search results
type SearchMoviesResponse struct {
	Page         int           `json:"page"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
	Results      []MovieResult `json:"results"`
}

// SearchSeriesResponse is a single page of tv search results
type SearchSeriesResponse struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
	Results      []SeriesResult `json:"results"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MediaDetails is the catalog record of a movie
type MediaDetails struct {
	ID            int                       `json:"id"`
	Adult         bool                      `json:"adult"`
	ImdbID        *string                   `json:"imdb_id,omitempty"`
	Title         *string                   `json:"title,omitempty"`
	OriginalTitle *string                   `json:"original_title,omitempty"`
	Overview      *string                   `json:"overview,omitempty"`
	ReleaseDate   *string                   `json:"release_date,omitempty"`
	Runtime       *int                      `json:"runtime,omitempty"`
	Genres        []Genre                   `json:"genres,omitempty"`
	PosterPath    nullable.Nullable[string] `json:"poster_path,omitempty"`
	BackdropPath  nullable.Nullable[string] `json:"backdrop_path,omitempty"`
	Budget        *int64                    `json:"budget,omitempty"`
	Revenue       *int64                    `json:"revenue,omitempty"`
	Status        *string                   `json:"status,omitempty"`
	Popularity    *float32                  `json:"popularity,omitempty"`
	VoteAverage   *float32                  `json:"vote_average,omitempty"`
	VoteCount     *int                      `json:"vote_count,omitempty"`
}

// SeriesDetails is the catalog record of a tv series
type SeriesDetails struct {
	ID               int                       `json:"id"`
	Name             *string                   `json:"name,omitempty"`
	OriginalName     *string                   `json:"original_name,omitempty"`
	Overview         nullable.Nullable[string] `json:"overview,omitempty"`
	FirstAirDate     nullable.Nullable[string] `json:"first_air_date,omitempty"`
	LastAirDate      nullable.Nullable[string] `json:"last_air_date,omitempty"`
	NumberOfSeasons  *int                      `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes *int                      `json:"number_of_episodes,omitempty"`
	Genres           []Genre                   `json:"genres,omitempty"`
	PosterPath       nullable.Nullable[string] `json:"poster_path,omitempty"`
	BackdropPath     nullable.Nullable[string] `json:"backdrop_path,omitempty"`
	Status           *string                   `json:"status,omitempty"`
	Popularity       *float32                  `json:"popularity,omitempty"`
	VoteAverage      *float32                  `json:"vote_average,omitempty"`
	VoteCount        *int                      `json:"vote_count,omitempty"`
}

// Value returns the value of n, or the zero value when n is unset or null
func Value[T any](n nullable.Nullable[T]) T {
	v, err := n.Get()
	if err != nil {
		var zero T
		return zero
	}
	return v
}
