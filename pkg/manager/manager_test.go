package manager

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/kasuboski/streamportal/pkg/availability"
	availabilityMocks "github.com/kasuboski/streamportal/pkg/availability/mocks"
	"github.com/kasuboski/streamportal/pkg/tmdb"
	tmdbMocks "github.com/kasuboski/streamportal/pkg/tmdb/mocks"
	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func TestMediaManager_SearchMovies(t *testing.T) {
	t.Run("pages are merged in order and a failed page is skipped", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)

		tmdbMock := tmdbMocks.NewMockITmdb(ctrl)
		for page := 1; page <= MovieSearchPages; page++ {
			call := tmdbMock.EXPECT().SearchMovies(gomock.Any(), "inception", "en-US", page)
			if page == 2 {
				call.Return(nil, &tmdb.UpstreamError{StatusCode: 500})
				continue
			}
			call.Return(&tmdb.SearchMoviesResponse{
				Page: page,
				Results: []tmdb.MovieResult{
					{ID: page*100 + 1, OriginalTitle: "first", PosterPath: nullable.NewNullableWithValue("/a.jpg")},
					{ID: page*100 + 2, OriginalTitle: "second"},
				},
			}, nil)
		}

		m := New(tmdbMock, nil)
		got, err := m.SearchMovies(ctx, "inception", "en-US")
		require.NoError(t, err)

		ids := make([]int, 0, len(got))
		for _, r := range got {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []int{101, 102, 301, 302, 401, 402, 501, 502}, ids)
		assert.Equal(t, "https://image.tmdb.org/t/p/w500/a.jpg", got[0].Poster)
		assert.Equal(t, MoviePosterPlaceholder, got[1].Poster)
	})

	t.Run("no results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tmdbMock := tmdbMocks.NewMockITmdb(ctrl)
		tmdbMock.EXPECT().SearchMovies(gomock.Any(), "zzzz", "en-US", gomock.Any()).Return(&tmdb.SearchMoviesResponse{}, nil).Times(MovieSearchPages)

		m := New(tmdbMock, nil)
		got, err := m.SearchMovies(context.Background(), "zzzz", "en-US")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestMediaManager_SearchSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmdbMock := tmdbMocks.NewMockITmdb(ctrl)

	tmdbMock.EXPECT().SearchSeries(gomock.Any(), "breaking", "it-IT", 1).Return(&tmdb.SearchSeriesResponse{
		Results: []tmdb.SeriesResult{{
			ID:           1396,
			OriginalName: "Breaking Bad",
			FirstAirDate: nullable.NewNullableWithValue("2008-01-20"),
			Overview:     nullable.NewNullableWithValue("A chemist turns to crime."),
			VoteAverage:  ptr(float32(8.9)),
			PosterPath:   nullable.NewNullableWithValue("/bb.jpg"),
		}},
	}, nil)
	tmdbMock.EXPECT().SearchSeries(gomock.Any(), "breaking", "it-IT", 2).Return(&tmdb.SearchSeriesResponse{
		Results: []tmdb.SeriesResult{{ID: 2, OriginalName: "Breaking Point", PosterPath: nullable.NewNullNullable[string]()}},
	}, nil)
	tmdbMock.EXPECT().SearchSeries(gomock.Any(), "breaking", "it-IT", 3).Return(nil, errors.New("timeout"))

	m := New(tmdbMock, nil)
	got, err := m.SearchSeries(context.Background(), "breaking", "it-IT")
	require.NoError(t, err)

	assert.Equal(t, []SeriesSummary{
		{
			ID:       1396,
			Name:     "Breaking Bad",
			AirDate:  "2008-01-20",
			VoteAvg:  8.9,
			Overview: "A chemist turns to crime.",
			Poster:   "https://image.tmdb.org/t/p/w500/bb.jpg",
		},
		{
			ID:       2,
			Name:     "Breaking Point",
			AirDate:  "N/A",
			Overview: "No overview available.",
			Poster:   SeriesPosterPlaceholder,
		},
	}, got)
}

func TestMediaManager_GetMovieDetails(t *testing.T) {
	details := &tmdb.MediaDetails{
		ID:            27205,
		OriginalTitle: ptr("Inception"),
		Overview:      ptr("Dreams within dreams."),
		ReleaseDate:   ptr("2010-07-15"),
		Runtime:       ptr(148),
		VoteAverage:   ptr(float32(8.4)),
		VoteCount:     ptr(35000),
		Genres:        []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		PosterPath:    nullable.NewNullableWithValue("/inception.jpg"),
		BackdropPath:  nullable.NewNullableWithValue("/backdrop.jpg"),
		Budget:        ptr(int64(160000000)),
		Revenue:       ptr(int64(825532764)),
		Status:        ptr("Released"),
	}

	t.Run("available", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)

		tmdbMock := tmdbMocks.NewMockITmdb(ctrl)
		tmdbMock.EXPECT().GetMovieDetails(gomock.Any(), 27205, "en-US").Return(details, nil)

		checker := availabilityMocks.NewMockChecker(ctrl)
		checker.EXPECT().Movie(gomock.Any(), 27205).Return(availability.MovieAvailability{
			IsAvailable: true,
			URL:         ptr("https://vixsrc.to/movie/27205"),
		})

		m := New(tmdbMock, checker)
		got, err := m.GetMovieDetails(ctx, 27205, "en-US")
		require.NoError(t, err)

		assert.True(t, got.IsAvailable)
		require.NotNil(t, got.URL)
		assert.Equal(t, "https://vixsrc.to/movie/27205", *got.URL)
		assert.Equal(t, []string{"Action", "Science Fiction"}, got.Genres)
		require.NotNil(t, got.BackdropPath)
		assert.Equal(t, "https://image.tmdb.org/t/p/original/backdrop.jpg", *got.BackdropPath)

		b, err := json.Marshal(got)
		require.NoError(t, err)
		snaps.MatchJSON(t, b)
	})

	t.Run("not available", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		tmdbMock := tmdbMocks.NewMockITmdb(ctrl)
		tmdbMock.EXPECT().GetMovieDetails(gomock.Any(), 27205, "en-US").Return(&tmdb.MediaDetails{ID: 27205}, nil)

		checker := availabilityMocks.NewMockChecker(ctrl)
		checker.EXPECT().Movie(gomock.Any(), 27205).Return(availability.MovieAvailability{})

		m := New(tmdbMock, checker)
		got, err := m.GetMovieDetails(context.Background(), 27205, "en-US")
		require.NoError(t, err)

		assert.False(t, got.IsAvailable)
		assert.Nil(t, got.URL)
		assert.Nil(t, got.BackdropPath)
		assert.Equal(t, MoviePosterPlaceholder, got.Poster)
		assert.Equal(t, "Unknown", got.Status)
		assert.Equal(t, []string{}, got.Genres)
	})

	t.Run("catalog not found skips availability", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		tmdbMock := tmdbMocks.NewMockITmdb(ctrl)
		tmdbMock.EXPECT().GetMovieDetails(gomock.Any(), 1, "en-US").Return(nil, tmdb.ErrNotFound)
		checker := availabilityMocks.NewMockChecker(ctrl)

		m := New(tmdbMock, checker)
		_, err := m.GetMovieDetails(context.Background(), 1, "en-US")
		assert.ErrorIs(t, err, tmdb.ErrNotFound)
	})
}

func TestMediaManager_GetSeriesDetails(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		tmdbMock := tmdbMocks.NewMockITmdb(ctrl)
		tmdbMock.EXPECT().GetSeriesDetails(gomock.Any(), 1396, "en-US").Return(&tmdb.SeriesDetails{
			ID:               1396,
			OriginalName:     ptr("Breaking Bad"),
			Overview:         nullable.NewNullableWithValue("A chemist turns to crime."),
			FirstAirDate:     nullable.NewNullableWithValue("2008-01-20"),
			LastAirDate:      nullable.NewNullableWithValue("2013-09-29"),
			NumberOfSeasons:  ptr(12),
			NumberOfEpisodes: ptr(62),
			Genres:           []tmdb.Genre{{ID: 18, Name: "Drama"}},
			PosterPath:       nullable.NewNullableWithValue("/bb.jpg"),
			Status:           ptr("Ended"),
			Popularity:       ptr(float32(300.5)),
			VoteAverage:      ptr(float32(8.9)),
			VoteCount:        ptr(15000),
		}, nil)

		checker := availabilityMocks.NewMockChecker(ctrl)
		checker.EXPECT().Series(gomock.Any(), 1396, 12).Return(availability.SeriesAvailability{
			ValidSeasons:     []int{1, 3},
			EpisodesBySeason: map[int][]int{1: {1, 2, 3}, 3: {1, 2}},
			StreamingURLs: []string{
				"https://vixsrc.to/tv/1396/1/1",
				"https://vixsrc.to/tv/1396/1/2",
				"https://vixsrc.to/tv/1396/1/3",
				"https://vixsrc.to/tv/1396/3/1",
				"https://vixsrc.to/tv/1396/3/2",
			},
		})

		m := New(tmdbMock, checker)
		got, err := m.GetSeriesDetails(context.Background(), 1396, "en-US")
		require.NoError(t, err)

		assert.True(t, got.IsAvailable)
		assert.Equal(t, []int{1, 3}, got.ValidSeasons)
		assert.Len(t, got.StreamingURLs, 5)
		assert.Equal(t, 12, got.NumberOfSeasons)
		assert.Nil(t, got.BackdropPath)

		b, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"valid_episodes":{"1":[1,2,3],"3":[1,2]}`)
		snaps.MatchJSON(t, b)
	})

	t.Run("unavailable series keeps empty lists", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		tmdbMock := tmdbMocks.NewMockITmdb(ctrl)
		tmdbMock.EXPECT().GetSeriesDetails(gomock.Any(), 5, "en-US").Return(&tmdb.SeriesDetails{ID: 5}, nil)

		checker := availabilityMocks.NewMockChecker(ctrl)
		checker.EXPECT().Series(gomock.Any(), 5, 0).Return(availability.EmptySeries())

		m := New(tmdbMock, checker)
		got, err := m.GetSeriesDetails(context.Background(), 5, "en-US")
		require.NoError(t, err)

		assert.False(t, got.IsAvailable)
		assert.Equal(t, "N/A", got.AirDate)
		assert.Equal(t, "Unknown", got.FirstAirDate)
		assert.Equal(t, "Unknown", got.Status)

		b, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"valid_seasons":[]`)
		assert.Contains(t, string(b), `"valid_episodes":{}`)
		assert.Contains(t, string(b), `"streaming_urls":[]`)
	})

	t.Run("catalog failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		tmdbMock := tmdbMocks.NewMockITmdb(ctrl)
		tmdbMock.EXPECT().GetSeriesDetails(gomock.Any(), 5, "en-US").Return(nil, &tmdb.UpstreamError{StatusCode: 502})

		m := New(tmdbMock, availabilityMocks.NewMockChecker(ctrl))
		_, err := m.GetSeriesDetails(context.Background(), 5, "en-US")

		var upstream *tmdb.UpstreamError
		require.True(t, errors.As(err, &upstream))
		assert.Equal(t, 502, upstream.StatusCode)
	})
}
