package tmdb_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/kasuboski/streamportal/pkg/tmdb"
	"github.com/kasuboski/streamportal/pkg/tmdb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestTMDBClient_GetMovieDetails(t *testing.T) {
	t.Run("retries a server error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		low := mocks.NewMockClientInterface(ctrl)

		first := low.EXPECT().MovieDetails(gomock.Any(), int32(27205), gomock.Any()).
			Return(jsonResponse(http.StatusServiceUnavailable, ""), nil)
		second := low.EXPECT().MovieDetails(gomock.Any(), int32(27205), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int32, params *tmdb.MovieDetailsParams, _ ...tmdb.RequestEditorFn) (*http.Response, error) {
				require.NotNil(t, params.Language)
				assert.Equal(t, "fr-FR", *params.Language)
				return jsonResponse(http.StatusOK, `{"id":27205,"original_title":"Inception","runtime":148}`), nil
			})
		gomock.InOrder(first, second)

		c, err := tmdb.New("https://catalog.invalid", "test-api-key-1234567890",
			tmdb.WithClientInterface(low),
			tmdb.WithDetailsRetry(2, 0),
		)
		require.NoError(t, err)

		det, err := c.GetMovieDetails(context.Background(), 27205, "fr-FR")
		require.NoError(t, err)
		assert.Equal(t, 27205, det.ID)
		require.NotNil(t, det.Runtime)
		assert.Equal(t, 148, *det.Runtime)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		low := mocks.NewMockClientInterface(ctrl)
		low.EXPECT().MovieDetails(gomock.Any(), int32(1), gomock.Any()).
			Return(jsonResponse(http.StatusNotFound, `{"status_message":"not found"}`), nil).Times(1)

		c, err := tmdb.New("https://catalog.invalid", "test-api-key-1234567890",
			tmdb.WithClientInterface(low),
			tmdb.WithDetailsRetry(3, 0),
		)
		require.NoError(t, err)

		_, err = c.GetMovieDetails(context.Background(), 1, "en-US")
		assert.True(t, errors.Is(err, tmdb.ErrNotFound))
	})

	t.Run("id wider than the catalog never reaches it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		low := mocks.NewMockClientInterface(ctrl)

		c, err := tmdb.New("https://catalog.invalid", "test-api-key-1234567890", tmdb.WithClientInterface(low))
		require.NoError(t, err)

		_, err = c.GetMovieDetails(context.Background(), 4294967297, "en-US")
		assert.ErrorIs(t, err, tmdb.ErrInvalidID)
	})
}
