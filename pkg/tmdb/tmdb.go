package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	mhttp "github.com/kasuboski/streamportal/pkg/http"
	"github.com/kasuboski/streamportal/pkg/logger"
	"go.uber.org/zap"
)

const (
	minAPIKeyLength = 10

	DefaultDetailsAttempts = 3
	DefaultDetailsDelay    = 250 * time.Millisecond
)

// ITmdb is the catalog client used by the media manager
type ITmdb interface {
	ClientInterface
	SearchMovies(ctx context.Context, query, language string, page int) (*SearchMoviesResponse, error)
	SearchSeries(ctx context.Context, query, language string, page int) (*SearchSeriesResponse, error)
	GetMovieDetails(ctx context.Context, tmdbID int, language string) (*MediaDetails, error)
	GetSeriesDetails(ctx context.Context, tmdbID int, language string) (*SeriesDetails, error)
}

type TMDBClient struct {
	ClientInterface
	attempts uint
	delay    time.Duration
}

type Option func(*options)

type options struct {
	httpClient  mhttp.HTTPClient
	client      ClientInterface
	maxRetries  int
	baseBackoff time.Duration
	attempts    uint
	delay       time.Duration
}

// WithDoer replaces the underlying http client. It is still wrapped by the 429 aware client.
func WithDoer(c mhttp.HTTPClient) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithClientInterface replaces the low level catalog client. The http and rate limit options are then ignored.
func WithClientInterface(c ClientInterface) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithRateLimitRetries configures how often a 429 answer is retried and the base backoff between tries
func WithRateLimitRetries(maxRetries int, baseBackoff time.Duration) Option {
	return func(o *options) {
		o.maxRetries = maxRetries
		o.baseBackoff = baseBackoff
	}
}

// WithDetailsRetry configures retries of details fetches that failed with a transient error
func WithDetailsRetry(attempts uint, delay time.Duration) Option {
	return func(o *options) {
		if attempts > 0 {
			o.attempts = attempts
		}
		if delay >= 0 {
			o.delay = delay
		}
	}
}

// ValidateAPIKey rejects keys that can not be a catalog read access token
func ValidateAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("%w: api key is not configured", ErrUnauthorized)
	}
	if len(apiKey) < minAPIKeyLength {
		return fmt.Errorf("%w: api key is invalid", ErrUnauthorized)
	}
	return nil
}

// New creates a catalog client for the server at url authenticating with apiKey
func New(url, apiKey string, opts ...Option) (*TMDBClient, error) {
	if err := ValidateAPIKey(apiKey); err != nil {
		return nil, err
	}

	o := options{
		httpClient: http.DefaultClient,
		attempts:   DefaultDetailsAttempts,
		delay:      DefaultDetailsDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	rateLimited := mhttp.NewRateLimitedHTTPClient(
		mhttp.WithHTTPClient(o.httpClient),
		mhttp.WithMaxRetries(o.maxRetries),
		mhttp.WithBaseBackoff(o.baseBackoff),
	)

	client := o.client
	if client == nil {
		var err error
		client, err = NewClient(url, WithHTTPClient(rateLimited), WithRequestEditorFn(SetRequestAPIKey(apiKey)))
		if err != nil {
			return nil, err
		}
	}

	return &TMDBClient{
		ClientInterface: client,
		attempts:        o.attempts,
		delay:           o.delay,
	}, nil
}

func SetRequestAPIKey(apiKey string) func(ctx context.Context, req *http.Request) error {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Add("Authorization", "Bearer "+apiKey)
		req.Header.Add("accept", "application/json")
		return nil
	}
}

// SearchMovies fetches a single page of movie search results
func (t *TMDBClient) SearchMovies(ctx context.Context, query, language string, page int) (*SearchMoviesResponse, error) {
	params := &SearchMovieParams{
		Query:        query,
		IncludeAdult: ptr(false),
		Language:     ptr(language),
		Page:         ptr(int32(page)),
	}

	res, err := t.SearchMovie(ctx, params)
	if err != nil {
		return nil, requestError(ctx, res, err)
	}
	defer res.Body.Close()

	result := new(SearchMoviesResponse)
	if err := decode(res, result); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchSeries fetches a single page of tv search results
func (t *TMDBClient) SearchSeries(ctx context.Context, query, language string, page int) (*SearchSeriesResponse, error) {
	params := &SearchTvParams{
		Query:        query,
		IncludeAdult: ptr(false),
		Language:     ptr(language),
		Page:         ptr(int32(page)),
	}

	res, err := t.SearchTv(ctx, params)
	if err != nil {
		return nil, requestError(ctx, res, err)
	}
	defer res.Body.Close()

	result := new(SearchSeriesResponse)
	if err := decode(res, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetMovieDetails fetches the catalog record of a movie, retrying transient failures
func (t *TMDBClient) GetMovieDetails(ctx context.Context, tmdbID int, language string) (*MediaDetails, error) {
	id, err := catalogID(tmdbID)
	if err != nil {
		return nil, err
	}

	return withRetry(ctx, t, "movie", tmdbID, func() (*MediaDetails, error) {
		res, err := t.MovieDetails(ctx, id, &MovieDetailsParams{Language: ptr(language)})
		if err != nil {
			return nil, requestError(ctx, res, err)
		}
		defer res.Body.Close()

		return parseMediaDetailsResponse(res)
	})
}

// GetSeriesDetails fetches the catalog record of a series, retrying transient failures
func (t *TMDBClient) GetSeriesDetails(ctx context.Context, tmdbID int, language string) (*SeriesDetails, error) {
	id, err := catalogID(tmdbID)
	if err != nil {
		return nil, err
	}

	return withRetry(ctx, t, "series", tmdbID, func() (*SeriesDetails, error) {
		res, err := t.TvSeriesDetails(ctx, id, &TvSeriesDetailsParams{Language: ptr(language)})
		if err != nil {
			return nil, requestError(ctx, res, err)
		}
		defer res.Body.Close()

		return parseSeriesDetailsResponse(res)
	})
}

// catalogID narrows id to the catalog's int32 ids
func catalogID(id int) (int32, error) {
	if id <= 0 || id > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return int32(id), nil
}

func withRetry[T any](ctx context.Context, t *TMDBClient, kind string, tmdbID int, fetch func() (T, error)) (T, error) {
	log := logger.FromCtx(ctx)

	return retry.DoWithData(fetch,
		retry.Context(ctx),
		retry.Attempts(t.attempts),
		retry.Delay(t.delay),
		retry.RetryIf(retryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debugw("retrying catalog details", "kind", kind, "tmdb_id", tmdbID, "attempt", n+1, zap.Error(err))
		}),
	)
}

func parseMediaDetailsResponse(res *http.Response) (*MediaDetails, error) {
	details := new(MediaDetails)
	if err := decode(res, details); err != nil {
		return nil, err
	}
	if details.ID == 0 {
		return nil, &UpstreamError{StatusCode: http.StatusBadGateway, Err: errors.New("movie details missing id")}
	}
	return details, nil
}

func parseSeriesDetailsResponse(res *http.Response) (*SeriesDetails, error) {
	details := new(SeriesDetails)
	if err := decode(res, details); err != nil {
		return nil, err
	}
	if details.ID == 0 {
		return nil, &UpstreamError{StatusCode: http.StatusBadGateway, Err: errors.New("series details missing id")}
	}
	return details, nil
}

// decode maps the status of res to an error or unmarshals its body into v
func decode(res *http.Response, v any) error {
	if res.StatusCode != http.StatusOK {
		return statusError(res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return transportError(err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return &UpstreamError{StatusCode: http.StatusBadGateway, Err: fmt.Errorf("invalid catalog response: %w", err)}
	}
	return nil
}

// requestError keeps context errors intact so callers can tell a canceled request from a broken catalog.
// res is only set when the rate limited client gave up on a 429.
func requestError(ctx context.Context, res *http.Response, err error) error {
	if res != nil {
		res.Body.Close()
		if res.StatusCode == http.StatusTooManyRequests {
			return &UpstreamError{StatusCode: http.StatusTooManyRequests, Err: err}
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return transportError(err)
}

func ptr[T any](v T) *T {
	return &v
}
