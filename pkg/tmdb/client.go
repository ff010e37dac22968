package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// RequestEditorFn is the function signature for the RequestEditor callback function
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// HttpRequestDoer performs HTTP requests.
//
// The standard http.Client implements this interface.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client which conforms to the OpenAPI3 specification for this service.
type Client struct {
	// The endpoint of the server conforming to this interface, with scheme,
	// https://api.deepmap.com for example. This can contain a path relative
	// to the server, such as https://api.deepmap.com/dev-test, and all the
	// paths in the swagger spec will be appended to the server.
	Server string

	// Doer for performing requests, typically a *http.Client with any
	// customized settings, such as certificate chains.
	Client HttpRequestDoer

	// A list of callbacks for modifying requests which are generated before sending over
	// the network.
	RequestEditors []RequestEditorFn
}

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

// NewClient creates a new Client, with reasonable defaults
func NewClient(server string, opts ...ClientOption) (*Client, error) {
	client := Client{
		Server: server,
	}
	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}
	// ensure the server URL always has a trailing slash
	if !strings.HasSuffix(client.Server, "/") {
		client.Server += "/"
	}
	if client.Client == nil {
		client.Client = &http.Client{}
	}
	return &client, nil
}

// WithHTTPClient allows overriding the default Doer, which is
// automatically created using http.Client. This is useful for tests.
func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.Client = doer
		return nil
	}
}

// WithRequestEditorFn allows setting up a callback function, which will be
// called right before sending the request. This can be used to mutate the request.
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

// The interface specification for the client above.
type ClientInterface interface {
	// SearchMovie request
	SearchMovie(ctx context.Context, params *SearchMovieParams, reqEditors ...RequestEditorFn) (*http.Response, error)

	// SearchTv request
	SearchTv(ctx context.Context, params *SearchTvParams, reqEditors ...RequestEditorFn) (*http.Response, error)

	// MovieDetails request
	MovieDetails(ctx context.Context, movieId int32, params *MovieDetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error)

	// TvSeriesDetails request
	TvSeriesDetails(ctx context.Context, seriesId int32, params *TvSeriesDetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error)
}

func (c *Client) SearchMovie(ctx context.Context, params *SearchMovieParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewSearchMovieRequest(c.Server, params)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) SearchTv(ctx context.Context, params *SearchTvParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewSearchTvRequest(c.Server, params)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) MovieDetails(ctx context.Context, movieId int32, params *MovieDetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewMovieDetailsRequest(c.Server, movieId, params)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) TvSeriesDetails(ctx context.Context, seriesId int32, params *TvSeriesDetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewTvSeriesDetailsRequest(c.Server, seriesId, params)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

// NewSearchMovieRequest generates requests for SearchMovie
func NewSearchMovieRequest(server string, params *SearchMovieParams) (*http.Request, error) {
	queryURL, err := operationURL(server, "/3/search/movie")
	if err != nil {
		return nil, err
	}

	if params != nil {
		queryValues := queryURL.Query()
		if err := addQueryParam(queryValues, "query", true, params.Query); err != nil {
			return nil, err
		}
		if params.IncludeAdult != nil {
			if err := addQueryParam(queryValues, "include_adult", false, *params.IncludeAdult); err != nil {
				return nil, err
			}
		}
		if params.Language != nil {
			if err := addQueryParam(queryValues, "language", false, *params.Language); err != nil {
				return nil, err
			}
		}
		if params.Page != nil {
			if err := addQueryParam(queryValues, "page", false, *params.Page); err != nil {
				return nil, err
			}
		}
		queryURL.RawQuery = queryValues.Encode()
	}

	return http.NewRequest("GET", queryURL.String(), nil)
}

// NewSearchTvRequest generates requests for SearchTv
func NewSearchTvRequest(server string, params *SearchTvParams) (*http.Request, error) {
	queryURL, err := operationURL(server, "/3/search/tv")
	if err != nil {
		return nil, err
	}

	if params != nil {
		queryValues := queryURL.Query()
		if err := addQueryParam(queryValues, "query", true, params.Query); err != nil {
			return nil, err
		}
		if params.IncludeAdult != nil {
			if err := addQueryParam(queryValues, "include_adult", false, *params.IncludeAdult); err != nil {
				return nil, err
			}
		}
		if params.Language != nil {
			if err := addQueryParam(queryValues, "language", false, *params.Language); err != nil {
				return nil, err
			}
		}
		if params.Page != nil {
			if err := addQueryParam(queryValues, "page", false, *params.Page); err != nil {
				return nil, err
			}
		}
		queryURL.RawQuery = queryValues.Encode()
	}

	return http.NewRequest("GET", queryURL.String(), nil)
}

// NewMovieDetailsRequest generates requests for MovieDetails
func NewMovieDetailsRequest(server string, movieId int32, params *MovieDetailsParams) (*http.Request, error) {
	pathParam0, err := runtime.StyleParamWithLocation("simple", false, "movie_id", runtime.ParamLocationPath, movieId)
	if err != nil {
		return nil, err
	}

	queryURL, err := operationURL(server, fmt.Sprintf("/3/movie/%s", pathParam0))
	if err != nil {
		return nil, err
	}

	if params != nil && params.Language != nil {
		queryValues := queryURL.Query()
		if err := addQueryParam(queryValues, "language", false, *params.Language); err != nil {
			return nil, err
		}
		queryURL.RawQuery = queryValues.Encode()
	}

	return http.NewRequest("GET", queryURL.String(), nil)
}

// NewTvSeriesDetailsRequest generates requests for TvSeriesDetails
func NewTvSeriesDetailsRequest(server string, seriesId int32, params *TvSeriesDetailsParams) (*http.Request, error) {
	pathParam0, err := runtime.StyleParamWithLocation("simple", false, "series_id", runtime.ParamLocationPath, seriesId)
	if err != nil {
		return nil, err
	}

	queryURL, err := operationURL(server, fmt.Sprintf("/3/tv/%s", pathParam0))
	if err != nil {
		return nil, err
	}

	if params != nil && params.Language != nil {
		queryValues := queryURL.Query()
		if err := addQueryParam(queryValues, "language", false, *params.Language); err != nil {
			return nil, err
		}
		queryURL.RawQuery = queryValues.Encode()
	}

	return http.NewRequest("GET", queryURL.String(), nil)
}

func operationURL(server, operationPath string) (*url.URL, error) {
	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	return serverURL.Parse(operationPath)
}

// addQueryParam styles a single form parameter and merges it into values
func addQueryParam(values url.Values, name string, explode bool, value any) error {
	queryFrag, err := runtime.StyleParamWithLocation("form", explode, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return err
	}

	parsed, err := url.ParseQuery(queryFrag)
	if err != nil {
		return err
	}

	for k, v := range parsed {
		for _, v2 := range v {
			values.Add(k, v2)
		}
	}
	return nil
}

func (c *Client) applyEditors(ctx context.Context, req *http.Request, additionalEditors []RequestEditorFn) error {
	for _, r := range c.RequestEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	for _, r := range additionalEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
