package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/kasuboski/streamportal/pkg/tmdb"
)

func TestClient_CanCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/3/tv/1396" {
			rw.WriteHeader(http.StatusNotFound)
			return
		}
		rw.Write([]byte("{}"))
	}))
	defer server.Close()
	hc := server.Client()

	c, err := client.NewClient(server.URL, client.WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("couldn't create client: %v", err)
	}

	resp, err := c.TvSeriesDetails(context.TODO(), 1396, nil)
	if err != nil {
		t.Fatalf("failed to get series: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestNewSearchMovieRequest(t *testing.T) {
	adult := false
	lang := "it-IT"
	page := int32(3)

	req, err := client.NewSearchMovieRequest("https://api.themoviedb.org", &client.SearchMovieParams{
		Query:        "the matrix",
		IncludeAdult: &adult,
		Language:     &lang,
		Page:         &page,
	})
	if err != nil {
		t.Fatalf("couldn't build request: %v", err)
	}

	if req.URL.Path != "/3/search/movie" {
		t.Errorf("unexpected path %s", req.URL.Path)
	}

	q := req.URL.Query()
	want := map[string]string{"query": "the matrix", "include_adult": "false", "language": "it-IT", "page": "3"}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Errorf("query %s = %q, want %q", k, got, v)
		}
	}
}

func TestNewMovieDetailsRequest(t *testing.T) {
	req, err := client.NewMovieDetailsRequest("http://localhost:8080/", 27205, nil)
	if err != nil {
		t.Fatalf("couldn't build request: %v", err)
	}

	if got := req.URL.String(); got != "http://localhost:8080/3/movie/27205" {
		t.Errorf("unexpected url %s", got)
	}
}
