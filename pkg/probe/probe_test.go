package probe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProber_Probe(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    Outcome
		exists  bool
		wantErr bool
	}{
		{name: "200 is available", status: http.StatusOK, want: Available, exists: true},
		{name: "404 is missing", status: http.StatusNotFound, want: Missing},
		{name: "500 is missing", status: http.StatusInternalServerError, want: Missing},
		{name: "204 is missing", status: http.StatusNoContent, want: Missing},
		{name: "redirect is missing", status: http.StatusFound, want: Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				if tt.status == http.StatusFound {
					w.Header().Set("Location", "/elsewhere")
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			p := NewHTTPProber()
			got := p.Probe(context.Background(), srv.URL+"/movie/1")

			assert.Equal(t, tt.want, got.Outcome)
			assert.Equal(t, tt.status, got.StatusCode)
			assert.Equal(t, tt.exists, got.Exists())
			assert.Equal(t, srv.URL+"/movie/1", got.URL)
			assert.NoError(t, got.Err)
			assert.False(t, got.CheckedAt.IsZero())
		})
	}
}

func TestHTTPProber_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	p := NewHTTPProber(WithTimeout(20 * time.Millisecond))
	got := p.Probe(context.Background(), srv.URL)

	assert.Equal(t, Timeout, got.Outcome)
	assert.False(t, got.Exists())
	assert.Error(t, got.Err)
}

func TestHTTPProber_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	got := NewHTTPProber().Probe(context.Background(), url)
	assert.Equal(t, TransportError, got.Outcome)
	assert.False(t, got.Exists())
	assert.Error(t, got.Err)
}

func TestHTTPProber_InvalidURL(t *testing.T) {
	got := NewHTTPProber().Probe(context.Background(), "://bad")
	assert.Equal(t, TransportError, got.Outcome)
	assert.Error(t, got.Err)
}

func TestHTTPProber_Canceled(t *testing.T) {
	t.Run("parent canceled before probe", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got := NewHTTPProber().Probe(ctx, srv.URL)
		assert.Equal(t, Canceled, got.Outcome)
		assert.ErrorIs(t, got.Err, context.Canceled)
		assert.Zero(t, hits.Load())
	})

	t.Run("parent canceled in flight", func(t *testing.T) {
		started := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			<-started
			cancel()
		}()

		got := NewHTTPProber(WithTimeout(5 * time.Second)).Probe(ctx, srv.URL)
		assert.Equal(t, Canceled, got.Outcome)
	})
}

func TestHTTPProber_MaxConcurrent(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
	}))
	defer srv.Close()

	p := NewHTTPProber(WithMaxConcurrent(3))

	var wg sync.WaitGroup
	for range 12 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := p.Probe(context.Background(), srv.URL)
			assert.Equal(t, Available, got.Outcome)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Positive(t, peak.Load())
}

type errClient struct {
	err error
}

func (c errClient) Do(*http.Request) (*http.Response, error) {
	return nil, c.err
}

func TestHTTPProber_ClientError(t *testing.T) {
	p := NewHTTPProber(WithHTTPClient(errClient{err: errors.New("connection reset")}))
	got := p.Probe(context.Background(), "https://vixsrc.to/movie/1")

	require.Error(t, got.Err)
	assert.Equal(t, TransportError, got.Outcome)
	assert.Zero(t, got.StatusCode)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "available", Available.String())
	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, "timeout", Timeout.String())
	assert.Equal(t, "transport_error", TransportError.String())
	assert.Equal(t, "canceled", Canceled.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
