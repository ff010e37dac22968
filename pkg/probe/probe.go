package probe

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/kasuboski/streamportal/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_prober.go github.com/kasuboski/streamportal/pkg/probe Prober

const (
	DefaultTimeout       = 3 * time.Second
	DefaultMaxConcurrent = 32

	// at most this much of a mirror page is read before the connection is released
	maxDrainBytes = 4 << 10
)

// Outcome classifies a single existence check
type Outcome int

const (
	Available Outcome = iota
	Missing
	Timeout
	TransportError
	Canceled
)

func (o Outcome) String() string {
	switch o {
	case Available:
		return "available"
	case Missing:
		return "missing"
	case Timeout:
		return "timeout"
	case TransportError:
		return "transport_error"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result is the outcome of checking one URL at one point in time
type Result struct {
	URL        string
	Outcome    Outcome
	StatusCode int
	Err        error
	CheckedAt  time.Time
}

// Exists is true only when the mirror answered 200
func (r Result) Exists() bool {
	return r.Outcome == Available
}

// Prober checks whether a URL currently exists. Implementations never return errors,
// every failure is folded into the Result outcome.
type Prober interface {
	Probe(ctx context.Context, url string) Result
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPProber issues a single GET per probe with a fixed timeout and no retries
type HTTPProber struct {
	client  HTTPClient
	timeout time.Duration
	sem     *semaphore.Weighted
	now     func() time.Time
}

type Option func(*HTTPProber)

// WithHTTPClient sets the client used for probes
func WithHTTPClient(c HTTPClient) Option {
	return func(p *HTTPProber) {
		p.client = c
	}
}

// WithTimeout sets the per probe timeout
func WithTimeout(d time.Duration) Option {
	return func(p *HTTPProber) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithMaxConcurrent caps the number of probes in flight across every caller of this prober
func WithMaxConcurrent(n int) Option {
	return func(p *HTTPProber) {
		if n > 0 {
			p.sem = semaphore.NewWeighted(int64(n))
		}
	}
}

// NewHTTPProber creates a prober. The default client keeps enough idle connections
// per host to serve the concurrency cap without reconnecting.
func NewHTTPProber(opts ...Option) *HTTPProber {
	p := &HTTPProber{
		timeout: DefaultTimeout,
		sem:     semaphore.NewWeighted(DefaultMaxConcurrent),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.client == nil {
		p.client = NewTransportClient(DefaultMaxConcurrent)
	}

	return p
}

// NewTransportClient returns an http.Client whose pool holds maxIdlePerHost connections per host
func NewTransportClient(maxIdlePerHost int) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = maxIdlePerHost
	transport.MaxIdleConns = maxIdlePerHost * 2
	return &http.Client{
		Transport: transport,
		// a redirect is not an existence signal, the mirror must answer 200 directly
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Probe reports whether url answers exactly 200 within the probe timeout
func (p *HTTPProber) Probe(ctx context.Context, url string) Result {
	log := logger.FromCtx(ctx)

	result := p.probe(ctx, url)
	log.Debugw("probe finished",
		"url", url,
		"outcome", result.Outcome.String(),
		"status", result.StatusCode,
		zap.Error(result.Err),
	)

	return result
}

func (p *HTTPProber) probe(ctx context.Context, url string) Result {
	result := Result{URL: url}

	if err := p.sem.Acquire(ctx, 1); err != nil {
		result.Outcome = Canceled
		result.Err = err
		result.CheckedAt = p.now()
		return result
	}
	defer p.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Outcome = TransportError
		result.Err = err
		result.CheckedAt = p.now()
		return result
	}

	resp, err := p.client.Do(req)
	result.CheckedAt = p.now()
	if err != nil {
		result.Outcome = classify(ctx, err)
		result.Err = err
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	result.StatusCode = resp.StatusCode
	if resp.StatusCode == http.StatusOK {
		result.Outcome = Available
	} else {
		result.Outcome = Missing
	}

	return result
}

// classify maps a client error to an outcome. ctx is the per probe context.
func classify(ctx context.Context, err error) Outcome {
	if errors.Is(err, context.Canceled) {
		return Canceled
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Timeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}

	return TransportError
}
