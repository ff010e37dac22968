package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/kasuboski/streamportal/pkg/probe"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_availability.go github.com/kasuboski/streamportal/pkg/availability Checker

// Checker answers whether titles are currently served by the mirror.
// A check never fails, anything that goes wrong reads as unavailable.
type Checker interface {
	Movie(ctx context.Context, movieID int) MovieAvailability
	Series(ctx context.Context, seriesID, declaredSeasons int) SeriesAvailability
}

// SeasonsResolver resolves every season of a series
type SeasonsResolver interface {
	ResolveSeasons(ctx context.Context, seriesID, declaredSeasons int) (SeriesAvailability, error)
}

// Orchestrator is the entry point for availability checks
type Orchestrator struct {
	prober     probe.Prober
	mirror     Mirror
	aggregator SeasonsResolver
	timeout    time.Duration
}

type OrchestratorOption func(*Orchestrator)

// WithTimeout bounds a whole check. Zero means the check runs until every probe is done.
func WithTimeout(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if d >= 0 {
			o.timeout = d
		}
	}
}

// WithSeasonsResolver replaces the default aggregator
func WithSeasonsResolver(r SeasonsResolver) OrchestratorOption {
	return func(o *Orchestrator) {
		o.aggregator = r
	}
}

// NewOrchestrator wires the resolver and aggregator around prober
func NewOrchestrator(prober probe.Prober, mirror Mirror, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		prober: prober,
		mirror: mirror,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.aggregator == nil {
		o.aggregator = NewAggregator(prober, mirror, NewResolver(prober, mirror))
	}

	return o
}

// Movie probes the mirror page of the movie once
func (o *Orchestrator) Movie(ctx context.Context, movieID int) MovieAvailability {
	log := logger.FromCtx(ctx, "movie_id", movieID)

	ctx, cancel := o.withTimeout(ctx)
	defer cancel()

	url := o.mirror.MovieURL(movieID)
	res := o.prober.Probe(ctx, url)
	log.Debugw("streaming availability check for movie", "is_available", res.Exists(), "outcome", res.Outcome.String())

	if !res.Exists() {
		return MovieAvailability{}
	}

	return MovieAvailability{IsAvailable: true, URL: &url}
}

// Series resolves every season of the series. Errors and panics during the
// check are logged and reported as an unavailable series.
func (o *Orchestrator) Series(ctx context.Context, seriesID, declaredSeasons int) SeriesAvailability {
	log := logger.FromCtx(ctx, "series_id", seriesID)

	ctx, cancel := o.withTimeout(ctx)
	defer cancel()

	var (
		result SeriesAvailability
		err    error
	)
	recovered := panics.Try(func() {
		result, err = o.aggregator.ResolveSeasons(ctx, seriesID, declaredSeasons)
	})
	if recovered != nil {
		err = fmt.Errorf("availability check panicked: %v", recovered.Value)
	}

	if err != nil {
		log.Warnw("failed to check streaming availability for series", zap.Error(err))
		return EmptySeries()
	}

	return result
}

func (o *Orchestrator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, o.timeout)
}
