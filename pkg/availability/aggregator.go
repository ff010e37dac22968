package availability

import (
	"context"
	"slices"

	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/kasuboski/streamportal/pkg/probe"
	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// SeasonCeiling is the highest season number resolved for a series
const SeasonCeiling = 10

// SeasonResolver resolves a single season
type SeasonResolver interface {
	ResolveEpisodes(ctx context.Context, seriesID, season int) (SeasonAvailability, error)
}

// Aggregator resolves every season of a series and assembles the series availability
type Aggregator struct {
	prober   probe.Prober
	mirror   Mirror
	resolver SeasonResolver
}

func NewAggregator(prober probe.Prober, mirror Mirror, resolver SeasonResolver) *Aggregator {
	return &Aggregator{
		prober:   prober,
		mirror:   mirror,
		resolver: resolver,
	}
}

// ResolveSeasons gates on S1E1 of the series, then resolves seasons 1 through
// min(declaredSeasons, SeasonCeiling) concurrently. A season that fails is logged and skipped.
// The result is ordered by season then episode regardless of completion order.
func (a *Aggregator) ResolveSeasons(ctx context.Context, seriesID, declaredSeasons int) (SeriesAvailability, error) {
	log := logger.FromCtx(ctx, "series_id", seriesID)

	gate := a.prober.Probe(ctx, a.mirror.EpisodeURL(seriesID, 1, 1))
	if err := ctx.Err(); err != nil {
		return EmptySeries(), err
	}
	if !gate.Exists() {
		log.Debugw("series not served", "outcome", gate.Outcome.String())
		return EmptySeries(), nil
	}

	seasons := min(declaredSeasons, SeasonCeiling)
	if seasons <= 0 {
		return EmptySeries(), nil
	}

	p := pool.NewWithResults[SeasonAvailability]().WithErrors().WithMaxGoroutines(seasons)
	for season := 1; season <= seasons; season++ {
		p.Go(func() (SeasonAvailability, error) {
			var (
				s   SeasonAvailability
				err error
			)
			if r := panics.Try(func() { s, err = a.resolver.ResolveEpisodes(ctx, seriesID, season) }); r != nil {
				err = r.AsError()
			}
			if err != nil {
				log.Warnw("failed to check season", "season", season, zap.Error(err))
			}
			return s, err
		})
	}

	// failed seasons are dropped from the results, the joined error was already logged per season
	resolved, _ := p.Wait()
	if err := ctx.Err(); err != nil {
		return EmptySeries(), err
	}

	result := assemble(a.mirror, seriesID, resolved)
	log.Infow("series streaming check completed",
		"valid_seasons", len(result.ValidSeasons),
		"total_episodes", result.TotalEpisodes(),
	)

	return result, nil
}

// assemble orders seasons ascending and builds the season-major url list
func assemble(m Mirror, seriesID int, seasons []SeasonAvailability) SeriesAvailability {
	slices.SortFunc(seasons, func(a, b SeasonAvailability) int {
		return a.Season - b.Season
	})

	result := EmptySeries()
	for _, s := range seasons {
		if s.Empty() {
			continue
		}
		if _, dup := result.EpisodesBySeason[s.Season]; dup {
			continue
		}

		episodes := slices.Clone(s.Episodes)
		slices.Sort(episodes)
		episodes = slices.Compact(episodes)

		result.ValidSeasons = append(result.ValidSeasons, s.Season)
		result.EpisodesBySeason[s.Season] = episodes
		for _, e := range episodes {
			result.StreamingURLs = append(result.StreamingURLs, m.EpisodeURL(seriesID, s.Season, e))
		}
	}

	return result
}
