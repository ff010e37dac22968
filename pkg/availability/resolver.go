package availability

import (
	"context"

	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/kasuboski/streamportal/pkg/probe"
	"github.com/sourcegraph/conc/iter"
)

// EpisodeCeiling is the highest episode number probed in a season
const EpisodeCeiling = 20

// Resolver finds the episodes of a season the mirror serves
type Resolver struct {
	prober probe.Prober
	mirror Mirror
}

func NewResolver(prober probe.Prober, mirror Mirror) *Resolver {
	return &Resolver{
		prober: prober,
		mirror: mirror,
	}
}

// ResolveEpisodes probes episode 1 of the season and, only if it is served, every episode
// from 1 through EpisodeCeiling. Episodes are returned ascending. A failed probe counts as
// absent. The only error is the context ending before the season was resolved.
func (r *Resolver) ResolveEpisodes(ctx context.Context, seriesID, season int) (SeasonAvailability, error) {
	log := logger.FromCtx(ctx, "series_id", seriesID, "season", season)
	result := SeasonAvailability{Season: season, Episodes: []int{}}

	gate := r.prober.Probe(ctx, r.mirror.EpisodeURL(seriesID, season, 1))
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if !gate.Exists() {
		log.Debugw("season not served", "outcome", gate.Outcome.String())
		return result, nil
	}

	episodes := make([]int, EpisodeCeiling)
	for i := range episodes {
		episodes[i] = i + 1
	}

	// Map keeps input order so the served episodes come out ascending
	mapper := iter.Mapper[int, bool]{MaxGoroutines: EpisodeCeiling}
	served := mapper.Map(episodes, func(episode *int) bool {
		return r.prober.Probe(ctx, r.mirror.EpisodeURL(seriesID, season, *episode)).Exists()
	})
	if err := ctx.Err(); err != nil {
		return result, err
	}

	for i, ok := range served {
		if ok {
			result.Episodes = append(result.Episodes, episodes[i])
		}
	}

	log.Debugw("season resolved", "episodes", len(result.Episodes))
	return result, nil
}
