package cmd

import (
	"github.com/kasuboski/streamportal/config"
	"github.com/kasuboski/streamportal/pkg/availability"
	"github.com/kasuboski/streamportal/pkg/manager"
	"github.com/kasuboski/streamportal/pkg/probe"
	"github.com/kasuboski/streamportal/pkg/tmdb"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func mustConfig(log *zap.SugaredLogger) config.Config {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatalw("failed to read configurations", zap.Error(err))
	}
	return cfg
}

// newProber builds the one prober the process uses. Its semaphore and connection pool are
// shared by every request on purpose so the probe cap holds across concurrent checks.
func newProber(cfg config.Availability) *probe.HTTPProber {
	return probe.NewHTTPProber(
		probe.WithTimeout(cfg.ProbeTimeout),
		probe.WithMaxConcurrent(cfg.MaxConcurrentProbes),
		probe.WithHTTPClient(probe.NewTransportClient(cfg.MaxConcurrentProbes)),
	)
}

// newManager wires the catalog client and the mirror checks. One prober is shared so the probe cap is process wide.
func newManager(cfg config.Config) (manager.MediaManager, error) {
	tmdbClient, err := tmdb.New(cfg.TMDB.URL(), cfg.TMDB.APIKey,
		tmdb.WithRateLimitRetries(cfg.TMDB.MaxRetries, cfg.TMDB.BaseBackoff),
	)
	if err != nil {
		return manager.MediaManager{}, err
	}

	checker := availability.NewOrchestrator(
		newProber(cfg.Availability),
		availability.NewMirror(cfg.Mirror.Scheme, cfg.Mirror.Host),
		availability.WithTimeout(cfg.Availability.Timeout),
	)

	return manager.New(tmdbClient, checker), nil
}
