package cmd

import (
	"context"
	"time"

	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/kasuboski/streamportal/pkg/ratelimit"
	"github.com/kasuboski/streamportal/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

const limiterSweepInterval = time.Minute

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the api server",
	Long:  `start the api server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cfg := mustConfig(log)

		manager, err := newManager(cfg)
		if err != nil {
			log.Fatalw("failed to create media manager", zap.Error(err))
		}
		log.Info("TMDB API key validated successfully")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		limiter := ratelimit.NewKeyedLimiter(cfg.RateLimit.RequestsPerMinute)
		go limiter.Run(ctx, limiterSweepInterval)

		server := server.New(log, manager, limiter, cfg.Server)
		if err := server.Serve(cfg.Server.Port); err != nil {
			log.Errorw("server stopped", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
