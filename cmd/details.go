package cmd

import (
	"context"

	"github.com/kasuboski/streamportal/pkg/availability"
	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/kasuboski/streamportal/pkg/manager"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	detailsID       int
	detailsLanguage string
)

// detailsCmd represents the details command
var detailsCmd = &cobra.Command{
	Use:   "details",
	Short: "show a title and where the mirror streams it",
}

var detailsMovieCmd = &cobra.Command{
	Use:   "movie",
	Short: "show a movie",
	Run: func(cmd *cobra.Command, args []string) {
		runDetails(availability.KindMovie)
	},
}

var detailsTVCmd = &cobra.Command{
	Use:   "tv",
	Short: "show a series with its available seasons and episodes",
	Run: func(cmd *cobra.Command, args []string) {
		runDetails(availability.KindSeries)
	},
}

func runDetails(kind availability.Kind) {
	log := logger.Get()
	ctx := logger.WithCtx(context.Background(), log)

	request := manager.DetailsRequest{
		ContentID:      detailsID,
		TypeOfContent:  string(kind),
		OptionLanguage: detailsLanguage,
	}
	if err := request.Validate(); err != nil {
		log.Fatalw("invalid details request", zap.Error(err))
	}

	m, err := newManager(mustConfig(log))
	if err != nil {
		log.Fatalw("failed to create media manager", zap.Error(err))
	}

	var details any
	if kind == availability.KindMovie {
		details, err = m.GetMovieDetails(ctx, request.ContentID, request.OptionLanguage)
	} else {
		details, err = m.GetSeriesDetails(ctx, request.ContentID, request.OptionLanguage)
	}
	if err != nil {
		log.Fatalw("failed to get details", zap.Error(err))
	}

	printJSON(log, details)
}

func init() {
	for _, c := range []*cobra.Command{detailsMovieCmd, detailsTVCmd} {
		c.Flags().IntVar(&detailsID, "id", 0, "catalog id of the title")
		c.Flags().StringVarP(&detailsLanguage, "language", "l", manager.DefaultLanguage, "catalog language")
		_ = c.MarkFlagRequired("id")
		detailsCmd.AddCommand(c)
	}

	rootCmd.AddCommand(detailsCmd)
}
