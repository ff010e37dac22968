package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/kasuboski/streamportal/pkg/availability"
	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/kasuboski/streamportal/pkg/manager"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	searchQuery    string
	searchLanguage string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search the catalog",
	Long:  `search the catalog`,
}

var searchMovieCmd = &cobra.Command{
	Use:   "movie",
	Short: "search for movies",
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(availability.KindMovie)
	},
}

var searchTVCmd = &cobra.Command{
	Use:   "tv",
	Short: "search for series",
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(availability.KindSeries)
	},
}

func runSearch(kind availability.Kind) {
	log := logger.Get()
	ctx := logger.WithCtx(context.Background(), log)

	request := manager.SearchRequest{
		TextSearch:     searchQuery,
		TypeOfContent:  string(kind),
		OptionLanguage: searchLanguage,
	}
	if err := request.Validate(); err != nil {
		log.Fatalw("invalid search", zap.Error(err))
	}

	m, err := newManager(mustConfig(log))
	if err != nil {
		log.Fatalw("failed to create media manager", zap.Error(err))
	}

	var results any
	if kind == availability.KindMovie {
		results, err = m.SearchMovies(ctx, request.TextSearch, request.OptionLanguage)
	} else {
		results, err = m.SearchSeries(ctx, request.TextSearch, request.OptionLanguage)
	}
	if err != nil {
		log.Fatalw("search failed", zap.Error(err))
	}

	printJSON(log, results)
}

func printJSON(log *zap.SugaredLogger, v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalw("failed to encode output", zap.Error(err))
	}
}

func init() {
	for _, c := range []*cobra.Command{searchMovieCmd, searchTVCmd} {
		c.Flags().StringVarP(&searchQuery, "query", "q", "", "the title to search for")
		c.Flags().StringVarP(&searchLanguage, "language", "l", manager.DefaultLanguage, "catalog language")
		_ = c.MarkFlagRequired("query")
		searchCmd.AddCommand(c)
	}

	rootCmd.AddCommand(searchCmd)
}
