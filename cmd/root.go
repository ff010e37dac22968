package cmd

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "streamportal",
	Short: "streamportal cli",
	Long:  `streamportal searches the movie catalog and checks which titles the streaming mirror serves`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Get().Warnw("failed to load .env file", zap.Error(err))
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("STREAMPORTAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	// the unprefixed names are the ones existing deployments already set
	_ = viper.BindEnv("tmdb.apiKey", "STREAMPORTAL_TMDB_APIKEY", "TMDB_API_KEY")
	_ = viper.BindEnv("server.allowedOrigins", "STREAMPORTAL_SERVER_ALLOWEDORIGINS", "ALLOWED_ORIGINS")

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.backoff", 500*time.Millisecond)
	viper.SetDefault("tmdb.maxRetries", 3)

	viper.SetDefault("mirror.scheme", "https")
	viper.SetDefault("mirror.host", "vixsrc.to")

	viper.SetDefault("availability.probeTimeout", 3*time.Second)
	viper.SetDefault("availability.maxConcurrentProbes", 32)
	viper.SetDefault("availability.timeout", time.Duration(0))

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.allowedOrigins", []string{"http://localhost:3000"})

	viper.SetDefault("rateLimit.requestsPerMinute", 60)
}
