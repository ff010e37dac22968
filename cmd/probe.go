package cmd

import (
	"context"

	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/cobra"
)

type probeOutput struct {
	URL        string `json:"url"`
	Outcome    string `json:"outcome"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeCmd checks mirror urls directly
var probeCmd = &cobra.Command{
	Use:   "probe [url...]",
	Short: "check whether urls answer 200",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg := mustConfig(log)
		prober := newProber(cfg.Availability)

		out := iter.Map(args, func(url *string) probeOutput {
			res := prober.Probe(ctx, *url)
			o := probeOutput{URL: res.URL, Outcome: res.Outcome.String(), StatusCode: res.StatusCode}
			if res.Err != nil {
				o.Error = res.Err.Error()
			}
			return o
		})

		printJSON(log, out)
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
