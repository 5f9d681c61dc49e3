package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/rxgen/formatter"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the accept and reject samples of every named pattern in the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}
			failures, err := cfg.CheckAll()
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			out := cmd.OutOrStdout()
			if len(failures) > 0 {
				a.logger.Debug("Pattern samples failed", zap.Int("failures", len(failures)))
				fmt.Fprint(out, formatter.FormatFailures(failures))
				return errRejected
			}

			samples := 0
			for _, np := range cfg.Patterns {
				samples += len(np.Accept) + len(np.Reject)
			}
			fmt.Fprintf(out, "ok: %d patterns, %d samples\n", len(cfg.Patterns), samples)
			return nil
		},
	}
}
