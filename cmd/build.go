package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/rxgen/formatter"
	"github.com/gnolang/rxgen/pattern"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		dialects   []string
		escape     string
		showTokens bool
	)

	cmd := &cobra.Command{
		Use:   "build [tokens...]",
		Short: "Build a pattern from token words and render it",
		Long: `Builds a pattern from token words, in order, and prints it in every configured dialect.

Token words: letter (l), digit (d), space (s, ws), char:X (lit:X).
Example) rxgen build letter digit char:@`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := pattern.ParseTokens(args)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}
			r, ds, err := a.renderSetup(dialects, escape)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}
			a.logger.Debug("Built pattern", zap.Int("tokens", spec.Len()), zap.String("pattern", r.Plain(spec)))

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatRenders(r, spec, ds))
			if showTokens {
				fmt.Fprint(out, formatter.FormatTokens(spec))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&dialects, "dialect", "d", nil, "Dialects to render (default from config)")
	cmd.Flags().StringVar(&escape, "escape", "", "Literal escaping: meta or verbatim (default from config)")
	cmd.Flags().BoolVar(&showTokens, "tokens", false, "Also list the tokens")
	return cmd
}
