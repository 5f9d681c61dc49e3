package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnolang/rxgen/formatter"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		dialects []string
		escape   string
		name     string
		raw      bool
	)

	cmd := &cobra.Command{
		Use:   "render [pattern]",
		Short: "Render a pattern in other languages' literal syntax",
		Long: `Parses a pattern in plain form (e.g. '[a-zA-Z]\d@') or takes a named pattern
from the config, and renders it for each dialect.
Example) rxgen render -d python,js '[a-zA-Z]\d@'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			}
			spec, err := a.resolvePattern(text, name, len(args) == 1)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}
			r, ds, err := a.renderSetup(dialects, escape)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			out := cmd.OutOrStdout()
			if raw {
				for _, s := range r.RenderAll(spec, ds) {
					fmt.Fprintln(out, s)
				}
				return nil
			}
			fmt.Fprint(out, formatter.FormatRenders(r, spec, ds))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&dialects, "dialect", "d", nil, "Dialects to render (default from config)")
	cmd.Flags().StringVar(&escape, "escape", "", "Literal escaping: meta or verbatim (default from config)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Use a named pattern from the config")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the rendered literals, one per line")
	return cmd
}
