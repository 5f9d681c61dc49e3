package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/rxgen/formatter"
	"github.com/gnolang/rxgen/internal/batch"
	"github.com/gnolang/rxgen/pattern"
)

type matchOptions struct {
	pattern    string
	name       string
	files      bool
	watch      bool
	json       bool
	failures   bool
	progress   bool
	extensions []string
}

func newMatchCmd(a *app) *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:   "match [candidates...]",
		Short: "Check whether strings fully match a pattern",
		Long: `Matches each candidate against the pattern. Without candidates, each line of
standard input is a candidate. With --file, the arguments are files or directories
whose lines are the candidates.
Exits with status 1 when any candidate does not match.
Example) rxgen match -p '[a-zA-Z]\d' a5 ab`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.resolvePattern(opts.pattern, opts.name, cmd.Flags().Changed("pattern"))
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}
			if opts.watch && !opts.files {
				return &ExitError{Code: 2, Err: fmt.Errorf("--watch requires --file")}
			}
			return a.runMatch(cmd, spec, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.pattern, "pattern", "p", "", "Pattern in plain form")
	flags.StringVarP(&opts.name, "name", "n", "", "Use a named pattern from the config")
	flags.BoolVarP(&opts.files, "file", "f", false, "Treat arguments as files or directories of candidates")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Re-match files when they change (requires --file)")
	flags.BoolVar(&opts.json, "json", false, "Output results in JSON format")
	flags.BoolVar(&opts.failures, "failures", false, "Only report candidates that do not match")
	flags.BoolVar(&opts.progress, "progress", false, "Show a progress bar while matching files")
	flags.StringSliceVar(&opts.extensions, "ext", nil, "File extensions to read when walking directories, e.g. .txt")
	return cmd
}

func (a *app) runMatch(cmd *cobra.Command, spec pattern.Spec, args []string, opts matchOptions) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
	defer cancel()

	var (
		results []batch.Result
		err     error
	)
	switch {
	case opts.files:
		results, err = a.matchFiles(ctx, spec, args, opts)
	case len(args) == 0:
		results, err = batch.MatchLines(ctx, spec, "stdin", cmd.InOrStdin())
	default:
		results = matchArgs(spec, args)
	}
	if err != nil {
		a.logger.Error("Error matching candidates", zap.Error(err))
		if len(results) == 0 {
			return &ExitError{Code: 2, Err: err}
		}
	}

	if err := printResults(cmd.OutOrStdout(), spec, results, opts); err != nil {
		return err
	}

	if opts.watch {
		return a.watchFiles(cmd, spec, args, opts)
	}
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	if batch.Failed(results) > 0 {
		return errRejected
	}
	return nil
}

func (a *app) matchFiles(ctx context.Context, spec pattern.Spec, paths []string, opts matchOptions) ([]batch.Result, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	bopts := batch.Options{Workers: cfg.Workers, Extensions: opts.extensions}
	if opts.progress {
		bopts.Progress = os.Stderr
	}
	return batch.ProcessPaths(ctx, a.logger, spec, paths, bopts)
}

func (a *app) watchFiles(cmd *cobra.Command, spec pattern.Spec, paths []string, opts matchOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	w, err := batch.NewWatcher(a.logger, paths, batch.DefaultDebounce)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	a.logger.Info("Watching candidate files", zap.Strings("paths", paths))

	return w.Run(ctx, func(path string) {
		results, err := batch.MatchFile(ctx, spec, path)
		if err != nil {
			a.logger.Error("Error matching file", zap.String("file", path), zap.Error(err))
			return
		}
		if err := printResults(cmd.OutOrStdout(), spec, results, opts); err != nil {
			a.logger.Error("Error printing results", zap.Error(err))
		}
	})
}

func matchArgs(spec pattern.Spec, args []string) []batch.Result {
	results := make([]batch.Result, len(args))
	for i, in := range args {
		pos, ok := spec.Mismatch(in)
		if ok {
			pos = 0
		}
		results[i] = batch.Result{File: "args", Line: i + 1, Input: in, OK: ok, Pos: pos}
	}
	return results
}

func toReports(spec pattern.Spec, results []batch.Result) []formatter.MatchReport {
	reps := make([]formatter.MatchReport, len(results))
	for i, r := range results {
		reps[i] = formatter.MatchReport{
			Source: r.File + ":" + strconv.Itoa(r.Line),
			Input:  r.Input,
			OK:     r.OK,
			Pos:    r.Pos,
			Spec:   spec,
		}
	}
	return reps
}

func printResults(out io.Writer, spec pattern.Spec, results []batch.Result, opts matchOptions) error {
	if opts.json {
		if opts.failures {
			failed := make([]batch.Result, 0, len(results))
			for _, r := range results {
				if !r.OK {
					failed = append(failed, r)
				}
			}
			results = failed
		}
		if results == nil {
			results = []batch.Result{}
		}
		d, err := json.Marshal(results)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(d))
		return err
	}
	_, err := fmt.Fprint(out, formatter.FormatMatches(toReports(spec, results), opts.failures))
	return err
}
