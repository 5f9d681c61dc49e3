package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/rxgen/formatter"
	"github.com/gnolang/rxgen/internal/config"
	"github.com/gnolang/rxgen/pattern"
)

const defaultTimeout = 5 * time.Minute

// ExitError carries the process exit status for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// errRejected signals that at least one candidate did not match. The
// details were already printed.
var errRejected = &ExitError{Code: 1}

// app holds what the flags and the config file resolve to.
type app struct {
	cfgFile string
	timeout time.Duration
	verbose bool
	noColor bool

	logger *zap.Logger
	cfg    *config.Config
}

// NewRootCommand builds the rxgen command tree. A nil logger is replaced
// by a zap production logger (development logger with --verbose).
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	rootCmd := &cobra.Command{
		Use:           "rxgen",
		Short:         "rxgen - build simple patterns, render them for other languages and match strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				l, err := newLogger(a.verbose)
				if err != nil {
					return err
				}
				a.logger = l
			}
			a.setupColor()
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", config.DefaultPath, "Path to the configuration file")
	flags.DurationVar(&a.timeout, "timeout", defaultTimeout, "Timeout for matching")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newBuildCmd(a),
		newRenderCmd(a),
		newMatchCmd(a),
		newCheckCmd(a),
		newInteractiveCmd(a),
		newInitCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree and returns the process exit status.
func Execute() int {
	rootCmd := NewRootCommand(nil)
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, "error:", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	return 2
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// config loads the configuration file once.
func (a *app) config() (config.Config, error) {
	if a.cfg != nil {
		return *a.cfg, nil
	}
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		a.logger.Error("Failed to load configuration", zap.String("path", a.cfgFile), zap.Error(err))
		return config.Config{}, err
	}
	a.cfg = &cfg
	return cfg, nil
}

// setupColor disables color for --no-color or "color: false". A config that
// fails to load is left for the command to report.
func (a *app) setupColor() {
	if a.noColor {
		formatter.DisableColor()
		return
	}
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return
	}
	a.cfg = &cfg
	if !cfg.ColorEnabled() {
		formatter.DisableColor()
	}
}

// renderSetup resolves the renderer and dialect list from the config,
// overridden by non-empty flag values.
func (a *app) renderSetup(dialectNames []string, escape string) (pattern.Renderer, []pattern.Dialect, error) {
	cfg, err := a.config()
	if err != nil {
		return pattern.Renderer{}, nil, err
	}
	if len(dialectNames) > 0 {
		cfg.Dialects = dialectNames
	}
	if escape != "" {
		cfg.Escape = escape
	}
	dialects, err := cfg.DialectList()
	if err != nil {
		return pattern.Renderer{}, nil, err
	}
	r, err := cfg.Renderer()
	if err != nil {
		return pattern.Renderer{}, nil, err
	}
	return r, dialects, nil
}

var errNoPattern = errors.New("no pattern given")

// resolvePattern parses text, or looks name up in the config when set.
// given tells an explicitly empty pattern apart from a missing one.
func (a *app) resolvePattern(text, name string, given bool) (pattern.Spec, error) {
	if name != "" {
		if given {
			return pattern.Spec{}, errors.New("give either a pattern or --name, not both")
		}
		cfg, err := a.config()
		if err != nil {
			return pattern.Spec{}, err
		}
		return cfg.Pattern(name)
	}
	if !given {
		return pattern.Spec{}, errNoPattern
	}
	return pattern.Parse(text)
}
