package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/rxgen/formatter"
	"github.com/gnolang/rxgen/internal/session"
	"github.com/gnolang/rxgen/pattern"
)

const exitWord = "exit"

func newInteractiveCmd(a *app) *cobra.Command {
	var (
		dialects []string
		escape   string
	)

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Build a pattern step by step, then validate strings against it",
		Long: `Shows a menu to add letters, digits, spaces and specific characters to a pattern.
Commands may be given by number or by (abbreviated) name: letter, digit, space,
char [X], reset, show, help, done.
After "done" the pattern is rendered and every following line is validated
until "exit".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ds, err := a.renderSetup(dialects, escape)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}
			return a.runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), r, ds)
		},
	}

	cmd.Flags().StringSliceVarP(&dialects, "dialect", "d", nil, "Dialects to render (default from config)")
	cmd.Flags().StringVar(&escape, "escape", "", "Literal escaping: meta or verbatim (default from config)")
	return cmd
}

func (a *app) runInteractive(in io.Reader, out io.Writer, r pattern.Renderer, dialects []pattern.Dialect) error {
	sc := bufio.NewScanner(in)
	sess := session.New(a.logger)

	fmt.Fprintln(out, "Building a pattern:")
	fmt.Fprintln(out, session.Menu)
	for !sess.Done() && sc.Scan() {
		res, err := sess.Apply(sc.Text())
		if err != nil {
			fmt.Fprintf(out, "invalid option: %v\n", err)
			if sess.AwaitingLiteral() {
				fmt.Fprintln(out, "Enter the specific character:")
			}
			continue
		}
		switch res.Action {
		case session.ActionAwaitLiteral:
			fmt.Fprintln(out, "Enter the specific character:")
		case session.ActionAdded, session.ActionReset, session.ActionShow:
			fmt.Fprintf(out, "pattern: %s\n", r.Plain(sess.Spec()))
		case session.ActionHelp:
			fmt.Fprintln(out, session.Menu)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	spec := sess.Spec()
	a.logger.Debug("Interactive pattern built", zap.Int("tokens", spec.Len()))
	fmt.Fprint(out, formatter.FormatRenders(r, spec, dialects))

	fmt.Fprintf(out, "Enter a string to validate (or '%s' to quit):\n", exitWord)
	n := 0
	for sc.Scan() {
		line := sc.Text()
		if strings.EqualFold(line, exitWord) {
			break
		}
		n++
		fmt.Fprint(out, formatter.FormatMatch(formatter.NewMatchReport("input:"+strconv.Itoa(n), spec, line)))
	}
	return sc.Err()
}
