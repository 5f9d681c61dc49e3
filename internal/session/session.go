// Package session drives a pattern builder from line-oriented commands, the
// way the interactive menu does.
package session

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gnolang/rxgen/internal/trie"
	"github.com/gnolang/rxgen/pattern"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrAmbiguousCommand = errors.New("ambiguous command")
	ErrFinished         = errors.New("session already finished")
)

// command names
const (
	CmdLetter = "letter"
	CmdDigit  = "digit"
	CmdSpace  = "space"
	CmdChar   = "char"
	CmdReset  = "reset"
	CmdShow   = "show"
	CmdDone   = "done"
	CmdHelp   = "help"
)

// menuChoices maps the numbered menu entries to commands.
var menuChoices = map[string]string{
	"1": CmdLetter,
	"2": CmdDigit,
	"3": CmdSpace,
	"4": CmdChar,
	"5": CmdDone,
}

// Menu is the numbered menu shown to the user.
const Menu = `Select an option:
1. Letter
2. Digit
3. Space
4. Specific character
5. Finish`

type Action int

const (
	ActionAdded         Action = iota // a token was appended
	ActionAwaitLiteral                // the next line is taken as the literal character
	ActionReset                       // the buffer was cleared
	ActionShow                        // nothing changed, Plain holds the current pattern
	ActionHelp                        // nothing changed, the caller should show Menu
	ActionDone                        // building finished
)

// Result describes what Apply did.
type Result struct {
	Action  Action
	Command string
	// Plain is the plain form of the pattern after the command.
	Plain string
}

// Session owns one builder. It is not safe for concurrent use.
type Session struct {
	logger   *zap.Logger
	builder  *pattern.Builder
	commands *trie.Trie

	awaitingLiteral bool
	done            bool
}

// New returns a session with an empty builder. A nil logger discards logs.
func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		logger:   logger,
		builder:  pattern.NewBuilder(),
		commands: trie.New(CmdLetter, CmdDigit, CmdSpace, CmdChar, CmdReset, CmdShow, CmdDone, CmdHelp),
	}
}

// Apply executes one input line.
//
// After "char" with no argument the session waits for the literal: the next
// line, untrimmed, must be exactly one character. A bad literal leaves the
// session waiting.
func (s *Session) Apply(line string) (Result, error) {
	if s.done {
		return Result{}, ErrFinished
	}
	if s.awaitingLiteral {
		if err := s.builder.AddLiteral(line); err != nil {
			s.logger.Debug("Rejected literal", zap.String("input", line), zap.Error(err))
			return Result{Action: ActionAwaitLiteral, Command: CmdChar, Plain: s.builder.Plain()}, err
		}
		s.awaitingLiteral = false
		return s.result(ActionAdded, CmdChar), nil
	}

	word, arg := splitCommand(line)
	cmd, err := s.resolve(word)
	if err != nil {
		s.logger.Debug("Unresolved command", zap.String("input", word), zap.Error(err))
		return Result{Plain: s.builder.Plain()}, err
	}
	s.logger.Debug("Applying command", zap.String("command", cmd), zap.String("arg", arg))

	switch cmd {
	case CmdLetter:
		s.builder.AddLetter()
	case CmdDigit:
		s.builder.AddDigit()
	case CmdSpace:
		s.builder.AddWhitespace()
	case CmdChar:
		if arg == "" {
			s.awaitingLiteral = true
			return s.result(ActionAwaitLiteral, cmd), nil
		}
		if err := s.builder.AddLiteral(arg); err != nil {
			return Result{Command: cmd, Plain: s.builder.Plain()}, err
		}
	case CmdReset:
		s.builder.Reset()
		return s.result(ActionReset, cmd), nil
	case CmdShow:
		return s.result(ActionShow, cmd), nil
	case CmdHelp:
		return s.result(ActionHelp, cmd), nil
	case CmdDone:
		s.done = true
		s.logger.Info("Pattern finished", zap.String("pattern", s.builder.Plain()), zap.Int("tokens", s.builder.Len()))
		return s.result(ActionDone, cmd), nil
	}
	return s.result(ActionAdded, cmd), nil
}

// Spec snapshots the pattern built so far.
func (s *Session) Spec() pattern.Spec {
	return s.builder.Snapshot()
}

// Plain returns the plain form of the pattern built so far.
func (s *Session) Plain() string {
	return s.builder.Plain()
}

// AwaitingLiteral reports whether the next line is read as a literal.
func (s *Session) AwaitingLiteral() bool { return s.awaitingLiteral }

// Done reports whether the done command was applied.
func (s *Session) Done() bool { return s.done }

func (s *Session) result(a Action, cmd string) Result {
	return Result{Action: a, Command: cmd, Plain: s.builder.Plain()}
}

func (s *Session) resolve(word string) (string, error) {
	w := strings.ToLower(word)
	if cmd, ok := menuChoices[w]; ok {
		return cmd, nil
	}
	cmd, candidates, ok := s.commands.Resolve(w)
	if ok {
		return cmd, nil
	}
	if len(candidates) > 1 {
		return "", fmt.Errorf("%w %q: could be %s", ErrAmbiguousCommand, word, strings.Join(candidates, ", "))
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCommand, word)
}

// splitCommand separates the command word from its argument. The argument
// is everything after the first space, so "char  " yields a space literal.
func splitCommand(line string) (word, arg string) {
	line = strings.TrimLeft(line, " \t")
	line = strings.TrimRight(line, "\r\n")
	word, arg, _ = strings.Cut(line, " ")
	return word, arg
}
