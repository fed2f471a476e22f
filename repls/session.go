package repls

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/calc/calcconfigs"
	"github.com/reusee/calc/calclang"
	"github.com/reusee/calc/debugs"
	"github.com/reusee/calc/logs"
	"github.com/reusee/dscope"
	"github.com/samber/lo"
)

var ErrQuit = errors.New("quit")

const help = `expressions: numbers, + - * / ^ and parentheses
:tokens <expr>  print the token stream
:ast <expr>     print the expression tree
:tap            inspect the last evaluation in a starlark REPL
:help           print this help
:quit           exit`

// Session evaluates input lines and keeps the pipeline state of the last one.
type Session struct {
	SourceName  dscope.Inject[calcconfigs.SourceName]
	ShowContext dscope.Inject[calcconfigs.ShowContext]
	Logger      dscope.Inject[logs.Logger]
	NewSpan     dscope.Inject[logs.NewSpan]
	Tap         dscope.Inject[debugs.Tap]

	last Snapshot
}

// Snapshot holds the stage outputs of one evaluation.
// Stages after a failing one are left zero.
type Snapshot struct {
	Input  string
	Tokens []calclang.Token
	Tree   calclang.Node
	Value  calclang.Value
	Err    error
}

type NewSession func() *Session

func (Module) NewSession(
	inject dscope.InjectStruct,
) NewSession {
	return func() *Session {
		session := new(Session)
		inject(session)
		return session
	}
}

func (s *Session) Last() Snapshot {
	return s.last
}

// Eval handles one line and returns the text to print.
func (s *Session) Eval(ctx context.Context, line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", nil
	}
	if !strings.HasPrefix(trimmed, ":") {
		return s.Evaluate(ctx, line)
	}

	command, arg, _ := strings.Cut(trimmed, " ")
	switch command {

	case ":quit", ":q":
		return "", ErrQuit

	case ":help":
		return help, nil

	case ":tokens":
		tokens, err := calclang.Tokenize(string(s.SourceName()), arg)
		if err != nil {
			return "", err
		}
		return strings.Join(lo.Map(tokens, func(tok calclang.Token, _ int) string {
			return tok.String()
		}), " "), nil

	case ":ast":
		node, err := calclang.Compile(string(s.SourceName()), arg)
		if err != nil {
			return "", err
		}
		return node.String(), nil

	case ":tap":
		s.Tap()(ctx, "last evaluation", map[string]any{
			"input":  s.last.Input,
			"tokens": s.last.Tokens,
			"ast":    s.last.Tree,
			"value":  s.last.Value,
			"error":  s.last.Err,
			"format": calclang.Format,
		})
		return "", nil

	}

	return "", fmt.Errorf("unknown command: %s, try :help", command)
}

// Evaluate runs line through the whole pipeline without meta command handling.
func (s *Session) Evaluate(ctx context.Context, line string) (_ string, err error) {
	ctx, _ = s.NewSpan()(ctx, "")
	logger := s.Logger()
	logger.DebugContext(ctx, "evaluate", "input", line)

	snapshot := Snapshot{
		Input: line,
	}
	defer func() {
		snapshot.Err = err
		s.last = snapshot
		if err != nil {
			logger.DebugContext(ctx, "evaluate failed", "error", err)
		}
	}()

	snapshot.Tokens, err = calclang.Tokenize(string(s.SourceName()), line)
	if err != nil {
		return "", err
	}
	snapshot.Tree, err = calclang.Parse(snapshot.Tokens)
	if err != nil {
		return "", err
	}
	snapshot.Value, err = calclang.Evaluate(snapshot.Tree)
	if err != nil {
		return "", err
	}

	result := calclang.Format(snapshot.Value.Number)
	logger.DebugContext(ctx, "evaluated",
		"tokens", len(snapshot.Tokens),
		"result", result,
	)
	return result, nil
}

// FormatError renders err for display, with the source context when configured.
func (s *Session) FormatError(err error) string {
	msg := err.Error()
	var e *calclang.Error
	if bool(s.ShowContext()) && errors.As(err, &e) {
		if ctx := e.Context(); ctx != "" {
			msg += "\n" + strings.TrimSuffix(ctx, "\n")
		}
	}
	return msg
}
