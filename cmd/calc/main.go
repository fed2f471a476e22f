package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/logs"
	"github.com/reusee/calc/modes"
	"github.com/reusee/calc/repls"
	"github.com/reusee/dscope"
)

// oneShot is set by eval, tokens and ast; nil means the interactive loop
var oneShot func(ctx context.Context, session *repls.Session) (string, error)

func init() {
	define := func(name, desc string, fn func(ctx context.Context, session *repls.Session, expr string) (string, error)) {
		cmds.Define(name, cmds.Func(func(args []string) error {
			if len(args) == 0 {
				return errors.New("expression required")
			}
			expr := strings.Join(args, " ")
			oneShot = func(ctx context.Context, session *repls.Session) (string, error) {
				return fn(ctx, session, expr)
			}
			return nil
		}).Desc(desc))
	}

	define("eval", "evaluate the following arguments as one expression",
		func(ctx context.Context, session *repls.Session, expr string) (string, error) {
			return session.Evaluate(ctx, expr)
		})
	define("tokens", "print the tokens of the following expression",
		func(ctx context.Context, session *repls.Session, expr string) (string, error) {
			return session.Eval(ctx, ":tokens "+expr)
		})
	define("ast", "print the tree of the following expression",
		func(ctx context.Context, session *repls.Session, expr string) (string, error) {
			return session.Eval(ctx, ":ast "+expr)
		})

	cmds.Define("repl", cmds.Func(func() {
		oneShot = nil
	}).Desc("start the interactive loop (default)"))
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctx := context.Background()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newSession repls.NewSession,
		loop repls.Loop,
	) {

		if oneShot == nil {
			if err := loop(ctx); err != nil {
				logger.ErrorContext(ctx, "loop", "error", err)
				os.Exit(1)
			}
			return
		}

		session := newSession()
		output, err := oneShot(ctx, session)
		if err != nil {
			fmt.Fprintln(os.Stderr, session.FormatError(err))
			os.Exit(1)
		}
		if output != "" {
			fmt.Println(output)
		}

	})
}
