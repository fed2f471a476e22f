package repls

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/calc/calcconfigs"
	"github.com/reusee/calc/logs"
	"golang.org/x/term"
)

// Loop reads and evaluates lines until input ends or :quit.
type Loop func(ctx context.Context) error

func (Module) Loop(
	newSession NewSession,
	prompt calcconfigs.Prompt,
	historyFile calcconfigs.HistoryFile,
	logger logs.Logger,
) Loop {
	return func(ctx context.Context) error {
		session := newSession()

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			logger.DebugContext(ctx, "stdin is not a terminal, reading lines")
			return session.Serve(ctx, os.Stdin, os.Stdout, os.Stderr)
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
		})
		if err != nil {
			return fmt.Errorf("readline: %w", err)
		}
		defer rl.Close()

		for ctx.Err() == nil {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				return nil
			}
			if !session.handle(ctx, line, rl.Stdout(), rl.Stderr()) {
				return nil
			}
		}
		return ctx.Err()
	}
}

// Serve evaluates each line of r without prompting.
func (s *Session) Serve(ctx context.Context, r io.Reader, stdout, stderr io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if !s.handle(ctx, line, stdout, stderr) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return logs.WrapSpan(ctx, fmt.Errorf("read input: %w", err))
	}
	return nil
}

// handle evaluates one line and prints the outcome.
// It returns false when the loop should end.
func (s *Session) handle(ctx context.Context, line string, stdout, stderr io.Writer) bool {
	output, err := s.Eval(ctx, line)
	if errors.Is(err, ErrQuit) {
		return false
	}
	if err != nil {
		fmt.Fprintln(stderr, s.FormatError(err))
		return true
	}
	if output != "" {
		fmt.Fprintln(stdout, output)
	}
	return true
}
