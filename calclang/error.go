package calclang

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

type ErrorKind uint8

const (
	IllegalCharacter ErrorKind = iota + 1
	InvalidSyntax
	DivisionByZero
	UndefinedResult
)

var errorKindNames = map[ErrorKind]string{
	IllegalCharacter: "Illegal Character",
	InvalidSyntax:    "Invalid Syntax",
	DivisionByZero:   "Division By Zero",
	UndefinedResult:  "Undefined Result",
}

// Error implements error so kinds can be matched with errors.Is.
func (k ErrorKind) Error() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is a fault detected at a source position by one of the pipeline stages.
type Error struct {
	Kind    ErrorKind
	Details string
	Pos     Pos
}

var _ error = new(Error)

func newError(kind ErrorKind, pos Pos, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Details: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s\nFile: %s at line: %d", e.Kind.Error(), e.Details, e.Pos.SourceName(), e.Pos.Line+1)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Context renders the offending line with a caret under the error column.
// It returns an empty string when the position has no source line.
func (e *Error) Context() string {
	if e.Pos.Source == nil {
		return ""
	}
	lines := e.Pos.Source.Lines
	if e.Pos.Line < 0 || e.Pos.Line >= len(lines) {
		return ""
	}
	line := lines[e.Pos.Line]

	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteString("\n")
	col := 0
	for _, r := range line {
		if col >= e.Pos.Column {
			break
		}
		col++
		if r == '\t' {
			sb.WriteString("\t")
			continue
		}
		for range runeWidth(r) {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^\n")
	return sb.String()
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
