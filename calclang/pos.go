package calclang

import (
	"fmt"
	"unicode/utf8"
)

// Pos is a location in a Source.
// Offset is in bytes, Line and Column are zero-indexed, Column counts runes.
type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}

// Advance returns the position after consuming r.
func (p Pos) Advance(r rune) Pos {
	if n := utf8.RuneLen(r); n > 0 {
		p.Offset += n
	} else {
		p.Offset++
	}
	if r == '\n' {
		p.Line++
		p.Column = 0
	} else {
		p.Column++
	}
	return p
}

func (p Pos) SourceName() string {
	if p.Source == nil {
		return ""
	}
	return p.Source.Name
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.SourceName(), p.Line+1, p.Column+1)
}
