package calclang

import "testing"

func TestPosAdvance(t *testing.T) {
	source := NewSource("test", "a\nbé")
	start := Pos{
		Source: source,
	}

	pos := start.Advance('a')
	if pos.Offset != 1 || pos.Line != 0 || pos.Column != 1 {
		t.Fatalf("got %+v", pos)
	}
	if start.Offset != 0 || start.Column != 0 {
		t.Fatalf("advance mutated the original: %+v", start)
	}

	pos = pos.Advance('\n')
	if pos.Offset != 2 || pos.Line != 1 || pos.Column != 0 {
		t.Fatalf("got %+v", pos)
	}

	pos = pos.Advance('b').Advance('é')
	if pos.Offset != 5 || pos.Line != 1 || pos.Column != 2 {
		t.Fatalf("got %+v", pos)
	}

	if str := pos.String(); str != "test:2:3" {
		t.Fatalf("got %s", str)
	}
}

func TestPosWithoutSource(t *testing.T) {
	var pos Pos
	if name := pos.SourceName(); name != "" {
		t.Fatalf("got %q", name)
	}
	if str := pos.String(); str != ":1:1" {
		t.Fatalf("got %s", str)
	}
}

func TestNewSource(t *testing.T) {
	source := NewSource("foo", "1\n2\n")
	if len(source.Lines) != 3 {
		t.Fatalf("got %v", source.Lines)
	}
	if source.Lines[1] != "2" {
		t.Fatalf("got %q", source.Lines[1])
	}
}
