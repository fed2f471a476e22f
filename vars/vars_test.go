package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero("", "a", "b"); v != "a" {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero(0, 0); v != 0 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[string](); v != "" {
		t.Fatalf("got %v", v)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Yes":   true,
		" on ":  true,
		"1":     true,
		"false": false,
		"no":    false,
		"":      false,
		"foo":   false,
	} {
		if v := StrToBool(str); v != expected {
			t.Fatalf("%q: got %v", str, v)
		}
	}
}
