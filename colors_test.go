package scope

import (
	"image/color"
	"testing"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		Input string
		Want  string
		Fail  bool
	}{
		{Input: "blue", Want: "#0000ff"},
		{Input: " Red ", Want: "#ff0000"},
		{Input: "C0", Want: "#1f77b4"},
		{Input: "t1", Want: "#f28e2c"},
		{Input: "#ABCDEF", Want: "#abcdef"},
		{Input: "#12345", Fail: true},
		{Input: "#zzzzzz", Fail: true},
		{Input: "cx", Fail: true},
		{Input: "nope", Fail: true},
	}
	for _, tt := range tests {
		got, err := ResolveColor(tt.Input)
		if tt.Fail {
			if err == nil {
				t.Errorf("%q: expected error, got %s", tt.Input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %s", tt.Input, err)
			continue
		}
		if got != tt.Want {
			t.Errorf("%q: got %s, want %s", tt.Input, got, tt.Want)
		}
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("blue")
	if err != nil {
		t.Fatal(err)
	}
	want := color.RGBA{B: 0xff, A: 0xff}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestShape(t *testing.T) {
	for _, name := range []string{"", "circle", "square", "diamond"} {
		if _, err := Shape(name); err != nil {
			t.Errorf("%q: unexpected error: %s", name, err)
		}
	}
	if _, err := Shape("star"); err == nil {
		t.Errorf("star: expected error")
	}
}
