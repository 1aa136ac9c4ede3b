package fmbell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/midbel/scope/sample"
)

func TestHarnessRun(t *testing.T) {
	h := DefaultHarness()
	h.Samples = 1000

	var buf bytes.Buffer
	if err := h.Run(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want 11", len(lines))
	}
	if !strings.HasPrefix(lines[0], "#") {
		t.Errorf("first line should be a comment: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "100, ") {
		t.Errorf("unexpected line layout: %q", lines[2])
	}

	points, stats, err := sample.ReadAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 10 || stats.Comments != 1 || stats.Dropped != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	for i, pt := range points {
		if pt.Index != i*100 {
			t.Errorf("point %d: index %d, want %d", i, pt.Index, i*100)
		}
	}
	if points[0].Value != 0 {
		t.Errorf("first sample = %g, want 0", points[0].Value)
	}
}

func TestHarnessValidate(t *testing.T) {
	tests := []func(*Harness){
		func(h *Harness) { h.Samples = -1 },
		func(h *Harness) { h.Block = 0 },
		func(h *Harness) { h.Every = 0 },
		func(h *Harness) { h.Note = 200 },
	}
	for i, change := range tests {
		h := DefaultHarness()
		change(&h)
		if err := h.Run(&bytes.Buffer{}); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}

	h := DefaultHarness()
	h.Params = append(h.Params, Param{Index: 99, Value: 1})
	if err := h.Run(&bytes.Buffer{}); !errors.Is(err, ErrParam) {
		t.Errorf("got %v, want ErrParam", err)
	}
}

func TestHarnessNoSamples(t *testing.T) {
	h := DefaultHarness()
	h.Samples = 0

	var buf bytes.Buffer
	if err := h.Run(&buf); err != nil {
		t.Fatal(err)
	}
	points, _, err := sample.ReadAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 0 {
		t.Errorf("got %d points, want none", len(points))
	}
}
