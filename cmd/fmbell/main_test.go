package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/midbel/scope/sample"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"fmbell", "-samples", "480", "-every", "48", "-vibrato", "300", "-fine", "600"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %s", err)
	}
	points, stats, err := sample.ReadAll(&stdout)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 10 || stats.Dropped != 0 {
		t.Errorf("got %d points (%d dropped), want 10", len(points), stats.Dropped)
	}
	if stats.Min < -1 || stats.Max > 1 {
		t.Errorf("amplitude out of range: [%g, %g]", stats.Min, stats.Max)
	}
}

func TestRunInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"fmbell", "-note", "300"},
		{"fmbell", "-every", "0"},
		{"fmbell", "-bogus"},
	} {
		var stdout, stderr bytes.Buffer
		if err := run(args, &stdout, &stderr); err == nil {
			t.Errorf("%s: expected error", strings.Join(args[1:], " "))
		}
	}
}
