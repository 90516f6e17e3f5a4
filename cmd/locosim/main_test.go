package main

import (
	"path/filepath"
	"testing"

	"github.com/automoto/stride/locomotion"
)

func TestRunAll(t *testing.T) {
	paths := []string{
		filepath.Join("testdata", "walk_then_jump.yaml"),
		filepath.Join("testdata", "walk_then_jump.yaml"),
	}
	traces, err := runAll(paths, locomotion.DefaultTuning())
	if err != nil {
		t.Fatalf("runAll() error = %v", err)
	}
	if len(traces) != 2 {
		t.Fatalf("len(traces) = %d", len(traces))
	}
	for _, tr := range traces {
		if tr.Script != "walk then jump" {
			t.Errorf("Script = %q", tr.Script)
		}
		if len(tr.Samples) != 71 {
			t.Errorf("len(Samples) = %d, want 71", len(tr.Samples))
		}
	}
	if traces[0].Samples[70] != traces[1].Samples[70] {
		t.Errorf("runs of the same script diverged")
	}
}

func TestRunAllMissingScript(t *testing.T) {
	if _, err := runAll([]string{"testdata/nope.yaml"}, locomotion.DefaultTuning()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadTuningDefault(t *testing.T) {
	got, err := loadTuning("")
	if err != nil {
		t.Fatalf("loadTuning() error = %v", err)
	}
	if got != locomotion.DefaultTuning() {
		t.Errorf("default tuning differs")
	}
}
