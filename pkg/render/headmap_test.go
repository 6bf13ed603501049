package render

import (
	"strings"
	"testing"

	"github.com/neurolab/eegpos/pkg/montage"
	"github.com/neurolab/eegpos/pkg/sphere"
)

func projected(t *testing.T) []montage.FlatPoint {
	t.Helper()
	sys, err := montage.Compute(montage.Options{
		Density:       montage.Density1020,
		DropLandmarks: true,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	flat, err := sys.Project(sphere.DefaultPole)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	return flat
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(projected(t), Options{ShowNames: true})

	for _, want := range []string{
		"graph headmap {",
		"layout=neato;",
		"head [shape=circle",
		"nose [shape=triangle",
		`"Cz" [pos="0.0000,0.0000!", xlabel="Cz"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	// One pinned node per electrode.
	if got := strings.Count(dot, "!\""); got != 21+2 {
		t.Errorf("%d pinned nodes, want 23 (21 electrodes + head + nose)", got)
	}
}

func TestToDOTWithoutNames(t *testing.T) {
	dot := ToDOT(projected(t), Options{})
	if strings.Contains(dot, "xlabel=") {
		t.Error("DOT contains labels despite ShowNames=false")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	flat := projected(t)
	first := ToDOT(flat, Options{ShowNames: true})
	for i := 0; i < 3; i++ {
		if again := ToDOT(flat, Options{ShowNames: true}); again != first {
			t.Fatalf("run %d produced different DOT", i)
		}
	}
}
