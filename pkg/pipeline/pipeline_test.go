package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/neurolab/eegpos/pkg/cache"
	"github.com/neurolab/eegpos/pkg/errors"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestTableOptionsDefaults(t *testing.T) {
	opts := TableOptions{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Density != "10-05" || opts.Equator != "Nz-T10-Iz-T9" {
		t.Errorf("defaults = %s / %s", opts.Density, opts.Equator)
	}
	if opts.Dimensions != 3 || opts.Precision != 4 || opts.Format != "tsv" {
		t.Errorf("defaults = dim %d, precision %d, format %s", opts.Dimensions, opts.Precision, opts.Format)
	}
}

func TestTableOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts TableOptions
		code errors.Code
	}{
		{"bad density", TableOptions{Density: "10-40"}, errors.ErrCodeInvalidDensity},
		{"bad equator", TableOptions{Equator: "Cz-T8"}, errors.ErrCodeInvalidEquator},
		{"bad dimensions", TableOptions{Dimensions: 4}, errors.ErrCodeInvalidInput},
		{"bad format", TableOptions{Format: "xml"}, errors.ErrCodeInvalidFormat},
		{"bad precision", TableOptions{Precision: 99}, errors.ErrCodeInvalidInput},
		{"bad name", TableOptions{Names: []string{"C z"}}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRunnerTable(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	data, hit, err := r.Table(ctx, TableOptions{Density: "10-20", DropLandmarks: true})
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if hit {
		t.Error("first request should be a cache miss")
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 22 {
		t.Errorf("%d lines, want 22", len(lines))
	}
	if lines[0] != "label\tx\ty\tz" {
		t.Errorf("header = %q", lines[0])
	}

	// Second request hits the cache with identical bytes.
	again, hit, err := r.Table(ctx, TableOptions{Density: "10-20", DropLandmarks: true})
	if err != nil {
		t.Fatalf("Table (cached): %v", err)
	}
	if !hit {
		t.Error("second request should be a cache hit")
	}
	if !bytes.Equal(data, again) {
		t.Error("cached bytes differ from computed bytes")
	}

	// Refresh bypasses the cache but recomputes identically.
	fresh, hit, err := r.Table(ctx, TableOptions{Density: "10-20", DropLandmarks: true, Refresh: true})
	if err != nil {
		t.Fatalf("Table (refresh): %v", err)
	}
	if hit {
		t.Error("refresh should not report a cache hit")
	}
	if !bytes.Equal(data, fresh) {
		t.Error("refreshed bytes differ from original")
	}
}

func TestRunnerTable2D(t *testing.T) {
	r := newTestRunner(t)
	data, _, err := r.Table(context.Background(), TableOptions{
		Density:       "10-20",
		Dimensions:    2,
		DropLandmarks: true,
	})
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if lines[0] != "label\tx\ty" {
		t.Errorf("2D header = %q", lines[0])
	}
}

func TestRunnerTableJSON(t *testing.T) {
	r := newTestRunner(t)
	data, _, err := r.Table(context.Background(), TableOptions{Density: "10-20", Format: "json"})
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if !bytes.Contains(data, []byte(`"electrodes"`)) {
		t.Errorf("JSON output missing electrodes field: %s", data)
	}
}

func TestRunnerTableNames(t *testing.T) {
	r := newTestRunner(t)
	data, _, err := r.Table(context.Background(), TableOptions{Names: []string{"Cz", "M1"}})
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "Cz\t") || !strings.Contains(s, "M1\t") {
		t.Errorf("selection output missing labels:\n%s", s)
	}
	if strings.Count(s, "\n") != 3 {
		t.Errorf("want header + 2 rows:\n%s", s)
	}
}

func TestRunnerMapDOT(t *testing.T) {
	r := newTestRunner(t)
	data, hit, err := r.Map(context.Background(), MapOptions{Format: "dot", ShowNames: true})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if hit {
		t.Error("first render should be a cache miss")
	}
	dot := string(data)
	if !strings.Contains(dot, "layout=neato") || !strings.Contains(dot, `"Cz"`) {
		t.Errorf("unexpected DOT output:\n%s", dot)
	}

	_, hit, err = r.Map(context.Background(), MapOptions{Format: "dot", ShowNames: true})
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("second render should be a cache hit")
	}
}

func TestRunnerMapValidation(t *testing.T) {
	r := newTestRunner(t)
	_, _, err := r.Map(context.Background(), MapOptions{Format: "gif"})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestNewRunnerNilDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Error("NewRunner should default nil collaborators")
	}
	if _, _, err := r.Table(context.Background(), TableOptions{Density: "10-20"}); err != nil {
		t.Errorf("Table with null cache: %v", err)
	}
}
