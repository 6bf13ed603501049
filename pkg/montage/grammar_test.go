package montage

import (
	"errors"
	"testing"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		row  string
		col  string
		hemi Hemisphere
		half bool
	}{
		{"Cz", "C", "z", Midline, false},
		{"Fpz", "Fp", "z", Midline, false},
		{"Fp1", "Fp", "1", LeftHemisphere, false},
		{"C4h", "C", "4h", RightHemisphere, true},
		{"FTT10h", "FTT", "10h", RightHemisphere, true},
		{"AFp9", "AFp", "9", LeftHemisphere, false},
		{"TPP8", "TPP", "8", RightHemisphere, false},
		{"OIz", "OI", "z", Midline, false},
		{"N1h", "N", "1h", LeftHemisphere, true},
		{"POO7h", "POO", "7h", LeftHemisphere, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLabel(tt.in)
			if err != nil {
				t.Fatalf("ParseLabel: %v", err)
			}
			if got.Row != tt.row || got.Column != tt.col {
				t.Errorf("parsed %s/%s, want %s/%s", got.Row, got.Column, tt.row, tt.col)
			}
			if got.Hemisphere != tt.hemi {
				t.Errorf("hemisphere = %v, want %v", got.Hemisphere, tt.hemi)
			}
			if got.Half() != tt.half {
				t.Errorf("Half() = %v, want %v", got.Half(), tt.half)
			}
		})
	}
}

func TestParseLabelUnknown(t *testing.T) {
	// Aliases and landmarks are resolvable but are not grammar labels.
	for _, in := range []string{"", "Xz", "C11", "cz", "T3", "A1", "NAS", "Fz2"} {
		_, err := ParseLabel(in)
		var unkErr *UnknownLabelError
		if !errors.As(err, &unkErr) {
			t.Errorf("ParseLabel(%q) error = %v, want UnknownLabelError", in, err)
		}
	}
}

func TestEveryCanonicalLabelParses(t *testing.T) {
	labels, err := SystemLabels(Density1005)
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range labels {
		if _, err := ParseLabel(l); err != nil {
			t.Errorf("ParseLabel(%s): %v", l, err)
		}
	}
}

func TestValidLabel(t *testing.T) {
	for _, l := range []string{"Cz", "FTT9h", "NAS", "LPA", "A1", "T6"} {
		if !ValidLabel(l) {
			t.Errorf("ValidLabel(%s) = false, want true", l)
		}
	}
	for _, l := range []string{"", "Cz1", "nas", "B7"} {
		if ValidLabel(l) {
			t.Errorf("ValidLabel(%s) = true, want false", l)
		}
	}
}
