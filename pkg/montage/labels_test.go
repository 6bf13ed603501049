package montage

import (
	"errors"
	"testing"
)

func TestContourLengths(t *testing.T) {
	for i, c := range nzContourOrder {
		if n := len(c); n != 17 && n != 21 {
			t.Errorf("contour %d: length %d, want 17 or 21", i, n)
		}
	}
}

func TestContourMidpointsAreAnchorsOrEarlier(t *testing.T) {
	// Every contour's start, end and midpoint must be placed before the
	// contour is drawn, otherwise the plan cannot execute.
	anc := anchorsFor(EquatorNz)
	placed := map[string]bool{
		anc.front: true, anc.right: true, anc.back: true, anc.left: true, anc.top: true,
	}
	for i, c := range nzContourOrder {
		for _, ref := range []string{c[0], c[len(c)-1], c[len(c)/2]} {
			if !placed[ref] {
				t.Errorf("contour %d: reference %s not placed before use", i, ref)
			}
		}
		for _, l := range c {
			placed[l] = true
		}
	}
}

func TestSystemSizes(t *testing.T) {
	tests := []struct {
		density Density
		want    int
	}{
		{Density1020, 21},
		{Density1010, 71},
		{Density1005, 345},
	}
	for _, tt := range tests {
		labels, err := SystemLabels(tt.density)
		if err != nil {
			t.Fatalf("SystemLabels(%s): %v", tt.density, err)
		}
		if len(labels) != tt.want {
			t.Errorf("SystemLabels(%s): %d labels, want %d", tt.density, len(labels), tt.want)
		}
		seen := map[string]bool{}
		for _, l := range labels {
			if seen[l] {
				t.Errorf("SystemLabels(%s): duplicate label %s", tt.density, l)
			}
			seen[l] = true
		}
	}
}

func TestSystemsAreCumulative(t *testing.T) {
	labels1010, _ := SystemLabels(Density1010)
	in1010 := map[string]bool{}
	for _, l := range labels1010 {
		in1010[l] = true
	}
	for _, l := range system1020 {
		if !in1010[l] {
			t.Errorf("10-20 label %s missing from 10-10", l)
		}
	}
	for _, l := range labels1010 {
		if !isCanonical(l) {
			t.Errorf("10-10 label %s missing from 10-05", l)
		}
	}
}

func TestParseDensity(t *testing.T) {
	tests := []struct {
		in   string
		want Density
	}{
		{"10-20", Density1020},
		{"1020", Density1020},
		{"10-10", Density1010},
		{"10-05", Density1005},
		{"1005", Density1005},
	}
	for _, tt := range tests {
		got, err := ParseDensity(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseDensity(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	var invErr *InvalidDensityLevelError
	if _, err := ParseDensity("10-42"); !errors.As(err, &invErr) {
		t.Errorf("ParseDensity(10-42) error = %v, want InvalidDensityLevelError", err)
	}
}

func TestParseEquator(t *testing.T) {
	if len(Equators()) != 2 {
		t.Fatalf("Equators() = %v, want two conventions", Equators())
	}
	for _, eq := range Equators() {
		got, err := ParseEquator(string(eq))
		if err != nil || got != eq {
			t.Errorf("ParseEquator(%q) = %v, %v", eq, got, err)
		}
	}
	var invErr *InvalidEquatorChoiceError
	if _, err := ParseEquator("Cz-T8-Oz-T7"); !errors.As(err, &invErr) {
		t.Errorf("ParseEquator error = %v, want InvalidEquatorChoiceError", err)
	}
}

func TestRecipeFor(t *testing.T) {
	// Fz is 30% of the way from nasion to inion on the midline.
	r, ok := RecipeFor("Fz", EquatorNz)
	if !ok {
		t.Fatal("RecipeFor(Fz): no recipe")
	}
	want := Recipe{Start: "Nz", End: "Iz", Aux: "Cz", Frac: 0.3}
	if r != want {
		t.Errorf("RecipeFor(Fz) = %+v, want %+v", r, want)
	}

	// Anchors are pinned, not derived.
	for _, anchor := range []string{"Nz", "Iz", "T9", "T10", "Cz"} {
		if _, ok := RecipeFor(anchor, EquatorNz); ok {
			t.Errorf("RecipeFor(%s): anchor should have no recipe", anchor)
		}
	}

	// Under the Fpz convention the nasion itself is extrapolated.
	r, ok = RecipeFor("Nz", EquatorFpz)
	if !ok {
		t.Fatal("RecipeFor(Nz, Fpz equator): no recipe")
	}
	if r.Frac <= 1 {
		t.Errorf("RecipeFor(Nz, Fpz equator): frac = %v, want > 1", r.Frac)
	}

	if _, ok := RecipeFor("XYZ", EquatorNz); ok {
		t.Error("RecipeFor(XYZ): unexpected recipe for unknown label")
	}
}

func TestAliases(t *testing.T) {
	want := map[string]string{
		"A1": "LPA", "A2": "RPA",
		"M1": "TP9", "M2": "TP10",
		"T3": "T7", "T4": "T8", "T5": "P7", "T6": "P8",
	}
	got := Aliases()
	if len(got) != len(want) {
		t.Fatalf("Aliases() has %d entries, want %d", len(got), len(want))
	}
	for alias, canonical := range want {
		if got[alias] != canonical {
			t.Errorf("Aliases()[%s] = %s, want %s", alias, got[alias], canonical)
		}
	}
	if Canonical("T3") != "T7" || Canonical("Cz") != "Cz" {
		t.Error("Canonical resolution broken")
	}
}
