package montage

import "sync"

// A step derives one label: the point at frac of the arc from anchor a to
// anchor b on the circle through aux. All three anchors must already be
// placed when the step runs. Fractions beyond 1 extrapolate past b.
type step struct {
	label string
	a     string
	b     string
	aux   string
	frac  float64
}

// anchorFor maps an equator convention to the labels pinned at the five
// cardinal positions front (0,1,0), right (1,0,0), back (0,-1,0),
// left (-1,0,0) and top (0,0,1).
type anchors struct {
	front, right, back, left, top string
}

func anchorsFor(eq Equator) anchors {
	if eq == EquatorFpz {
		return anchors{front: "Fpz", right: "T8", back: "Oz", left: "T7", top: "Cz"}
	}
	return anchors{front: "Nz", right: "T10", back: "Iz", left: "T9", top: "Cz"}
}

// contourSteps expands a contour into derivation steps for its interior
// labels. Start, end and midpoint anchors must already exist; already
// placed labels are skipped at execution time (keep-first).
func contourSteps(contour []string) []step {
	n := len(contour)
	a, b, aux := contour[0], contour[n-1], contour[n/2]
	steps := make([]step, 0, n-2)
	for i := 1; i < n-1; i++ {
		steps = append(steps, step{
			label: contour[i],
			a:     a,
			b:     b,
			aux:   aux,
			frac:  float64(i) / float64(n-1),
		})
	}
	return steps
}

// nzContourOrder draws everything on or above the equator: the two midline
// contours, the equator halves, the 5% and 10% ring halves, then the 14
// row contours between the rings.
var nzContourOrder = [][]string{
	contourSagittal,
	contourCoronal,
	contourEquatorLeft,
	contourEquatorRight,
	contourRing5Left,
	contourRing5Right,
	contourRing10Left,
	contourRing10Right,
	contourRowAFp, contourRowAF, contourRowAFF, contourRowF,
	contourRowFFC, contourRowFC, contourRowFCC,
	contourRowCCP, contourRowCP, contourRowCPP,
	contourRowP, contourRowPPO, contourRowPO, contourRowPOO,
}

// fpzEarlyContours can be drawn directly from the Fpz/T8/Oz/T7/Cz anchors:
// the 17-label midline and coronal arcs, the equator (the 10% ring of the
// Nz convention), and the rows between.
var fpzEarlyContours = [][]string{
	contourSagittal[2:19], // Fpz .. Oz
	contourCoronal[2:19],  // T7 .. T8
	contourRing10Left,
	contourRing10Right,
	contourRowAFp, contourRowAF, contourRowAFF, contourRowF,
	contourRowFFC, contourRowFC, contourRowFCC,
	contourRowCCP, contourRowCP, contourRowCPP,
	contourRowP, contourRowPPO, contourRowPO, contourRowPOO,
}

// fpzLateContours need the below-equator anchors and are drawn after the
// extrapolation steps placed them.
var fpzLateContours = [][]string{
	contourEquatorLeft,
	contourEquatorRight,
	contourRing5Left,
	contourRing5Right,
}

// extrapolationStep is one 5% slice of a 16-interval half circle. In the
// Fpz convention the lowest two rings sit below the equator, one and two
// slices past the end of the on-sphere arcs.
const extrapolationStep = 1.0 / 16

// fpzExtrapolations places the eight below-equator anchors by continuing
// the midline and coronal circles past their equator endpoints.
func fpzExtrapolations(anc anchors) []step {
	return []step{
		{label: "OIz", a: anc.front, b: anc.back, aux: anc.top, frac: 1 + extrapolationStep},
		{label: "Iz", a: anc.front, b: anc.back, aux: anc.top, frac: 1 + 2*extrapolationStep},
		{label: "NFpz", a: anc.back, b: anc.front, aux: anc.top, frac: 1 + extrapolationStep},
		{label: "Nz", a: anc.back, b: anc.front, aux: anc.top, frac: 1 + 2*extrapolationStep},
		{label: "T10h", a: anc.left, b: anc.right, aux: anc.top, frac: 1 + extrapolationStep},
		{label: "T10", a: anc.left, b: anc.right, aux: anc.top, frac: 1 + 2*extrapolationStep},
		{label: "T9h", a: anc.right, b: anc.left, aux: anc.top, frac: 1 + extrapolationStep},
		{label: "T9", a: anc.right, b: anc.left, aux: anc.top, frac: 1 + 2*extrapolationStep},
	}
}

// buildPlan assembles the full ordered derivation plan for an equator
// convention. The plan is deterministic; executing it yields every 10-05
// label exactly once (keep-first on shared contour endpoints).
func buildPlan(eq Equator) []step {
	var plan []step
	switch eq {
	case EquatorFpz:
		for _, c := range fpzEarlyContours {
			plan = append(plan, contourSteps(c)...)
		}
		plan = append(plan, fpzExtrapolations(anchorsFor(eq))...)
		for _, c := range fpzLateContours {
			plan = append(plan, contourSteps(c)...)
		}
	default:
		for _, c := range nzContourOrder {
			plan = append(plan, contourSteps(c)...)
		}
	}
	return plan
}

var planCache sync.Map // Equator -> []step

func planFor(eq Equator) []step {
	if v, ok := planCache.Load(eq); ok {
		return v.([]step)
	}
	p := buildPlan(eq)
	planCache.Store(eq, p)
	return p
}

// ============================================================================
// Derived label sets
// ============================================================================

var system1005Once = sync.OnceValue(func() []string {
	anc := anchorsFor(EquatorNz)
	seen := map[string]bool{
		anc.front: true, anc.right: true, anc.back: true, anc.left: true, anc.top: true,
	}
	labels := []string{anc.front, anc.right, anc.back, anc.left, anc.top}
	for _, c := range nzContourOrder {
		for _, l := range c {
			if !seen[l] {
				seen[l] = true
				labels = append(labels, l)
			}
		}
	}
	return labels
})

// system1005Labels returns all 345 labels of the 10-05 system in the order
// they are first placed by the Nz-equator plan.
func system1005Labels() []string {
	return append([]string(nil), system1005Once()...)
}

var canonicalSetOnce = sync.OnceValue(func() map[string]bool {
	set := make(map[string]bool, 345)
	for _, l := range system1005Once() {
		set[l] = true
	}
	return set
})

// isCanonical reports whether label is one of the 345 canonical 10-05
// electrode labels (landmarks and aliases excluded).
func isCanonical(label string) bool {
	return canonicalSetOnce()[label]
}

// ============================================================================
// Recipes
// ============================================================================

// Recipe describes how a label's position is derived: the point at Frac of
// the arc from Start to End on the circle through Aux. Anchor labels pinned
// directly to cardinal positions have no recipe.
type Recipe struct {
	Start string
	End   string
	Aux   string
	Frac  float64
}

var recipeCache sync.Map // Equator -> map[string]Recipe

// RecipeFor returns the derivation recipe of a canonical label under the
// given equator convention. The second return is false for anchor labels
// and unknown labels.
func RecipeFor(label string, eq Equator) (Recipe, bool) {
	v, ok := recipeCache.Load(eq)
	if !ok {
		m := make(map[string]Recipe, 345)
		anc := anchorsFor(eq)
		placed := map[string]bool{
			anc.front: true, anc.right: true, anc.back: true, anc.left: true, anc.top: true,
		}
		for _, s := range planFor(eq) {
			if placed[s.label] {
				continue
			}
			placed[s.label] = true
			m[s.label] = Recipe{Start: s.a, End: s.b, Aux: s.aux, Frac: s.frac}
		}
		v, _ = recipeCache.LoadOrStore(eq, m)
	}
	r, ok := v.(map[string]Recipe)[label]
	return r, ok
}
