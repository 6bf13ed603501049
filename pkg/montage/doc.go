// Package montage computes idealized EEG electrode positions on a unit
// sphere for the standard 10-20, 10-10 and 10-05 systems.
//
// Positions are derived, not tabulated: five cardinal anchors are pinned to
// the sphere (front, back, left, right, vertex) and every other label is
// placed at a fixed fraction along a contour through already-placed labels,
// using [github.com/neurolab/eegpos/pkg/sphere.FindPointAtFraction]. The
// derivation plan is declarative (see the contour tables in labels.go) and
// deterministic.
//
// Two equator conventions are supported. With [EquatorNz] the ring through
// the nasion (Nz-T10-Iz-T9) sits at z = 0 and all electrodes are on or
// above the equator. With [EquatorFpz] the ring through Fpz (Fpz-T8-Oz-T7)
// is the equator and the two lowest rings are extrapolated below it, which
// better matches physical cap geometry. Neither convention is preferred;
// both produce all 345 labels.
//
// The main entry point is [Compute]:
//
//	sys, err := montage.Compute(montage.Options{Density: montage.Density1010})
//	if err != nil { ... }
//	cz, _ := sys.Get("Cz") // (0, 0, 1)
//
// Results include the NAS/LPA/RPA fiducial landmarks unless dropped, and
// legacy names (A1, M1, T3, ...) resolve through the alias table.
package montage
