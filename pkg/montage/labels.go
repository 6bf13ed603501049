package montage

// ============================================================================
// Density levels
// ============================================================================

// Density selects one of the three standard electrode systems. Each level
// halves the inter-electrode distance of the previous one; the label sets
// are strictly cumulative (10-20 ⊂ 10-10 ⊂ 10-05).
type Density string

const (
	Density1020 Density = "10-20"
	Density1010 Density = "10-10"
	Density1005 Density = "10-05"
)

// ParseDensity normalizes a user-supplied density string ("10-20", "1020",
// "10-10", ...) into a [Density]. Unknown values yield an
// [InvalidDensityLevelError].
func ParseDensity(s string) (Density, error) {
	switch s {
	case "10-20", "1020", "10_20":
		return Density1020, nil
	case "10-10", "1010", "10_10":
		return Density1010, nil
	case "10-05", "1005", "10_05", "10-5":
		return Density1005, nil
	}
	return "", &InvalidDensityLevelError{Value: s}
}

// ============================================================================
// Equator conventions
// ============================================================================

// Equator names the ring of labels placed on the sphere's equator (z = 0).
// The convention determines where the head's "rim" sits: with [EquatorNz]
// the lowest ring (through the nasion) is the equator and everything is on
// or above it; with [EquatorFpz] the ring through Fpz is the equator and
// the lowest ring dips below, which matches how far caps typically reach.
type Equator string

const (
	EquatorNz  Equator = "Nz-T10-Iz-T9"
	EquatorFpz Equator = "Fpz-T8-Oz-T7"
)

// ParseEquator validates a user-supplied equator string. Unknown values
// yield an [InvalidEquatorChoiceError].
func ParseEquator(s string) (Equator, error) {
	switch Equator(s) {
	case EquatorNz:
		return EquatorNz, nil
	case EquatorFpz:
		return EquatorFpz, nil
	}
	return "", &InvalidEquatorChoiceError{Value: s}
}

// Equators returns the accepted equator conventions.
func Equators() []Equator {
	return []Equator{EquatorNz, EquatorFpz}
}

// ============================================================================
// Landmarks
// ============================================================================

// Fiducial landmark labels appended to every computed system. They are
// coordinate copies of canonical labels: NAS of Nz, LPA of T9, RPA of T10.
const (
	LabelNAS = "NAS"
	LabelLPA = "LPA"
	LabelRPA = "RPA"
)

// Landmarks returns the fiducial labels in their canonical order.
func Landmarks() []string {
	return []string{LabelNAS, LabelLPA, LabelRPA}
}

// ============================================================================
// Contour label tables
// ============================================================================
//
// The tables below spell out the combinatorial nomenclature of the 10-05
// system (Oostenveld & Praamstra 2001). Each contour lists 21 or 17 labels
// in order from its start anchor to its end anchor; the middle entry is the
// auxiliary point that fixes which side of the sphere the arc passes on.
// Rows between the frontal and parietal poles pick up "T" names in the two
// outermost column pairs (FFC→FFT, FC→FT, FCC→FTT, CCP→TTP, CP→TP,
// CPP→TPP) per the standard.

var (
	contourSagittal = []string{
		"Nz", "NFpz", "Fpz", "AFpz", "AFz", "AFFz", "Fz", "FFCz", "FCz", "FCCz",
		"Cz",
		"CCPz", "CPz", "CPPz", "Pz", "PPOz", "POz", "POOz", "Oz", "OIz", "Iz",
	}
	contourCoronal = []string{
		"T9", "T9h", "T7", "T7h", "C5", "C5h", "C3", "C3h", "C1", "C1h",
		"Cz",
		"C2h", "C2", "C4h", "C4", "C6h", "C6", "T8h", "T8", "T10h", "T10",
	}
	contourEquatorLeft = []string{
		"Nz", "N1h", "N1", "AFp9", "AF9", "AFF9", "F9", "FFT9", "FT9", "FTT9",
		"T9",
		"TTP9", "TP9", "TPP9", "P9", "PPO9", "PO9", "POO9", "I1", "I1h", "Iz",
	}
	contourEquatorRight = []string{
		"Nz", "N2h", "N2", "AFp10", "AF10", "AFF10", "F10", "FFT10", "FT10", "FTT10",
		"T10",
		"TTP10", "TP10", "TPP10", "P10", "PPO10", "PO10", "POO10", "I2", "I2h", "Iz",
	}
	contourRing5Left = []string{
		"NFpz", "NFp1h", "NFp1", "AFp9h", "AF9h", "AFF9h", "F9h", "FFT9h", "FT9h", "FTT9h",
		"T9h",
		"TTP9h", "TP9h", "TPP9h", "P9h", "PPO9h", "PO9h", "POO9h", "OI1", "OI1h", "OIz",
	}
	contourRing5Right = []string{
		"NFpz", "NFp2h", "NFp2", "AFp10h", "AF10h", "AFF10h", "F10h", "FFT10h", "FT10h", "FTT10h",
		"T10h",
		"TTP10h", "TP10h", "TPP10h", "P10h", "PPO10h", "PO10h", "POO10h", "OI2", "OI2h", "OIz",
	}
	contourRing10Left = []string{
		"Fpz", "Fp1h", "Fp1", "AFp7", "AF7", "AFF7", "F7", "FFT7", "FT7", "FTT7",
		"T7",
		"TTP7", "TP7", "TPP7", "P7", "PPO7", "PO7", "POO7", "O1", "O1h", "Oz",
	}
	contourRing10Right = []string{
		"Fpz", "Fp2h", "Fp2", "AFp8", "AF8", "AFF8", "F8", "FFT8", "FT8", "FTT8",
		"T8",
		"TTP8", "TP8", "TPP8", "P8", "PPO8", "PO8", "POO8", "O2", "O2h", "Oz",
	}

	contourRowAFp = []string{
		"AFp7", "AFp7h", "AFp5", "AFp5h", "AFp3", "AFp3h", "AFp1", "AFp1h",
		"AFpz",
		"AFp2h", "AFp2", "AFp4h", "AFp4", "AFp6h", "AFp6", "AFp8h", "AFp8",
	}
	contourRowAF = []string{
		"AF7", "AF7h", "AF5", "AF5h", "AF3", "AF3h", "AF1", "AF1h",
		"AFz",
		"AF2h", "AF2", "AF4h", "AF4", "AF6h", "AF6", "AF8h", "AF8",
	}
	contourRowAFF = []string{
		"AFF7", "AFF7h", "AFF5", "AFF5h", "AFF3", "AFF3h", "AFF1", "AFF1h",
		"AFFz",
		"AFF2h", "AFF2", "AFF4h", "AFF4", "AFF6h", "AFF6", "AFF8h", "AFF8",
	}
	contourRowF = []string{
		"F7", "F7h", "F5", "F5h", "F3", "F3h", "F1", "F1h",
		"Fz",
		"F2h", "F2", "F4h", "F4", "F6h", "F6", "F8h", "F8",
	}
	contourRowFFC = []string{
		"FFT7", "FFT7h", "FFC5", "FFC5h", "FFC3", "FFC3h", "FFC1", "FFC1h",
		"FFCz",
		"FFC2h", "FFC2", "FFC4h", "FFC4", "FFC6h", "FFC6", "FFT8h", "FFT8",
	}
	contourRowFC = []string{
		"FT7", "FT7h", "FC5", "FC5h", "FC3", "FC3h", "FC1", "FC1h",
		"FCz",
		"FC2h", "FC2", "FC4h", "FC4", "FC6h", "FC6", "FT8h", "FT8",
	}
	contourRowFCC = []string{
		"FTT7", "FTT7h", "FCC5", "FCC5h", "FCC3", "FCC3h", "FCC1", "FCC1h",
		"FCCz",
		"FCC2h", "FCC2", "FCC4h", "FCC4", "FCC6h", "FCC6", "FTT8h", "FTT8",
	}
	contourRowCCP = []string{
		"TTP7", "TTP7h", "CCP5", "CCP5h", "CCP3", "CCP3h", "CCP1", "CCP1h",
		"CCPz",
		"CCP2h", "CCP2", "CCP4h", "CCP4", "CCP6h", "CCP6", "TTP8h", "TTP8",
	}
	contourRowCP = []string{
		"TP7", "TP7h", "CP5", "CP5h", "CP3", "CP3h", "CP1", "CP1h",
		"CPz",
		"CP2h", "CP2", "CP4h", "CP4", "CP6h", "CP6", "TP8h", "TP8",
	}
	contourRowCPP = []string{
		"TPP7", "TPP7h", "CPP5", "CPP5h", "CPP3", "CPP3h", "CPP1", "CPP1h",
		"CPPz",
		"CPP2h", "CPP2", "CPP4h", "CPP4", "CPP6h", "CPP6", "TPP8h", "TPP8",
	}
	contourRowP = []string{
		"P7", "P7h", "P5", "P5h", "P3", "P3h", "P1", "P1h",
		"Pz",
		"P2h", "P2", "P4h", "P4", "P6h", "P6", "P8h", "P8",
	}
	contourRowPPO = []string{
		"PPO7", "PPO7h", "PPO5", "PPO5h", "PPO3", "PPO3h", "PPO1", "PPO1h",
		"PPOz",
		"PPO2h", "PPO2", "PPO4h", "PPO4", "PPO6h", "PPO6", "PPO8h", "PPO8",
	}
	contourRowPO = []string{
		"PO7", "PO7h", "PO5", "PO5h", "PO3", "PO3h", "PO1", "PO1h",
		"POz",
		"PO2h", "PO2", "PO4h", "PO4", "PO6h", "PO6", "PO8h", "PO8",
	}
	contourRowPOO = []string{
		"POO7", "POO7h", "POO5", "POO5h", "POO3", "POO3h", "POO1", "POO1h",
		"POOz",
		"POO2h", "POO2", "POO4h", "POO4", "POO6h", "POO6", "POO8h", "POO8",
	}
)

// rowContours are the 14 coronal contours between the 10% rings, drawn
// after the rings have established their endpoints.
var rowContours = [][]string{
	contourRowAFp, contourRowAF, contourRowAFF, contourRowF,
	contourRowFFC, contourRowFC, contourRowFCC,
	contourRowCCP, contourRowCP, contourRowCPP,
	contourRowP, contourRowPPO, contourRowPO, contourRowPOO,
}

// ============================================================================
// System label rosters
// ============================================================================

// system1020 holds the 21 labels of the classic 10-20 system, front to back.
var system1020 = []string{
	"Fp1", "Fpz", "Fp2",
	"F7", "F3", "Fz", "F4", "F8",
	"T7", "C3", "Cz", "C4", "T8",
	"P7", "P3", "Pz", "P4", "P8",
	"O1", "Oz", "O2",
}

// system1010 holds the 71 labels of the 10-10 system, front to back.
var system1010 = []string{
	"Fp1", "Fpz", "Fp2",
	"AF7", "AF3", "AFz", "AF4", "AF8",
	"F9", "F7", "F5", "F3", "F1", "Fz", "F2", "F4", "F6", "F8", "F10",
	"FT9", "FT7", "FC5", "FC3", "FC1", "FCz", "FC2", "FC4", "FC6", "FT8", "FT10",
	"T9", "T7", "C5", "C3", "C1", "Cz", "C2", "C4", "C6", "T8", "T10",
	"TP9", "TP7", "CP5", "CP3", "CP1", "CPz", "CP2", "CP4", "CP6", "TP8", "TP10",
	"P9", "P7", "P5", "P3", "P1", "Pz", "P2", "P4", "P6", "P8", "P10",
	"PO7", "PO3", "POz", "PO4", "PO8",
	"O1", "Oz", "O2",
}

// SystemLabels returns the canonical label roster of a density level, in
// the order positions are derived (for 10-05) or anatomical front-to-back
// order (for 10-20 and 10-10). Landmarks and aliases are not included.
func SystemLabels(d Density) ([]string, error) {
	switch d {
	case Density1020:
		return append([]string(nil), system1020...), nil
	case Density1010:
		return append([]string(nil), system1010...), nil
	case Density1005:
		return system1005Labels(), nil
	}
	return nil, &InvalidDensityLevelError{Value: string(d)}
}
