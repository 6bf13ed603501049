package montage

import "fmt"

// UnknownLabelError reports an electrode label that is neither a canonical
// 10-05 label, a landmark, nor a known alias.
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("montage: unknown electrode label %q", e.Label)
}

// InvalidDensityLevelError reports a density level outside 10-20, 10-10
// and 10-05.
type InvalidDensityLevelError struct {
	Value string
}

func (e *InvalidDensityLevelError) Error() string {
	return fmt.Sprintf("montage: invalid density level %q (accepted: 10-20, 10-10, 10-05)", e.Value)
}

// InvalidEquatorChoiceError reports an equator convention outside the two
// accepted ones.
type InvalidEquatorChoiceError struct {
	Value string
}

func (e *InvalidEquatorChoiceError) Error() string {
	return fmt.Sprintf("montage: invalid equator %q (accepted: %s, %s)", e.Value, EquatorNz, EquatorFpz)
}

// AliasCollisionError reports a selection naming the same electrode twice,
// typically once by alias and once canonically (for example A1 and LPA).
type AliasCollisionError struct {
	First     string
	Second    string
	Canonical string
}

func (e *AliasCollisionError) Error() string {
	return fmt.Sprintf("montage: labels %q and %q both resolve to %q", e.First, e.Second, e.Canonical)
}
