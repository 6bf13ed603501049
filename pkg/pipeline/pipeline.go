// Package pipeline executes the compute → project → serialize flow with
// caching. Both the CLI and the HTTP API use it to avoid duplicating
// caching logic.
package pipeline

import (
	"strings"

	"github.com/neurolab/eegpos/pkg/cache"
	"github.com/neurolab/eegpos/pkg/errors"
	"github.com/neurolab/eegpos/pkg/export"
	"github.com/neurolab/eegpos/pkg/montage"
)

// TableOptions describes one coordinate table request.
type TableOptions struct {
	// Density is the system density ("10-20", "10-10", "10-05").
	// Empty means 10-05.
	Density string

	// Equator is the equator convention. Empty means Nz-T10-Iz-T9.
	Equator string

	// Dimensions selects 3D positions or their 2D projection. Zero means 3.
	Dimensions int

	// Names optionally selects explicit electrodes instead of a roster.
	Names []string

	// DropLandmarks omits the NAS/LPA/RPA fiducials.
	DropLandmarks bool

	// Sort orders output lexicographically by label.
	Sort bool

	// Precision is the decimal precision for serialization (default 4).
	Precision int

	// Format is "tsv" or "json". Empty means tsv.
	Format string

	// Refresh bypasses the cache and recomputes.
	Refresh bool
}

// ValidateAndSetDefaults normalizes the options in place.
func (o *TableOptions) ValidateAndSetDefaults() error {
	if o.Density == "" {
		o.Density = string(montage.Density1005)
	}
	if _, err := montage.ParseDensity(o.Density); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDensity, err, "invalid density %q", o.Density)
	}
	if o.Equator == "" {
		o.Equator = string(montage.EquatorNz)
	}
	if _, err := montage.ParseEquator(o.Equator); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidEquator, err, "invalid equator %q", o.Equator)
	}
	switch o.Dimensions {
	case 0:
		o.Dimensions = 3
	case 2, 3:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "dimensions must be 2 or 3, got %d", o.Dimensions)
	}
	if err := errors.ValidateLabels(o.Names); err != nil {
		return err
	}
	if o.Precision == 0 {
		o.Precision = export.DefaultPrecision
	}
	if err := errors.ValidatePrecision(o.Precision); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = "tsv"
	}
	o.Format = strings.ToLower(o.Format)
	return errors.ValidateFormat(o.Format, "tsv", "json")
}

func (o TableOptions) cacheOpts() cache.TableKeyOpts {
	return cache.TableKeyOpts{
		Density:       o.Density,
		Equator:       o.Equator,
		Dimensions:    o.Dimensions,
		Names:         o.Names,
		DropLandmarks: o.DropLandmarks,
		Sort:          o.Sort,
		Precision:     o.Precision,
		Format:        o.Format,
	}
}

func (o TableOptions) montageOpts() montage.Options {
	return montage.Options{
		Density:       montage.Density(o.Density),
		Equator:       montage.Equator(o.Equator),
		Names:         o.Names,
		DropLandmarks: o.DropLandmarks,
		Sort:          o.Sort,
	}
}

// MapOptions describes one head map request.
type MapOptions struct {
	// Density is the system density. Empty means 10-20.
	Density string

	// Equator is the equator convention. Empty means Nz-T10-Iz-T9.
	Equator string

	// Format is "svg", "png" or "dot". Empty means svg.
	Format string

	// ShowNames labels electrodes with their names.
	ShowNames bool

	// Sensors draws filled markers instead of open circles.
	Sensors bool

	// Refresh bypasses the cache and re-renders.
	Refresh bool
}

// ValidateAndSetDefaults normalizes the options in place.
func (o *MapOptions) ValidateAndSetDefaults() error {
	if o.Density == "" {
		o.Density = string(montage.Density1020)
	}
	if _, err := montage.ParseDensity(o.Density); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDensity, err, "invalid density %q", o.Density)
	}
	if o.Equator == "" {
		o.Equator = string(montage.EquatorNz)
	}
	if _, err := montage.ParseEquator(o.Equator); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidEquator, err, "invalid equator %q", o.Equator)
	}
	if o.Format == "" {
		o.Format = "svg"
	}
	o.Format = strings.ToLower(o.Format)
	return errors.ValidateFormat(o.Format, "svg", "png", "dot")
}

func (o MapOptions) cacheOpts() cache.MapKeyOpts {
	return cache.MapKeyOpts{
		Density:   o.Density,
		Equator:   o.Equator,
		Format:    o.Format,
		ShowNames: o.ShowNames,
		Sensors:   o.Sensors,
	}
}
