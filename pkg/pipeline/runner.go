package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/neurolab/eegpos/pkg/cache"
	"github.com/neurolab/eegpos/pkg/errors"
	"github.com/neurolab/eegpos/pkg/export"
	"github.com/neurolab/eegpos/pkg/montage"
	"github.com/neurolab/eegpos/pkg/observability"
	"github.com/neurolab/eegpos/pkg/render"
	"github.com/neurolab/eegpos/pkg/sphere"
)

// Runner serializes coordinate tables and renders head maps with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Table returns a serialized coordinate table and whether it came from the
// cache.
func (r *Runner) Table(ctx context.Context, opts TableOptions) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	key := r.Keyer.TableKey(opts.cacheOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "table")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "table")
	}

	start := time.Now()
	observability.Pipeline().OnComputeStart(ctx, opts.Density, opts.Equator)
	sys, err := montage.Compute(opts.montageOpts())
	observability.Pipeline().OnComputeComplete(ctx, opts.Density, opts.Equator, lenOrZero(sys), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	exportOpts := export.Options{Precision: opts.Precision}
	switch {
	case opts.Dimensions == 2 && opts.Format == "json":
		flat, perr := sys.Project(sphere.DefaultPole)
		if perr != nil {
			return nil, false, errors.Wrap(errors.ErrCodePoleCoincidence, perr, "project positions")
		}
		err = export.WriteFlatJSON(&buf, flat, exportOpts)
	case opts.Dimensions == 2:
		flat, perr := sys.Project(sphere.DefaultPole)
		if perr != nil {
			return nil, false, errors.Wrap(errors.ErrCodePoleCoincidence, perr, "project positions")
		}
		err = export.WriteFlatTSV(&buf, flat, exportOpts)
	case opts.Format == "json":
		err = export.WriteJSON(&buf, sys, exportOpts)
	default:
		err = export.WriteTSV(&buf, sys, exportOpts)
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeExport, err, "serialize table")
	}

	r.Logger.Info("computed coordinates",
		"density", opts.Density,
		"electrodes", sys.Len(),
		"dim", opts.Dimensions,
		"duration", time.Since(start))

	_ = r.Cache.Set(ctx, key, buf.Bytes(), cache.TTLTable)
	observability.Cache().OnCacheSet(ctx, "table", buf.Len())
	return buf.Bytes(), false, nil
}

func lenOrZero(sys *montage.System) int {
	if sys == nil {
		return 0
	}
	return sys.Len()
}

// Map returns a rendered head map and whether it came from the cache.
func (r *Runner) Map(ctx context.Context, opts MapOptions) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	key := r.Keyer.MapKey(opts.cacheOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "map")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "map")
	}

	start := time.Now()
	sys, err := montage.Compute(montage.Options{
		Density:       montage.Density(opts.Density),
		Equator:       montage.Equator(opts.Equator),
		DropLandmarks: true,
	})
	if err != nil {
		return nil, false, err
	}
	flat, err := sys.Project(sphere.DefaultPole)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodePoleCoincidence, err, "project positions")
	}

	dot := render.ToDOT(flat, render.Options{ShowNames: opts.ShowNames, Sensors: opts.Sensors})

	observability.Pipeline().OnRenderStart(ctx, opts.Format)
	renderStart := time.Now()
	var data []byte
	switch opts.Format {
	case "dot":
		data = []byte(dot)
	case "png":
		data, err = render.PNG(ctx, dot)
	default:
		data, err = render.SVG(ctx, dot)
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, time.Since(renderStart), err)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeRender, err, "render head map")
	}

	r.Logger.Info("rendered head map",
		"density", opts.Density,
		"format", opts.Format,
		"electrodes", len(flat),
		"duration", time.Since(start))

	_ = r.Cache.Set(ctx, key, data, cache.TTLMap)
	observability.Cache().OnCacheSet(ctx, "map", len(data))
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
