package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

// recordingHooks counts events for assertions.
type recordingHooks struct {
	mu       sync.Mutex
	computes int
	renders  int
	hits     int
	misses   int
	sets     int
}

func (r *recordingHooks) OnComputeStart(context.Context, string, string) {}
func (r *recordingHooks) OnComputeComplete(context.Context, string, string, int, time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.computes++
}
func (r *recordingHooks) OnRenderStart(context.Context, string) {}
func (r *recordingHooks) OnRenderComplete(context.Context, string, time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders++
}

func (r *recordingHooks) OnCacheHit(context.Context, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hits++
}
func (r *recordingHooks) OnCacheMiss(context.Context, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.misses++
}
func (r *recordingHooks) OnCacheSet(context.Context, string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets++
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// No-op hooks must not panic.
	ctx := context.Background()
	Pipeline().OnComputeStart(ctx, "10-20", "Nz-T10-Iz-T9")
	Pipeline().OnComputeComplete(ctx, "10-20", "Nz-T10-Iz-T9", 21, time.Millisecond, nil)
	Pipeline().OnRenderStart(ctx, "svg")
	Pipeline().OnRenderComplete(ctx, "svg", time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "table")
	Cache().OnCacheMiss(ctx, "map")
	Cache().OnCacheSet(ctx, "table", 100)
}

func TestSetAndResetHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHooks{}
	SetPipelineHooks(rec)
	SetCacheHooks(rec)

	ctx := context.Background()
	Pipeline().OnComputeComplete(ctx, "10-20", "Nz-T10-Iz-T9", 21, time.Millisecond, nil)
	Pipeline().OnRenderComplete(ctx, "svg", time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "table")
	Cache().OnCacheMiss(ctx, "table")
	Cache().OnCacheSet(ctx, "table", 100)

	rec.mu.Lock()
	computes, renders := rec.computes, rec.renders
	hits, misses, sets := rec.hits, rec.misses, rec.sets
	rec.mu.Unlock()

	if computes != 1 || renders != 1 {
		t.Errorf("pipeline events = %d/%d, want 1/1", computes, renders)
	}
	if hits != 1 || misses != 1 || sets != 1 {
		t.Errorf("cache events = %d/%d/%d, want 1/1/1", hits, misses, sets)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset should restore noop pipeline hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset should restore noop cache hooks")
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	SetPipelineHooks(nil)
	SetCacheHooks(nil)

	if Pipeline() == nil || Cache() == nil {
		t.Error("nil registrations must not clear the registry")
	}
}
