package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// recordingPipelineHooks captures events for assertions.
type recordingPipelineHooks struct {
	mu      sync.Mutex
	started []string
	done    []string
	skipped []string
}

func (h *recordingPipelineHooks) OnStageStart(ctx context.Context, stage string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = append(h.started, stage)
}

func (h *recordingPipelineHooks) OnStageComplete(ctx context.Context, stage string, d time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.done = append(h.done, stage)
}

func (h *recordingPipelineHooks) OnImageSkipped(ctx context.Context, path string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.skipped = append(h.skipped, path)
}

func TestHookRegistration(t *testing.T) {
	defer Reset()

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnStageStart(ctx, "compose")
	Pipeline().OnStageComplete(ctx, "compose", time.Second, nil)
	Pipeline().OnImageSkipped(ctx, "bad.jpg", errors.New("corrupt"))

	if len(rec.started) != 1 || rec.started[0] != "compose" {
		t.Errorf("started = %v, want [compose]", rec.started)
	}
	if len(rec.done) != 1 {
		t.Errorf("done = %v, want one entry", rec.done)
	}
	if len(rec.skipped) != 1 || rec.skipped[0] != "bad.jpg" {
		t.Errorf("skipped = %v, want [bad.jpg]", rec.skipped)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)
	SetPipelineHooks(nil)

	Pipeline().OnStageStart(context.Background(), "plan")
	if len(rec.started) != 1 {
		t.Error("nil registration should not replace existing hooks")
	}
}

func TestReset(t *testing.T) {
	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)
	Reset()

	Pipeline().OnStageStart(context.Background(), "plan")
	if len(rec.started) != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	// Must not panic.
	Pipeline().OnStageStart(context.Background(), "x")
	Cache().OnCacheHit(context.Background(), "probe")
	Cache().OnCacheMiss(context.Background(), "probe")
	Cache().OnCacheSet(context.Background(), "probe", 10)
}
