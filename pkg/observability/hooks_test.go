package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testPipelineHooks struct {
	NoopPipelineHooks
	parts int
}

func (h *testPipelineHooks) OnRunStart(_ context.Context, parts int) { h.parts = parts }

type testDependencyHooks struct {
	lastErr error
}

func (h *testDependencyHooks) OnResolve(_ context.Context, _, _, _ string, _ time.Duration, err error) {
	h.lastErr = err
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnRunStart(ctx, 11)
	p.OnPartComplete(ctx, "file", "Cargo.toml", true, time.Millisecond, nil)
	p.OnRunComplete(ctx, 1024, time.Second, nil)

	d := NoopDependencyHooks{}
	d.OnResolve(ctx, "cargo", "errgonomic", "/tmp", time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Dependency().(NoopDependencyHooks); !ok {
		t.Error("Dependency() should return NoopDependencyHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	customDependency := &testDependencyHooks{}
	SetPipelineHooks(customPipeline)
	SetDependencyHooks(customDependency)

	Pipeline().OnRunStart(context.Background(), 3)
	if customPipeline.parts != 3 {
		t.Errorf("parts = %d, want 3", customPipeline.parts)
	}

	want := errors.New("boom")
	Dependency().OnResolve(context.Background(), "cargo", "x", "", 0, want)
	if customDependency.lastErr != want {
		t.Errorf("lastErr = %v, want %v", customDependency.lastErr, want)
	}

	// nil is ignored
	SetPipelineHooks(nil)
	if Pipeline() != PipelineHooks(customPipeline) {
		t.Error("SetPipelineHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}
