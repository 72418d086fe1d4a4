// Package observability provides hooks for instrumenting document assembly.
//
// Libraries emit events through the registered hooks; the application
// decides what to do with them (the CLI logs them at debug level). Hooks
// default to no-ops so library code can call them unconditionally.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetDependencyHooks(&myDependencyHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRunStart(ctx, len(plan))
//	// ... assemble ...
//	observability.Pipeline().OnRunComplete(ctx, len(out), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the assembly pipeline.
type PipelineHooks interface {
	// OnRunStart is called before any part is read.
	OnRunStart(ctx context.Context, parts int)

	// OnPartComplete is called once per part. included is false for optional
	// files that do not exist and for parts that rendered empty.
	OnPartComplete(ctx context.Context, kind, source string, included bool, duration time.Duration, err error)

	// OnRunComplete is called with the size of the assembled document.
	OnRunComplete(ctx context.Context, size int, duration time.Duration, err error)
}

// =============================================================================
// Dependency Hooks
// =============================================================================

// DependencyHooks receives events from dependency resolution.
type DependencyHooks interface {
	// OnResolve records a dependency directory lookup.
	OnResolve(ctx context.Context, ecosystem, dependency, dir string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRunStart(context.Context, int) {}
func (NoopPipelineHooks) OnPartComplete(context.Context, string, string, bool, time.Duration, error) {
}
func (NoopPipelineHooks) OnRunComplete(context.Context, int, time.Duration, error) {}

// NoopDependencyHooks is a no-op implementation of DependencyHooks.
type NoopDependencyHooks struct{}

func (NoopDependencyHooks) OnResolve(context.Context, string, string, string, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks   PipelineHooks   = NoopPipelineHooks{}
	dependencyHooks DependencyHooks = NoopDependencyHooks{}
	hooksMu         sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetDependencyHooks registers custom dependency hooks. A nil h is ignored.
func SetDependencyHooks(h DependencyHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dependencyHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Dependency returns the registered dependency hooks.
func Dependency() DependencyHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dependencyHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	dependencyHooks = NoopDependencyHooks{}
}
