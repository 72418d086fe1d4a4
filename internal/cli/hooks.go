package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/agentsgen/pkg/observability"
)

// runStats collects pipeline events for the summary line printed after a
// run.
type runStats struct {
	observability.NoopPipelineHooks
	observability.NoopDependencyHooks

	mu       sync.Mutex
	included int
	skipped  int
	deps     []string
}

// OnPartComplete implements observability.PipelineHooks.
func (s *runStats) OnPartComplete(_ context.Context, _, _ string, included bool, _ time.Duration, err error) {
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if included {
		s.included++
	} else {
		s.skipped++
	}
}

// OnResolve implements observability.DependencyHooks.
func (s *runStats) OnResolve(_ context.Context, ecosystem, dependency, _ string, _ time.Duration, err error) {
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deps = append(s.deps, ecosystem+":"+dependency)
}

func (s *runStats) summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := fmt.Sprintf("Assembled %d parts", s.included)
	if s.skipped > 0 {
		msg += fmt.Sprintf(", skipped %d", s.skipped)
	}
	if len(s.deps) > 0 {
		deps := slices.Clone(s.deps)
		slices.Sort(deps)
		msg += ", resolved " + strings.Join(deps, ", ")
	}
	return msg
}
