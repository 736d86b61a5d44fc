package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type mockLifecycleProvider struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
}

func (m *mockLifecycleProvider) ArchiveStaleDrafts(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cutoffs = append(m.cutoffs, cutoff)
	return 1, m.err
}

func (m *mockLifecycleProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cutoffs)
}

func TestSchedulerRunUsesStaleCutoff(t *testing.T) {
	provider := &mockLifecycleProvider{}
	s := NewTemplateScheduler(provider, time.Minute, 48*time.Hour)

	before := time.Now().UTC().Add(-48 * time.Hour)
	s.run(context.Background())
	after := time.Now().UTC().Add(-48 * time.Hour)

	if provider.calls() != 1 {
		t.Fatalf("calls = %d, want 1", provider.calls())
	}
	cutoff := provider.cutoffs[0]
	if cutoff.Before(before) || cutoff.After(after) {
		t.Errorf("cutoff %v outside [%v, %v]", cutoff, before, after)
	}
}

func TestSchedulerRunSwallowsProviderError(t *testing.T) {
	provider := &mockLifecycleProvider{err: errors.New("db down")}
	s := NewTemplateScheduler(provider, time.Minute, time.Hour)

	// Must not panic or propagate; the next tick simply retries.
	s.run(context.Background())

	if provider.calls() != 1 {
		t.Fatalf("calls = %d, want 1", provider.calls())
	}
}

func TestSchedulerStartRunsImmediatelyAndStops(t *testing.T) {
	provider := &mockLifecycleProvider{}
	s := NewTemplateScheduler(provider, 5*time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	deadline := time.After(time.Second)
	for provider.calls() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 2 runs, got %d", provider.calls())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
}

func TestSchedulerSkipsWhenUnconfigured(t *testing.T) {
	s := NewTemplateScheduler(nil, time.Minute, 0)
	// No provider and no stale window: Start must be a no-op.
	s.Start(context.Background())
}
