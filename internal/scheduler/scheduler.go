package scheduler

import (
	"context"
	"log/slog"
	"time"
)

type TemplateLifecycleProvider interface {
	ArchiveStaleDrafts(ctx context.Context, cutoff time.Time) (int64, error)
}

// TemplateScheduler periodically archives drafts nobody has touched for
// longer than staleAfter, keeping the template list free of abandoned work.
type TemplateScheduler struct {
	provider   TemplateLifecycleProvider
	interval   time.Duration
	staleAfter time.Duration
}

func NewTemplateScheduler(provider TemplateLifecycleProvider, interval, staleAfter time.Duration) *TemplateScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &TemplateScheduler{provider: provider, interval: interval, staleAfter: staleAfter}
}

func (s *TemplateScheduler) Start(ctx context.Context) {
	if s.provider == nil || s.staleAfter <= 0 {
		slog.Warn("template scheduler skipped: not configured")
		return
	}
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		s.run(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run(ctx)
			}
		}
	}()
}

func (s *TemplateScheduler) run(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.staleAfter)
	if archived, err := s.provider.ArchiveStaleDrafts(ctx, cutoff); err != nil {
		slog.Error("archive stale drafts failed", "err", err)
	} else if archived > 0 {
		slog.Info("stale drafts archived", "count", archived)
	}
}
