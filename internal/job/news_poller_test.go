package job

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"hyperhub/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

func TestNewNewsPollerInterval(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")

	if p := NewNewsPoller(tracer, &stubRefresher{}, 2*time.Minute); p.interval != time.Minute {
		t.Fatalf("expected 1m interval, got %v", p.interval)
	}
	if p := NewNewsPoller(tracer, &stubRefresher{}, time.Second); p.interval != minRefreshInterval {
		t.Fatalf("expected floor interval, got %v", p.interval)
	}
}

func TestNewsPollerStart(t *testing.T) {
	t.Parallel()

	tracer := trace.NewNoopTracerProvider().Tracer("test")
	stub := &stubRefresher{}
	poller := NewNewsPoller(tracer, stub, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Start(ctx)
		close(done)
	}()

	eventually(t, func() bool { return stub.calls.Load() > 0 })
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(100 * time.Millisecond)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met")
}

type stubRefresher struct {
	calls atomic.Int32
}

func (s *stubRefresher) Refresh(ctx context.Context) domain.NewsFeed {
	s.calls.Add(1)
	return domain.NewsFeed{Items: []domain.NewsItem{}}
}
