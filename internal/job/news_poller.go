package job

import (
	"context"
	"time"

	"hyperhub/internal/domain"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const minRefreshInterval = time.Second

type NewsRefresher interface {
	Refresh(ctx context.Context) domain.NewsFeed
}

// NewsPoller keeps the news cache warm so readers rarely wait on the feeds.
type NewsPoller struct {
	tracer   trace.Tracer
	news     NewsRefresher
	interval time.Duration
}

// NewNewsPoller refreshes at half the cache TTL so an entry is replaced
// before it expires.
func NewNewsPoller(tracer trace.Tracer, news NewsRefresher, cacheTTL time.Duration) *NewsPoller {
	interval := cacheTTL / 2
	if interval < minRefreshInterval {
		interval = minRefreshInterval
	}
	return &NewsPoller{tracer: tracer, news: news, interval: interval}
}

// Start refreshes once immediately and then on every tick. Blocks until ctx
// is cancelled.
func (p *NewsPoller) Start(ctx context.Context) {
	log.Info("News poller starting", "interval", p.interval)

	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("News poller stopped")
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *NewsPoller) refresh(ctx context.Context) {
	ctx, span := p.tracer.Start(ctx, "job.news-refresh")
	defer span.End()

	feed := p.news.Refresh(ctx)
	span.SetAttributes(attribute.Int("news.items", len(feed.Items)))
	if len(feed.Items) == 0 {
		log.Warn("news refresh returned no items")
	}
}
