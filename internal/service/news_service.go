package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"hyperhub/internal/domain"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	MaxNewsItems = 50
	newsCacheKey = "hyperhub:news"
)

type FeedFetcher interface {
	FetchItems(ctx context.Context, src domain.FeedSource) []domain.NewsItem
	FetchTitles(ctx context.Context, feedURL string) []string
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// NewsService merges the configured feeds into one newest-first list.
type NewsService struct {
	tracer   trace.Tracer
	feeds    FeedFetcher
	sources  []domain.FeedSource
	redis    RedisClient
	cacheTTL time.Duration
	now      func() time.Time
}

// NewNewsService builds the merger. redisClient may be nil; caching is only
// used when both a client and a positive TTL are given.
func NewNewsService(
	tracer trace.Tracer,
	feeds FeedFetcher,
	sources []domain.FeedSource,
	redisClient RedisClient,
	cacheTTL time.Duration,
) *NewsService {
	return &NewsService{
		tracer:   tracer,
		feeds:    feeds,
		sources:  append([]domain.FeedSource(nil), sources...),
		redis:    redisClient,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func (s *NewsService) cacheEnabled() bool {
	return s.redis != nil && s.cacheTTL > 0
}

// GetNews returns the cached feed when caching is on and the entry is still
// live, and otherwise fetches every source.
func (s *NewsService) GetNews(ctx context.Context) domain.NewsFeed {
	ctx, span := s.tracer.Start(ctx, "news-service.get-news")
	defer span.End()

	if s.cacheEnabled() {
		if cached, ok := s.getCache(ctx); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached
		}
	}
	return s.Refresh(ctx)
}

// Refresh fetches every source in order, one after another, and stores the
// result when caching is on. Unavailable or malformed sources are skipped, so
// the result is never an error.
func (s *NewsService) Refresh(ctx context.Context) domain.NewsFeed {
	ctx, span := s.tracer.Start(ctx, "news-service.refresh")
	defer span.End()

	items := make([]domain.NewsItem, 0)
	for _, src := range s.sources {
		items = append(items, s.feeds.FetchItems(ctx, src)...)
	}

	now := s.now().UTC()
	SortByPublished(items, now)
	if len(items) > MaxNewsItems {
		items = items[:MaxNewsItems]
	}
	span.SetAttributes(attribute.Int("news.items", len(items)))

	feed := domain.NewsFeed{Items: items, FetchedAt: domain.Timestamp(now)}
	if s.cacheEnabled() {
		s.setCache(ctx, feed)
	}
	return feed
}

// CacheTTL is zero when caching is off.
func (s *NewsService) CacheTTL() time.Duration {
	if !s.cacheEnabled() {
		return 0
	}
	return s.cacheTTL
}

// SortByPublished orders items newest first, keeping feed order for ties.
// Dates that are missing or not ISO-8601 count as now, so such items sort
// ahead of every dated item in the past.
func SortByPublished(items []domain.NewsItem, now time.Time) {
	type keyed struct {
		item domain.NewsItem
		at   time.Time
	}
	rows := make([]keyed, len(items))
	for i, it := range items {
		at, ok := ParsePublished(it.PubDate)
		if !ok {
			at = now
		}
		rows[i] = keyed{item: it, at: at}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].at.After(rows[j].at)
	})
	for i := range rows {
		items[i] = rows[i].item
	}
}

func (s *NewsService) getCache(ctx context.Context) (domain.NewsFeed, bool) {
	data, err := s.redis.Get(ctx, newsCacheKey).Bytes()
	if err == redis.Nil {
		return domain.NewsFeed{}, false
	}
	if err != nil {
		log.Warn("redis cache read error", "key", newsCacheKey, "err", err)
		return domain.NewsFeed{}, false
	}
	var feed domain.NewsFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		log.Warn("redis cache decode error", "key", newsCacheKey, "err", err)
		return domain.NewsFeed{}, false
	}
	if feed.Items == nil {
		feed.Items = []domain.NewsItem{}
	}
	return feed, true
}

func (s *NewsService) setCache(ctx context.Context, feed domain.NewsFeed) {
	data, err := json.Marshal(feed)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, newsCacheKey, data, s.cacheTTL).Err(); err != nil {
		log.Warn("redis cache write error", "key", newsCacheKey, "err", err)
	}
}
