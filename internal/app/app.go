// Package app wires config into the gateway, providers and services shared by
// the HTTP server, the SSH dashboard and the MCP server.
package app

import (
	"context"
	"time"

	"hyperhub/internal/cache"
	"hyperhub/internal/config"
	"hyperhub/internal/provider"
	"hyperhub/internal/service"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"
)

type Services struct {
	Quotes       *service.QuoteService
	News         *service.NewsService
	Sentiment    *service.SentimentService
	Placeholders *service.PlaceholderService
}

var initRedisFunc = cache.InitRedis

// NewServices builds every read path from cfg. redisClient may be nil.
func NewServices(cfg *config.Config, tracer trace.Tracer, redisClient service.RedisClient) *Services {
	timeout := time.Duration(cfg.FetchTimeoutSecs) * time.Second
	gateway := provider.NewGateway(tracer, timeout)
	feeds := provider.NewFeedProvider(tracer, gateway)
	coinGecko := provider.NewCoinGeckoProvider(tracer, gateway, cfg.CoinGeckoAPI, timeout)

	news := service.NewNewsService(
		tracer,
		feeds,
		cfg.FeedSources,
		redisClient,
		time.Duration(cfg.CacheTTLSecs)*time.Second,
	)

	return &Services{
		Quotes:       service.NewQuoteService(tracer, coinGecko),
		News:         news,
		Sentiment:    service.NewSentimentService(tracer, news, feeds, cfg.RedditRSS),
		Placeholders: service.NewPlaceholderService(tracer),
	}
}

// ConnectCache dials Redis when a cache TTL is configured. It returns nil,
// never a typed nil, when caching is off or Redis is unreachable.
func ConnectCache(ctx context.Context, cfg *config.Config) service.RedisClient {
	if cfg.CacheTTLSecs <= 0 {
		return nil
	}
	if err := initRedisFunc(ctx, cfg.RedisURL); err != nil {
		log.Warn("Redis unavailable, news cache disabled", "err", err)
		return nil
	}
	if cache.Client == nil {
		return nil
	}
	return cache.Client
}
