package config

import (
	"os"
	"strconv"
	"strings"

	"hyperhub/internal/domain"

	"github.com/charmbracelet/log"
)

const (
	DefaultCoinGeckoAPI = "https://api.coingecko.com/api/v3"
	// Not yet wired to any handler.
	DefaultCoinGlassAPI = "https://api.coinglass.com/api/pro/v1"
	DefaultDuneAPI      = "https://api.dune.com/api/v1"

	HyperliquidBlogRSS = "https://hyperliquid.gitbook.io/rss.xml"
	CoinTelegraphRSS   = "https://cointelegraph.com/rss"
	TheBlockRSS        = "https://www.theblock.co/rss"
	RedditRSS          = "https://www.reddit.com/r/Hyperliquid/.rss"
)

type Config struct {
	Port     int
	LogLevel string

	CoinGlassKey string
	DuneKey      string

	CoinGeckoAPI     string
	RedditRSS        string
	FeedSources      []domain.FeedSource
	FetchTimeoutSecs int

	RedisURL     string
	CacheTTLSecs int

	FrontendURL      string
	TelegramBotToken string

	SSHPort        int
	SSHHostKeyPath string

	MCPTransport string
	MCPHTTPBind  string
	MCPHTTPPort  int
}

func Load() *Config {
	cfg := &Config{
		CoinGlassKey:     getenv("COINGLASS_KEY"),
		DuneKey:          getenv("DUNE_KEY"),
		RedisURL:         getenv("REDIS_URL"),
		FrontendURL:      getenv("FRONTEND_URL"),
		TelegramBotToken: getenv("TELEGRAM_BOT_TOKEN"),
	}

	cfg.Port = positiveInt("PORT", 5000)

	cfg.LogLevel = strings.ToLower(getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.CoinGeckoAPI = strings.TrimRight(getenv("COINGECKO_API"), "/")
	if cfg.CoinGeckoAPI == "" {
		cfg.CoinGeckoAPI = DefaultCoinGeckoAPI
	}

	cfg.RedditRSS = getenv("REDDIT_RSS")
	if cfg.RedditRSS == "" {
		cfg.RedditRSS = RedditRSS
	}

	cfg.FeedSources = DefaultFeedSources()
	if path := getenv("FEEDS_FILE"); path != "" {
		sources, err := LoadFeedSources(path)
		if err != nil {
			log.Warn("Invalid FEEDS_FILE, using built-in feed list", "path", path, "err", err)
		} else {
			cfg.FeedSources = sources
		}
	}

	cfg.FetchTimeoutSecs = positiveInt("FETCH_TIMEOUT_SECS", 12)

	cfg.CacheTTLSecs = 0
	if v := getenv("CACHE_TTL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CacheTTLSecs = n
		}
	}
	if cfg.CacheTTLSecs > 0 && cfg.RedisURL == "" {
		log.Warn("CACHE_TTL_SECS set but REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}

	if cfg.TelegramBotToken == "" {
		log.Info("TELEGRAM_BOT_TOKEN not set, Telegram bot disabled")
	}

	cfg.SSHPort = positiveInt("SSH_PORT", 2222)
	cfg.SSHHostKeyPath = getenv("SSH_HOST_KEY_PATH")
	if cfg.SSHHostKeyPath == "" {
		cfg.SSHHostKeyPath = ".ssh/hyperhub_ed25519"
	}

	cfg.MCPTransport = strings.ToLower(getenv("MCP_TRANSPORT"))
	if cfg.MCPTransport == "" {
		cfg.MCPTransport = "stdio"
	}
	if cfg.MCPTransport != "stdio" && cfg.MCPTransport != "http" {
		log.Warn("Unsupported MCP_TRANSPORT, defaulting to stdio", "value", cfg.MCPTransport)
		cfg.MCPTransport = "stdio"
	}

	cfg.MCPHTTPBind = getenv("MCP_HTTP_BIND")
	if cfg.MCPHTTPBind == "" {
		cfg.MCPHTTPBind = "127.0.0.1"
	}
	cfg.MCPHTTPPort = positiveInt("MCP_HTTP_PORT", 8090)

	return cfg
}

var lookupEnv = os.Getenv

func getenv(key string) string {
	return strings.TrimSpace(lookupEnv(key))
}

func positiveInt(key string, def int) int {
	if v := getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
