package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"hyperhub/internal/domain"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoSources         = errors.New("at least one feed source is required")
	ErrSourceMissingName = errors.New("feed source name is required")
	ErrSourceMissingURL  = errors.New("feed source url is required")
)

var defaultFeedSources = []domain.FeedSource{
	{Name: "CoinTelegraph", URL: CoinTelegraphRSS},
	{Name: "TheBlock", URL: TheBlockRSS},
	{Name: "Hyperliquid", URL: HyperliquidBlogRSS},
	{Name: "Reddit", URL: RedditRSS},
}

// DefaultFeedSources returns a copy of the built-in news sources in merge order.
func DefaultFeedSources() []domain.FeedSource {
	return append([]domain.FeedSource(nil), defaultFeedSources...)
}

type feedsFile struct {
	Sources []domain.FeedSource `yaml:"sources"`
}

// LoadFeedSources reads an ordered feed list from a YAML file of the form
//
//	sources:
//	  - name: CoinTelegraph
//	    url: https://cointelegraph.com/rss
func LoadFeedSources(path string) ([]domain.FeedSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}
	return ParseFeedSources(data)
}

func ParseFeedSources(data []byte) ([]domain.FeedSource, error) {
	var f feedsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse feeds file: %w", err)
	}
	if len(f.Sources) == 0 {
		return nil, ErrNoSources
	}
	out := make([]domain.FeedSource, 0, len(f.Sources))
	for i, s := range f.Sources {
		s.Name = strings.TrimSpace(s.Name)
		s.URL = strings.TrimSpace(s.URL)
		if s.Name == "" {
			return nil, fmt.Errorf("source %d: %w", i, ErrSourceMissingName)
		}
		if s.URL == "" {
			return nil, fmt.Errorf("source %q: %w", s.Name, ErrSourceMissingURL)
		}
		out = append(out, s)
	}
	return out, nil
}
