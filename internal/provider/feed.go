package provider

import (
	"bytes"
	"context"
	"fmt"

	"hyperhub/internal/domain"

	"github.com/charmbracelet/log"
	"github.com/mmcdole/gofeed"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	NoTitle             = "(no title)"
	maxDescriptionRunes = 400
)

// Getter is the subset of Gateway used by the providers.
type Getter interface {
	Get(ctx context.Context, rawURL string, opts ...RequestOption) *Response
}

// FeedProvider fetches RSS/Atom feeds through the gateway and normalizes
// their entries.
type FeedProvider struct {
	gateway Getter
	tracer  trace.Tracer
}

func NewFeedProvider(tracer trace.Tracer, gateway Getter) *FeedProvider {
	return &FeedProvider{gateway: gateway, tracer: tracer}
}

// FetchItems returns the normalized entries of one source, or nil when the
// source is unreachable or its payload cannot be parsed.
func (p *FeedProvider) FetchItems(ctx context.Context, src domain.FeedSource) []domain.NewsItem {
	ctx, span := p.tracer.Start(ctx, "feed.fetch-items")
	defer span.End()
	span.SetAttributes(attribute.String("feed.source", src.Name))

	resp := p.gateway.Get(ctx, src.URL)
	if resp == nil {
		return nil
	}
	items, err := ParseItems(src.Name, resp.Body)
	if err != nil {
		log.Warn("failed to parse feed", "url", src.URL, "err", err)
		return nil
	}
	span.SetAttributes(attribute.Int("feed.items", len(items)))
	return items
}

// FetchTitles returns the non-empty entry titles of a feed. Any failure
// yields no titles.
func (p *FeedProvider) FetchTitles(ctx context.Context, feedURL string) []string {
	ctx, span := p.tracer.Start(ctx, "feed.fetch-titles")
	defer span.End()

	resp := p.gateway.Get(ctx, feedURL)
	if resp == nil {
		return nil
	}
	titles, err := ParseTitles(resp.Body)
	if err != nil {
		log.Debug("failed to parse social feed", "url", feedURL, "err", err)
		return nil
	}
	return titles
}

// ParseItems decodes an RSS or Atom document into news items. Dates are kept
// as the raw text found in the feed (published, falling back to updated).
func ParseItems(source string, body []byte) ([]domain.NewsItem, error) {
	feed, err := parse(body)
	if err != nil {
		return nil, err
	}

	items := make([]domain.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		title := it.Title
		if title == "" {
			title = NoTitle
		}
		link := it.Link
		if link == "" && len(it.Links) > 0 {
			link = it.Links[0]
		}
		pub := it.Published
		if pub == "" {
			pub = it.Updated
		}
		items = append(items, domain.NewsItem{
			Source:      source,
			Title:       title,
			Link:        link,
			PubDate:     pub,
			Description: truncateRunes(it.Description, maxDescriptionRunes),
		})
	}
	return items, nil
}

func ParseTitles(body []byte) ([]string, error) {
	feed, err := parse(body)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil || it.Title == "" {
			continue
		}
		titles = append(titles, it.Title)
	}
	return titles, nil
}

// gofeed parsers keep per-document state, so each call gets its own.
func parse(body []byte) (*gofeed.Feed, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return feed, nil
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
