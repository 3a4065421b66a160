package domain

import "time"

// timestampLayout renders UTC as "+00:00" rather than "Z"; the dashboard
// parses both but historically received the offset form.
const timestampLayout = "2006-01-02T15:04:05.000000-07:00"

// Timestamp formats t as an ISO-8601 UTC timestamp.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// FeedSource is a named RSS/Atom feed.
type FeedSource struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// NewsItem is a single normalized feed entry.
type NewsItem struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
	Description string `json:"description"`
}

type NewsFeed struct {
	Items     []NewsItem `json:"items"`
	FetchedAt string     `json:"fetched_at"`
}

type SentimentResult struct {
	Score           int      `json:"sentiment_score"`
	PositiveHits    int      `json:"pos_count"`
	NegativeHits    int      `json:"neg_count"`
	SampleHeadlines []string `json:"sample_headlines"`
	FetchedAt       string   `json:"fetched_at"`
}
