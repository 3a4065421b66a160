package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hyperhub/internal/domain"
)

type stubNews struct {
	feed domain.NewsFeed
}

func (s stubNews) GetNews(ctx context.Context) domain.NewsFeed { return s.feed }

func newsWithTitles(titles ...string) stubNews {
	items := make([]domain.NewsItem, 0, len(titles))
	for _, title := range titles {
		items = append(items, domain.NewsItem{Title: title})
	}
	return stubNews{feed: domain.NewsFeed{Items: items}}
}

func newTestSentiment(news NewsGetter, social TitleFetcher, socialURL string) *SentimentService {
	svc := NewSentimentService(testTracer, news, social, socialURL)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestSentimentService_ScoresNewsAndSocial(t *testing.T) {
	t.Parallel()

	social := &mockFeeds{titles: map[string][]string{"reddit": {"Rally"}}}
	svc := newTestSentiment(newsWithTitles("Token surge", "Market crash"), social, "reddit")

	res := svc.GetSentiment(context.Background())

	if res.PositiveHits != 2 || res.NegativeHits != 1 {
		t.Fatalf("unexpected hits: +%d -%d", res.PositiveHits, res.NegativeHits)
	}
	if res.Score != 67 {
		t.Fatalf("expected score 67, got %d", res.Score)
	}
	if fmt.Sprint(res.SampleHeadlines) != "[Token surge Market crash]" {
		t.Fatalf("sample should hold news headlines only, got %v", res.SampleHeadlines)
	}
	if fmt.Sprint(social.titleCalls) != "[reddit]" {
		t.Fatalf("expected social feed fetched once, got %v", social.titleCalls)
	}
	if res.FetchedAt != "2025-03-01T12:30:00.000000+00:00" {
		t.Fatalf("unexpected fetched_at %q", res.FetchedAt)
	}
}

func TestSentimentService_SampleCapped(t *testing.T) {
	t.Parallel()

	titles := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		titles = append(titles, fmt.Sprintf("plain %d", i))
	}
	res := newTestSentiment(newsWithTitles(titles...), nil, "").GetSentiment(context.Background())

	if len(res.SampleHeadlines) != 10 {
		t.Fatalf("expected 10 sample headlines, got %d", len(res.SampleHeadlines))
	}
	if res.SampleHeadlines[0] != "plain 0" || res.SampleHeadlines[9] != "plain 9" {
		t.Fatalf("unexpected sample %v", res.SampleHeadlines)
	}
	if res.Score != 50 || res.PositiveHits != 0 || res.NegativeHits != 0 {
		t.Fatalf("expected neutral result, got %+v", res)
	}
}

func TestSentimentService_NoInput(t *testing.T) {
	t.Parallel()

	social := &mockFeeds{}
	res := newTestSentiment(stubNews{}, social, "reddit").GetSentiment(context.Background())

	if res.Score != 50 {
		t.Fatalf("expected neutral score, got %d", res.Score)
	}
	if res.SampleHeadlines == nil || len(res.SampleHeadlines) != 0 {
		t.Fatalf("expected empty non-nil sample, got %#v", res.SampleHeadlines)
	}
}

func TestSentimentService_ScoreFeedUsesGivenFeed(t *testing.T) {
	t.Parallel()

	svc := newTestSentiment(newsWithTitles("unused crash"), nil, "")
	feed := domain.NewsFeed{Items: []domain.NewsItem{{Title: "HYPE rally"}, {Title: "Bullish breakout"}}}

	res := svc.ScoreFeed(context.Background(), feed)

	if res.PositiveHits != 2 || res.NegativeHits != 0 {
		t.Fatalf("expected only the given feed scored, got +%d -%d", res.PositiveHits, res.NegativeHits)
	}
	if fmt.Sprint(res.SampleHeadlines) != "[HYPE rally Bullish breakout]" {
		t.Fatalf("unexpected sample %v", res.SampleHeadlines)
	}
}
