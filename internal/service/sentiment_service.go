package service

import (
	"context"
	"time"

	"hyperhub/internal/domain"
	"hyperhub/internal/sentiment"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const maxSampleHeadlines = 10

type NewsGetter interface {
	GetNews(ctx context.Context) domain.NewsFeed
}

type TitleFetcher interface {
	FetchTitles(ctx context.Context, feedURL string) []string
}

// SentimentService scores the merged news headlines together with the
// titles of a social feed.
type SentimentService struct {
	tracer    trace.Tracer
	news      NewsGetter
	social    TitleFetcher
	socialURL string
	now       func() time.Time
}

func NewSentimentService(tracer trace.Tracer, news NewsGetter, social TitleFetcher, socialURL string) *SentimentService {
	return &SentimentService{
		tracer:    tracer,
		news:      news,
		social:    social,
		socialURL: socialURL,
		now:       time.Now,
	}
}

func (s *SentimentService) GetSentiment(ctx context.Context) domain.SentimentResult {
	ctx, span := s.tracer.Start(ctx, "sentiment-service.get-sentiment")
	defer span.End()

	return s.ScoreFeed(ctx, s.news.GetNews(ctx))
}

// ScoreFeed scores an already fetched news feed, adding the social titles.
func (s *SentimentService) ScoreFeed(ctx context.Context, feed domain.NewsFeed) domain.SentimentResult {
	ctx, span := s.tracer.Start(ctx, "sentiment-service.score-feed")
	defer span.End()

	headlines := make([]string, 0, len(feed.Items))
	for _, it := range feed.Items {
		headlines = append(headlines, it.Title)
	}

	var socialTitles []string
	if s.social != nil && s.socialURL != "" {
		socialTitles = s.social.FetchTitles(ctx, s.socialURL)
	}

	texts := make([]string, 0, len(headlines)+len(socialTitles))
	texts = append(texts, headlines...)
	texts = append(texts, socialTitles...)
	tally := sentiment.Count(texts)

	sample := headlines
	if len(sample) > maxSampleHeadlines {
		sample = sample[:maxSampleHeadlines]
	}

	span.SetAttributes(
		attribute.Int("sentiment.headlines", len(headlines)),
		attribute.Int("sentiment.social_titles", len(socialTitles)),
		attribute.Int("sentiment.score", tally.Index()),
	)

	return domain.SentimentResult{
		Score:           tally.Index(),
		PositiveHits:    tally.PositiveHits,
		NegativeHits:    tally.NegativeHits,
		SampleHeadlines: append([]string{}, sample...),
		FetchedAt:       domain.Timestamp(s.now()),
	}
}
