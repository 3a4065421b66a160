package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hyperhub/internal/domain"
	"hyperhub/internal/provider"

	"github.com/charmbracelet/log"
	tele "gopkg.in/telebot.v3"
)

const (
	newsHeadlines = 5
	replyTimeout  = 30 * time.Second
)

type QuoteGetter interface {
	GetQuote(ctx context.Context, id string) (*domain.Quote, error)
}

type NewsGetter interface {
	GetNews(ctx context.Context) domain.NewsFeed
}

type SentimentGetter interface {
	GetSentiment(ctx context.Context) domain.SentimentResult
}

// Services are the read paths the bot answers from.
type Services struct {
	Quotes    QuoteGetter
	News      NewsGetter
	Sentiment SentimentGetter
}

var newBot = tele.NewBot

// StartTelegramBot registers the chat commands and starts long polling in the
// background. An empty token disables the bot.
func StartTelegramBot(token string, svc Services) error {
	if token == "" {
		log.Info("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return nil
	}
	b, err := newBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return fmt.Errorf("create telegram bot: %w", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})
	b.Handle("/price", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		return c.Send(PriceReply(ctx, svc.Quotes, c.Args()))
	})
	b.Handle("/news", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		return c.Send(NewsReply(ctx, svc.News), tele.NoPreview)
	})
	b.Handle("/sentiment", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		return c.Send(SentimentReply(ctx, svc.Sentiment))
	})

	log.Info("Telegram bot started")
	go b.Start()
	return nil
}

// PriceReply formats the quote for the first argument, or for the default
// asset when none is given.
func PriceReply(ctx context.Context, quotes QuoteGetter, args []string) string {
	id := ""
	if len(args) > 0 {
		id = strings.ToLower(strings.TrimSpace(args[0]))
	}
	q, err := quotes.GetQuote(ctx, id)
	if id == "" {
		id = domain.DefaultAssetID
	}
	switch {
	case errors.Is(err, provider.ErrNoData):
		return fmt.Sprintf("No market data for %s", id)
	case err != nil:
		return fmt.Sprintf("Could not fetch price for %s, try again later", id)
	}

	name := id
	if q.Name != nil {
		name = *q.Name
	}
	if q.Symbol != nil {
		name = fmt.Sprintf("%s (%s)", name, strings.ToUpper(*q.Symbol))
	}
	return fmt.Sprintf(
		"%s\nPrice: $%s\n24h Change: %s%%\n24h Volume: $%s\nMarket Cap: $%s",
		name,
		number(q.Price, "%.4f"),
		number(q.Change24h, "%.2f"),
		number(q.Volume24h, "%.0f"),
		number(q.MarketCap, "%.0f"),
	)
}

func NewsReply(ctx context.Context, news NewsGetter) string {
	feed := news.GetNews(ctx)
	if len(feed.Items) == 0 {
		return "No headlines right now"
	}
	var sb strings.Builder
	sb.WriteString("Latest headlines\n")
	for i, it := range feed.Items {
		if i == newsHeadlines {
			break
		}
		fmt.Fprintf(&sb, "\n%d. %s (%s)", i+1, it.Title, it.Source)
		if it.Link != "" {
			fmt.Fprintf(&sb, "\n%s", it.Link)
		}
	}
	return sb.String()
}

func SentimentReply(ctx context.Context, sentiment SentimentGetter) string {
	res := sentiment.GetSentiment(ctx)
	return fmt.Sprintf(
		"Sentiment: %d/100 (%s)\nBullish hits: %d\nBearish hits: %d",
		res.Score, mood(res.Score), res.PositiveHits, res.NegativeHits,
	)
}

func mood(score int) string {
	switch {
	case score >= 60:
		return "bullish"
	case score <= 40:
		return "bearish"
	default:
		return "neutral"
	}
}

func number(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}
