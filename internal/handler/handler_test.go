package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hyperhub/internal/domain"
	"hyperhub/internal/provider"
	"hyperhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("handler-test")

type stubQuotes struct {
	quote *domain.Quote
	err   error
	ids   []string
}

func (s *stubQuotes) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	s.ids = append(s.ids, id)
	return s.quote, s.err
}

type stubNews struct{ feed domain.NewsFeed }

func (s stubNews) GetNews(ctx context.Context) domain.NewsFeed { return s.feed }

type stubSentiment struct{ result domain.SentimentResult }

func (s stubSentiment) GetSentiment(ctx context.Context) domain.SentimentResult { return s.result }

type stubPlaceholders struct {
	err   error
	panic bool
}

func (s stubPlaceholders) Whales(ctx context.Context) (*domain.WhaleReport, error) {
	if s.panic {
		panic("boom")
	}
	if s.err != nil {
		return nil, s.err
	}
	return &domain.WhaleReport{Whales: []domain.WhaleTrade{{TxHash: "0x1", SizeUSD: 10}}, TotalWhaleVolume: 10}, nil
}

func (s stubPlaceholders) OpenInterest(ctx context.Context) (*domain.OpenInterestReport, error) {
	if s.panic {
		panic("boom")
	}
	if s.err != nil {
		return nil, s.err
	}
	p := domain.OiPoint{Ts: 1, Longs: 2, Shorts: 1, OI: 3, LongShortRatio: 2}
	return &domain.OpenInterestReport{Series: []domain.OiPoint{p}, Latest: p}, nil
}

func (s stubPlaceholders) Governance(ctx context.Context) (*domain.GovernanceReport, error) {
	if s.panic {
		panic("boom")
	}
	if s.err != nil {
		return nil, s.err
	}
	return &domain.GovernanceReport{Proposals: []domain.GovernanceProposal{{ID: "HIP-1"}}}, nil
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), JSONRecovery())
	h.RegisterRoutes(r)
	return r
}

func newTestHandler(quotes QuoteGetter, placeholders Placeholders) *Handler {
	return New(testTracer, quotes, stubNews{}, stubSentiment{}, placeholders)
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse error: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestHealth(t *testing.T) {
	r := newTestRouter(newTestHandler(&stubQuotes{}, stubPlaceholders{}))

	w := doGet(r, "/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	ts, _ := body["time"].(string)
	assert.Equal(t, true, strings.HasSuffix(ts, "+00:00"))
}

func TestGetPrice_Success(t *testing.T) {
	id, price := "hyperliquid", 42.5
	quotes := &stubQuotes{quote: &domain.Quote{ID: &id, Price: &price}}
	r := newTestRouter(newTestHandler(quotes, stubPlaceholders{}))

	w := doGet(r, "/api/price?id=hyperliquid")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "hyperliquid", body["id"])
	assert.Equal(t, 42.5, body["price"])
	assert.Equal(t, nil, body["market_cap"])
	assert.Equal(t, []string{"hyperliquid"}, quotes.ids)
}

func TestGetPrice_PassesBlankID(t *testing.T) {
	quotes := &stubQuotes{quote: &domain.Quote{}}
	r := newTestRouter(newTestHandler(quotes, stubPlaceholders{}))

	w := doGet(r, "/api/price")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{""}, quotes.ids)
}

func TestGetPrice_NoData(t *testing.T) {
	quotes := &stubQuotes{err: provider.ErrNoData}
	r := newTestRouter(newTestHandler(quotes, stubPlaceholders{}))

	w := doGet(r, "/api/price?id=unknown")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no_data", decode(t, w)["error"])
}

func TestGetPrice_FetchFailed(t *testing.T) {
	for _, err := range []error{
		provider.ErrFetchFailed,
		fmt.Errorf("decode markets: %w", provider.ErrFetchFailed),
		errors.New("unexpected"),
	} {
		r := newTestRouter(newTestHandler(&stubQuotes{err: err}, stubPlaceholders{}))

		w := doGet(r, "/api/price")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "failed_fetch", decode(t, w)["error"])
	}
}

func TestGetNews(t *testing.T) {
	feed := domain.NewsFeed{
		Items:     []domain.NewsItem{{Source: "A", Title: "t", Link: "l", PubDate: "2025-01-01", Description: "d"}},
		FetchedAt: "2025-01-01T00:00:00.000000+00:00",
	}
	h := New(testTracer, &stubQuotes{}, stubNews{feed: feed}, stubSentiment{}, stubPlaceholders{})
	r := newTestRouter(h)

	w := doGet(r, "/api/news")

	assert.Equal(t, http.StatusOK, w.Code)
	var got domain.NewsFeed
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	assert.Equal(t, feed, got)
	assert.Equal(t, true, strings.Contains(w.Body.String(), `"pubDate":"2025-01-01"`))
}

func TestGetNews_EmptyIsArray(t *testing.T) {
	h := New(testTracer, &stubQuotes{}, stubNews{feed: domain.NewsFeed{Items: []domain.NewsItem{}}}, stubSentiment{}, stubPlaceholders{})
	r := newTestRouter(h)

	w := doGet(r, "/api/news")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, strings.Contains(w.Body.String(), `"items":[]`))
}

func TestGetSentiment(t *testing.T) {
	result := domain.SentimentResult{Score: 67, PositiveHits: 2, NegativeHits: 1, SampleHeadlines: []string{"a"}, FetchedAt: "x"}
	h := New(testTracer, &stubQuotes{}, stubNews{}, stubSentiment{result: result}, stubPlaceholders{})
	r := newTestRouter(h)

	w := doGet(r, "/api/sentiment")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(67), body["sentiment_score"])
	assert.Equal(t, float64(2), body["pos_count"])
	assert.Equal(t, float64(1), body["neg_count"])
	assert.Equal(t, []any{"a"}, body["sample_headlines"])
}

func TestPlaceholders_Success(t *testing.T) {
	r := newTestRouter(newTestHandler(&stubQuotes{}, service.NewPlaceholderService(testTracer)))

	w := doGet(r, "/api/whales")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(930000), decode(t, w)["total_whale_volume"])

	w = doGet(r, "/api/oi")
	assert.Equal(t, http.StatusOK, w.Code)
	series, _ := decode(t, w)["series"].([]any)
	assert.Equal(t, 12, len(series))

	w = doGet(r, "/api/governance")
	assert.Equal(t, http.StatusOK, w.Code)
	hips, _ := decode(t, w)["hips"].([]any)
	assert.Equal(t, 2, len(hips))
}

func TestPlaceholders_Failures(t *testing.T) {
	cases := []struct {
		name  string
		stub  stubPlaceholders
		path  string
		field string
	}{
		{"whales error", stubPlaceholders{err: context.Canceled}, "/api/whales", "whales"},
		{"whales panic", stubPlaceholders{panic: true}, "/api/whales", "whales"},
		{"oi error", stubPlaceholders{err: context.Canceled}, "/api/oi", "series"},
		{"oi panic", stubPlaceholders{panic: true}, "/api/oi", "series"},
		{"governance error", stubPlaceholders{err: context.Canceled}, "/api/governance", "hips"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(newTestHandler(&stubQuotes{}, tc.stub))

			w := doGet(r, tc.path)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			body := decode(t, w)
			assert.Equal(t, "failed", body["error"])
			assert.Equal(t, []any{}, body[tc.field])
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(newTestHandler(&stubQuotes{}, stubPlaceholders{}))

	w := doGet(r, "/api/health")
	assert.Equal(t, 36, len(w.Header().Get(RequestIDHeader)))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestJSONRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), JSONRecovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := doGet(r, "/boom")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed", decode(t, w)["error"])
}

func TestDashboard(t *testing.T) {
	r := newTestRouter(newTestHandler(&stubQuotes{}, stubPlaceholders{}))

	w := doGet(r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, strings.Contains(w.Header().Get("Content-Type"), "text/html"))
	assert.Equal(t, true, strings.Contains(w.Body.String(), "<title>HyperHub</title>"))
	assert.Equal(t, true, strings.Contains(w.Body.String(), "/api/news"))
}

func TestDashboardScript(t *testing.T) {
	r := newTestRouter(newTestHandler(&stubQuotes{}, stubPlaceholders{}))

	body := doGet(r, "/").Body.String()

	for _, want := range []string{
		`id="cbbiOverall"`,
		"Math.round((s + w + o) / 3)",
		"Math.log10(1 + volume)",
		"l.longs / Math.max(1, l.shorts)",
		"stakeSum(h.aye)",
		"stakeSum(h.nay)",
		`protocol === "http:" || protocol === "https:"`,
		"href = href ? safeHref(href)",
	} {
		assert.Equal(t, true, strings.Contains(body, want))
	}
	assert.Equal(t, false, strings.Contains(body, "a.href = it.link"))
}
