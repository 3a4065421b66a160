package provider

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"
)

func newTestCoinGecko(t *testing.T, handler func(req *http.Request) (*http.Response, error)) *CoinGeckoProvider {
	t.Helper()
	g := NewGateway(testTracer, time.Second)
	g.client = &http.Client{Transport: roundTripFunc(handler)}
	p := NewCoinGeckoProvider(testTracer, g, "http://example/api/v3/", time.Second)
	p.limiter = NewRateLimiter(10, time.Millisecond)
	return p
}

func TestCoinGeckoFetchQuote(t *testing.T) {
	p := newTestCoinGecko(t, func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/v3/coins/markets" {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		q := req.URL.Query()
		if q.Get("ids") != "hyperliquid" || q.Get("vs_currency") != "usd" || q.Get("order") != "market_cap_desc" ||
			q.Get("per_page") != "1" || q.Get("page") != "1" || q.Get("sparkline") != "false" {
			t.Fatalf("unexpected query: %s", req.URL.RawQuery)
		}
		if req.Header.Get("User-Agent") != DefaultUserAgent {
			t.Fatalf("expected identifying user agent")
		}
		body := `[{"id":"hyperliquid","symbol":"hype","name":"Hyperliquid","current_price":24.5,"price_change_percentage_24h":-1.25,"total_volume":150000000,"market_cap":null,"last_updated":"2026-02-13T10:00:00.000Z"}]`
		return textResponse(http.StatusOK, body), nil
	})

	q, err := p.FetchQuote(context.Background(), "hyperliquid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *q.ID != "hyperliquid" || *q.Symbol != "hype" || *q.Price != 24.5 || *q.Change24h != -1.25 {
		t.Fatalf("unexpected quote: %+v", q)
	}
	if q.MarketCap != nil {
		t.Fatalf("null market cap should stay nil, got %v", *q.MarketCap)
	}
	if q.LastUpdated == nil || *q.LastUpdated != "2026-02-13T10:00:00.000Z" {
		t.Fatalf("unexpected last updated: %v", q.LastUpdated)
	}
}

func TestCoinGeckoFetchQuoteEmptyList(t *testing.T) {
	p := newTestCoinGecko(t, func(req *http.Request) (*http.Response, error) {
		return textResponse(http.StatusOK, "[]"), nil
	})

	if _, err := p.FetchQuote(context.Background(), "hyperliquid"); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestCoinGeckoFetchQuoteUpstreamFailure(t *testing.T) {
	captureLogs(t)
	p := newTestCoinGecko(t, func(req *http.Request) (*http.Response, error) {
		return textResponse(http.StatusTooManyRequests, "slow down"), nil
	})

	if _, err := p.FetchQuote(context.Background(), "hyperliquid"); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestCoinGeckoFetchQuoteBadPayload(t *testing.T) {
	p := newTestCoinGecko(t, func(req *http.Request) (*http.Response, error) {
		return textResponse(http.StatusOK, `{"status":{"error_code":429}}`), nil
	})

	_, err := p.FetchQuote(context.Background(), "hyperliquid")
	if !errors.Is(err, ErrFetchFailed) || !strings.Contains(err.Error(), "parse markets") {
		t.Fatalf("expected wrapped ErrFetchFailed, got %v", err)
	}
}

func TestCoinGeckoDefaultsBaseURL(t *testing.T) {
	p := NewCoinGeckoProvider(testTracer, &stubGetter{}, " ", 0)
	if p.baseURL != coingeckoBaseURL {
		t.Fatalf("expected default base url, got %s", p.baseURL)
	}
	if p.waitTimeout != DefaultFetchTimeout {
		t.Fatalf("expected default wait timeout, got %v", p.waitTimeout)
	}
}

func TestCoinGeckoDrainedLimiterFailsWithinTimeout(t *testing.T) {
	getter := &stubGetter{bodies: map[string]string{}}
	p := NewCoinGeckoProvider(testTracer, getter, "http://example/api/v3", 50*time.Millisecond)
	p.limiter = NewRateLimiter(1, time.Hour)
	if err := p.limiter.Wait(context.Background()); err != nil {
		t.Fatalf("drain limiter: %v", err)
	}

	const callers = 5
	errs := make(chan error, callers)
	start := time.Now()
	for i := 0; i < callers; i++ {
		go func() {
			_, err := p.FetchQuote(context.Background(), "hyperliquid")
			errs <- err
		}()
	}
	for i := 0; i < callers; i++ {
		if err := <-errs; !errors.Is(err, ErrFetchFailed) {
			t.Fatalf("expected ErrFetchFailed, got %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("waiting callers should give up after the timeout, took %v", elapsed)
	}
	if len(getter.calls) != 0 {
		t.Fatalf("no request should reach the gateway, got %d", len(getter.calls))
	}
}
