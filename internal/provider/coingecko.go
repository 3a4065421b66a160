package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"hyperhub/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

var (
	// ErrFetchFailed means the markets endpoint could not be reached or
	// returned something other than a JSON array.
	ErrFetchFailed = errors.New("failed_fetch")
	// ErrNoData means the markets endpoint answered with an empty list.
	ErrNoData = errors.New("no_data")
)

// CoinGeckoProvider reads single-asset quotes from the CoinGecko markets API.
type CoinGeckoProvider struct {
	gateway     Getter
	baseURL     string
	tracer      trace.Tracer
	limiter     *RateLimiter
	waitTimeout time.Duration
}

// NewCoinGeckoProvider creates a provider with built-in rate limiting.
// Rate limited to 8 requests per minute (one token every 7.5 seconds). A
// caller waits for a token at most timeout, the same bound the gateway puts
// on the request itself.
func NewCoinGeckoProvider(tracer trace.Tracer, gateway Getter, baseURL string, timeout time.Duration) *CoinGeckoProvider {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = coingeckoBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &CoinGeckoProvider{
		gateway:     gateway,
		baseURL:     baseURL,
		tracer:      tracer,
		limiter:     NewRateLimiter(8, 7500*time.Millisecond),
		waitTimeout: timeout,
	}
}

// marketRow mirrors the fields we read from /coins/markets. Pointers keep
// JSON nulls distinguishable from zero.
type marketRow struct {
	ID                       *string  `json:"id"`
	Symbol                   *string  `json:"symbol"`
	Name                     *string  `json:"name"`
	CurrentPrice             *float64 `json:"current_price"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	TotalVolume              *float64 `json:"total_volume"`
	MarketCap                *float64 `json:"market_cap"`
	LastUpdated              *string  `json:"last_updated"`
}

// FetchQuote returns the market row for a CoinGecko asset id.
func (p *CoinGeckoProvider) FetchQuote(ctx context.Context, id string) (*domain.Quote, error) {
	ctx, span := p.tracer.Start(ctx, "coingecko.fetch-quote")
	defer span.End()
	span.SetAttributes(attribute.String("coin.id", id))

	if err := p.waitForToken(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", ErrFetchFailed, err)
	}

	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("ids", id)
	params.Set("order", "market_cap_desc")
	params.Set("per_page", "1")
	params.Set("page", "1")
	params.Set("sparkline", "false")

	header := DefaultHeader()
	header.Set("Accept", "application/json")

	resp := p.gateway.Get(ctx, p.baseURL+"/coins/markets", WithQuery(params), WithHeader(header))
	if resp == nil {
		return nil, ErrFetchFailed
	}

	var rows []marketRow
	if err := json.Unmarshal(resp.Body, &rows); err != nil {
		return nil, fmt.Errorf("%w: parse markets: %v", ErrFetchFailed, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	row := rows[0]
	return &domain.Quote{
		ID:          row.ID,
		Symbol:      row.Symbol,
		Name:        row.Name,
		Price:       row.CurrentPrice,
		Change24h:   row.PriceChangePercentage24h,
		Volume24h:   row.TotalVolume,
		MarketCap:   row.MarketCap,
		LastUpdated: row.LastUpdated,
	}, nil
}

func (p *CoinGeckoProvider) waitForToken(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.waitTimeout)
	defer cancel()
	return p.limiter.Wait(ctx)
}
