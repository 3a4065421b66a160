package main

import (
	"context"

	"hyperhub/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "1.0.0"

type quoteGetter interface {
	GetQuote(ctx context.Context, id string) (*domain.Quote, error)
}

type newsGetter interface {
	GetNews(ctx context.Context) domain.NewsFeed
}

type sentimentGetter interface {
	GetSentiment(ctx context.Context) domain.SentimentResult
}

type placeholders interface {
	Whales(ctx context.Context) (*domain.WhaleReport, error)
	OpenInterest(ctx context.Context) (*domain.OpenInterestReport, error)
	Governance(ctx context.Context) (*domain.GovernanceReport, error)
}

type toolServices struct {
	quotes       quoteGetter
	news         newsGetter
	sentiment    sentimentGetter
	placeholders placeholders
}

type priceInput struct {
	ID string `json:"id,omitempty" jsonschema:"CoinGecko asset id, defaults to hyperliquid"`
}

type noInput struct{}

// newMCPServer exposes the dashboard read paths as MCP tools. Each tool
// returns the same JSON document as the matching /api endpoint.
func newMCPServer(svc toolServices) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "hyperhub", Version: serverVersion}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_price",
		Description: "Market quote (price, 24h change, volume, market cap) for a CoinGecko asset id.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in priceInput) (*mcp.CallToolResult, *domain.Quote, error) {
		q, err := svc.quotes.GetQuote(ctx, in.ID)
		if err != nil {
			return nil, nil, err
		}
		return nil, q, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_news",
		Description: "Up to 50 merged crypto news items, newest first.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, domain.NewsFeed, error) {
		return nil, svc.news.GetNews(ctx), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_sentiment",
		Description: "Keyword sentiment index (0-100, 50 neutral) over news and social headlines.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, domain.SentimentResult, error) {
		return nil, svc.sentiment.GetSentiment(ctx), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_whales",
		Description: "Recent large trades. Placeholder data.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, *domain.WhaleReport, error) {
		r, err := svc.placeholders.Whales(ctx)
		return nil, r, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_open_interest",
		Description: "Twelve hourly long/short open interest points. Placeholder data.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, *domain.OpenInterestReport, error) {
		r, err := svc.placeholders.OpenInterest(ctx)
		return nil, r, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_governance",
		Description: "HIP governance proposals with validator votes. Placeholder data.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noInput) (*mcp.CallToolResult, *domain.GovernanceReport, error) {
		r, err := svc.placeholders.Governance(ctx)
		return nil, r, err
	})

	return server
}
