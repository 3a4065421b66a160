package service

import (
	"context"
	"strings"

	"hyperhub/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type QuoteProvider interface {
	FetchQuote(ctx context.Context, id string) (*domain.Quote, error)
}

type QuoteService struct {
	tracer   trace.Tracer
	provider QuoteProvider
}

func NewQuoteService(tracer trace.Tracer, provider QuoteProvider) *QuoteService {
	return &QuoteService{tracer: tracer, provider: provider}
}

// GetQuote returns the quote for id, or for domain.DefaultAssetID when id is
// blank. Errors are provider.ErrFetchFailed or provider.ErrNoData.
func (s *QuoteService) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "quote-service.get-quote")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		id = domain.DefaultAssetID
	}
	span.SetAttributes(attribute.String("coin.id", id))

	return s.provider.FetchQuote(ctx, id)
}
