package handler

import (
	"context"

	"hyperhub/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
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

// Placeholders serves the synthetic whale, open-interest and governance data.
type Placeholders interface {
	Whales(ctx context.Context) (*domain.WhaleReport, error)
	OpenInterest(ctx context.Context) (*domain.OpenInterestReport, error)
	Governance(ctx context.Context) (*domain.GovernanceReport, error)
}

type Handler struct {
	tracer       trace.Tracer
	quotes       QuoteGetter
	news         NewsGetter
	sentiment    SentimentGetter
	placeholders Placeholders
}

func New(
	tracer trace.Tracer,
	quotes QuoteGetter,
	news NewsGetter,
	sentiment SentimentGetter,
	placeholders Placeholders,
) *Handler {
	return &Handler{
		tracer:       tracer,
		quotes:       quotes,
		news:         news,
		sentiment:    sentiment,
		placeholders: placeholders,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(dashboardTemplate)
	r.GET("/", h.Dashboard)

	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/price", h.GetPrice)
	api.GET("/news", h.GetNews)
	api.GET("/sentiment", h.GetSentiment)
	api.GET("/whales", h.GetWhales)
	api.GET("/oi", h.GetOpenInterest)
	api.GET("/governance", h.GetGovernance)
}
