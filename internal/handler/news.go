package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetNews godoc
// @Summary      Get merged news feed
// @Description  Returns up to 50 items from the configured RSS/Atom sources, newest first. Unavailable sources are skipped.
// @Tags         news
// @Produce      json
// @Success      200  {object}  domain.NewsFeed
// @Router       /api/news [get]
func (h *Handler) GetNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-news")
	defer span.End()

	feed := h.news.GetNews(ctx)
	span.SetAttributes(attribute.Int("news.items", len(feed.Items)))

	c.JSON(http.StatusOK, feed)
}

// GetSentiment godoc
// @Summary      Get headline sentiment index
// @Description  Scores news and social headlines against fixed keyword lists. 50 is neutral, range 0-100.
// @Tags         news
// @Produce      json
// @Success      200  {object}  domain.SentimentResult
// @Router       /api/sentiment [get]
func (h *Handler) GetSentiment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-sentiment")
	defer span.End()

	c.JSON(http.StatusOK, h.sentiment.GetSentiment(ctx))
}
