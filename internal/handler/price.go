package handler

import (
	"errors"
	"net/http"

	"hyperhub/internal/provider"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetPrice godoc
// @Summary      Get market quote for an asset
// @Description  Returns price, 24h change, volume and market cap from CoinGecko. Fields the upstream leaves out are null.
// @Tags         market
// @Produce      json
// @Param        id  query  string  false  "CoinGecko asset id"  default(hyperliquid)
// @Success      200  {object}  domain.Quote
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/price [get]
func (h *Handler) GetPrice(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-price")
	defer span.End()

	id := c.Query("id")
	span.SetAttributes(attribute.String("coin.id", id))

	quote, err := h.quotes.GetQuote(ctx, id)
	switch {
	case errors.Is(err, provider.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{"error": provider.ErrNoData.Error()})
		return
	case err != nil:
		log.Warn("quote fetch failed", "id", id, "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": provider.ErrFetchFailed.Error()})
		return
	}

	c.JSON(http.StatusOK, quote)
}
