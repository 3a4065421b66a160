package handler

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// guard runs fn and turns a panic into an error so the endpoint can still
// answer with its empty-list failure body.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

// GetWhales godoc
// @Summary      Get recent whale trades
// @Description  Placeholder data until an on-chain source is connected
// @Tags         onchain
// @Produce      json
// @Success      200  {object}  domain.WhaleReport
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/whales [get]
func (h *Handler) GetWhales(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-whales")
	defer span.End()

	var report any
	err := guard(func() error {
		r, err := h.placeholders.Whales(ctx)
		report = r
		return err
	})
	if err != nil {
		log.Error("whales failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"whales": []any{}, "error": "failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetOpenInterest godoc
// @Summary      Get open interest series
// @Description  Twelve hourly long/short open interest points ending now (placeholder data)
// @Tags         onchain
// @Produce      json
// @Success      200  {object}  domain.OpenInterestReport
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/oi [get]
func (h *Handler) GetOpenInterest(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-open-interest")
	defer span.End()

	var report any
	err := guard(func() error {
		r, err := h.placeholders.OpenInterest(ctx)
		report = r
		return err
	})
	if err != nil {
		log.Error("open interest failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"series": []any{}, "error": "failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetGovernance godoc
// @Summary      Get governance proposals
// @Description  HIP proposals with validator votes (placeholder data, no tallying)
// @Tags         onchain
// @Produce      json
// @Success      200  {object}  domain.GovernanceReport
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/governance [get]
func (h *Handler) GetGovernance(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-governance")
	defer span.End()

	var report any
	err := guard(func() error {
		r, err := h.placeholders.Governance(ctx)
		report = r
		return err
	})
	if err != nil {
		log.Error("governance failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"hips": []any{}, "error": "failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}
