package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// Dashboard godoc
// @Summary      Dashboard page
// @Description  Single page that reads every /api endpoint
// @Tags         dashboard
// @Produce      html
// @Success      200  {string}  string
// @Router       / [get]
func (h *Handler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":   "HyperHub",
		"AssetID": "hyperliquid",
	})
}
