package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/loyaltycampaign/internal/chart"
	domainErrors "github.com/polkiloo/loyaltycampaign/internal/domain/errors"
	"github.com/polkiloo/loyaltycampaign/internal/server/http/dto"
)

// IndexTemplate is the name of the gallery page template.
const IndexTemplate = "index"

// ChartHandler serves rendered charts.
type ChartHandler struct {
	gallery ChartGallery
}

// NewChartHandler constructs ChartHandler.
func NewChartHandler(gallery ChartGallery) *ChartHandler {
	return &ChartHandler{gallery: gallery}
}

// Index handles GET /.
func (h *ChartHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, IndexTemplate, gin.H{"Charts": h.list()})
}

// List handles GET /api/charts.
func (h *ChartHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.list())
}

// Chart handles GET /charts/:index.
func (h *ChartHandler) Chart(c *gin.Context) {
	charts := h.gallery.Charts()
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(charts) {
		c.String(http.StatusNotFound, domainErrors.ErrChartNotFound.Error())
		return
	}
	c.Data(http.StatusOK, chart.ContentType, charts[index].SVG)
}

// Dismiss handles POST /dismiss.
func (h *ChartHandler) Dismiss(c *gin.Context) {
	h.gallery.Dismiss()
	c.String(http.StatusOK, "Charts dismissed. You can close this window.")
}

func (h *ChartHandler) list() []dto.ChartResponse {
	charts := h.gallery.Charts()
	resp := make([]dto.ChartResponse, 0, len(charts))
	for i, ch := range charts {
		resp = append(resp, dto.ChartResponse{
			Index: i,
			Name:  ch.Name,
			Title: ch.Title,
			URL:   fmt.Sprintf("/charts/%d", i),
		})
	}
	return resp
}
