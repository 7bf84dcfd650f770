package handler

import (
	"context"
	"log/slog"
	"net/http"

	"finbrief/pkg/market"

	"github.com/gin-gonic/gin"
)

type IndexService interface {
	MajorIndices(ctx context.Context) []market.IndexSnapshot
	USDKRW(ctx context.Context) float64
}

// HomeHandler serves the unauthenticated dashboard widgets.
type HomeHandler struct {
	indices IndexService
	history HistoryService
}

func NewHomeHandler(indices IndexService, history HistoryService) *HomeHandler {
	return &HomeHandler{indices: indices, history: history}
}

func (h *HomeHandler) GetIndices(c *gin.Context) {
	c.JSON(http.StatusOK, h.indices.MajorIndices(c.Request.Context()))
}

func (h *HomeHandler) GetChart(c *gin.Context) {
	ticker := market.ResolveIndexAlias(c.Param("ticker"))

	points, err := h.history.History(c.Request.Context(), ticker, historyPeriod)
	if err != nil {
		slog.Error("error fetching index chart", "ticker", ticker, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "No historical data available"})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Ticker: ticker, History: points})
}

func (h *HomeHandler) GetExchangeRate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"usd_krw": h.indices.USDKRW(c.Request.Context())})
}
