package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"finbrief/pkg/llm"
	"finbrief/pkg/market"
	"finbrief/pkg/news"

	"github.com/gin-gonic/gin"
)

type QuoteService interface {
	Snapshot(ctx context.Context, ticker string) (*market.PriceSnapshot, error)
}

type HistoryService interface {
	History(ctx context.Context, symbol, period string) ([]market.HistoryPoint, error)
}

type NewsAggregator interface {
	Aggregate(ticker, companyName string) []news.Item
}

type BriefingService interface {
	Brief(ctx context.Context, ticker string, data llm.MarketData, headlines []llm.Headline) llm.Briefing
}

type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
}

const (
	quoteCacheTTL    = time.Minute
	briefingCacheTTL = 10 * time.Minute

	historyPeriod = "3mo"
)

type AssetHandler struct {
	quotes    QuoteService
	history   HistoryService
	news      NewsAggregator
	briefings BriefingService
	cache     Cache
}

func NewAssetHandler(quotes QuoteService, history HistoryService, aggregator NewsAggregator, briefings BriefingService, cache Cache) *AssetHandler {
	return &AssetHandler{
		quotes:    quotes,
		history:   history,
		news:      aggregator,
		briefings: briefings,
		cache:     cache,
	}
}

func (h *AssetHandler) GetPrice(c *gin.Context) {
	ticker := c.Param("ticker")
	key := "finbrief:quote:" + ticker

	if cached, ok := h.cache.Get(key); ok {
		var snap market.PriceSnapshot
		if err := json.Unmarshal([]byte(cached), &snap); err == nil {
			c.JSON(http.StatusOK, snap)
			return
		}
	}

	snap, err := h.quotes.Snapshot(c.Request.Context(), ticker)
	if err != nil {
		slog.Error("error fetching quote", "ticker", ticker, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Price data not found"})
		return
	}

	if encoded, err := json.Marshal(snap); err == nil {
		h.cache.Set(key, string(encoded), quoteCacheTTL)
	}

	c.JSON(http.StatusOK, snap)
}

// GetNews returns the aggregated news list for a ticker. The optional "name"
// query carries a human-readable company name used as the domestic search
// keyword. An empty result is an empty list, never an error.
func (h *AssetHandler) GetNews(c *gin.Context) {
	ticker := c.Param("ticker")

	items := h.news.Aggregate(ticker, c.Query("name"))
	if items == nil {
		items = []news.Item{}
	}

	c.JSON(http.StatusOK, items)
}

func (h *AssetHandler) GetHistory(c *gin.Context) {
	ticker := c.Param("ticker")

	points, err := h.history.History(c.Request.Context(), ticker, historyPeriod)
	if err != nil {
		slog.Error("error fetching history", "ticker", ticker, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "No historical data available"})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Ticker: ticker, History: points})
}

// GetBriefing composes quote + aggregated news into a generated analysis. A
// missing quote is a 404 before generation; news and generation failures
// degrade inside their own layers, so a non-404 response always carries text.
func (h *AssetHandler) GetBriefing(c *gin.Context) {
	ticker := c.Param("ticker")
	key := "finbrief:briefing:" + ticker

	if cached, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, BriefingResponse{Ticker: ticker, Briefing: cached})
		return
	}

	snap, err := h.quotes.Snapshot(c.Request.Context(), ticker)
	if err != nil {
		slog.Error("error fetching quote for briefing", "ticker", ticker, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Price data not found"})
		return
	}

	items := h.news.Aggregate(ticker, c.Query("name"))

	headlines := make([]llm.Headline, len(items))
	for i, it := range items {
		headlines[i] = llm.Headline{Title: it.Title, Source: it.Source}
	}

	briefing := h.briefings.Brief(c.Request.Context(), ticker, llm.MarketData{
		Price:         snap.Price,
		ChangePercent: snap.ChangePercent,
	}, headlines)

	// Don't pin the outage message in the cache.
	if briefing.Text != llm.FallbackBriefing {
		h.cache.Set(key, briefing.Text, briefingCacheTTL)
	}

	c.JSON(http.StatusOK, BriefingResponse{Ticker: ticker, Briefing: briefing.Text})
}
