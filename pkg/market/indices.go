package market

import (
	"context"
	"log/slog"
)

var majorIndices = []struct {
	Name   string
	Symbol string
}{
	{"KOSPI", "^KS11"},
	{"NASDAQ", "^IXIC"},
	{"S&P 500", "^GSPC"},
	{"Nikkei 225", "^N225"},
}

// URL-safe aliases for index chart routes ("&" cannot appear in a path).
var indexAliases = map[string]string{
	"KOSPI":  "^KS11",
	"NASDAQ": "^IXIC",
	"S_P500": "^GSPC",
	"NIKKEI": "^N225",
}

// ResolveIndexAlias maps a route-friendly index name to its quote symbol.
// Unknown tickers pass through unchanged.
func ResolveIndexAlias(ticker string) string {
	if symbol, ok := indexAliases[ticker]; ok {
		return symbol
	}
	return ticker
}

type IndexSnapshot struct {
	PriceSnapshot
	Name string `json:"name"`
}

// MajorIndices quotes the headline indices, skipping any that fail.
func (s *Service) MajorIndices(ctx context.Context) []IndexSnapshot {
	results := make([]IndexSnapshot, 0, len(majorIndices))
	for _, idx := range majorIndices {
		snap, err := s.Snapshot(ctx, idx.Symbol)
		if err != nil {
			slog.Warn("index quote unavailable", "index", idx.Name, "error", err)
			continue
		}
		results = append(results, IndexSnapshot{PriceSnapshot: *snap, Name: idx.Name})
	}
	return results
}

const fallbackUSDKRW = 1400.0

// USDKRW returns the live USD/KRW rate, or a static fallback when the quote
// is unavailable.
func (s *Service) USDKRW(ctx context.Context) float64 {
	snap, err := s.Snapshot(ctx, "KRW=X")
	if err != nil {
		slog.Warn("exchange rate unavailable, using fallback", "error", err)
		return fallbackUSDKRW
	}
	return snap.Price
}
