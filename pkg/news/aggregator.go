package news

import (
	"log/slog"
	"strings"
)

// Per-source limits are fixed routing policy, not tunable per call.
const (
	domesticOnlyLimit  = 5
	domesticMixedLimit = 3
	globalLimit        = 5
)

// Aggregator merges domestic and global news for one ticker. It never fails:
// a source that errors contributes zero items.
type Aggregator struct {
	domestic DomesticSource
	global   GlobalSource
}

func NewAggregator(domestic DomesticSource, global GlobalSource) *Aggregator {
	return &Aggregator{domestic: domestic, global: global}
}

// IsDomestic reports whether the ticker trades on a Korean exchange.
func IsDomestic(ticker string) bool {
	return strings.HasSuffix(ticker, ".KS") || strings.HasSuffix(ticker, ".KQ")
}

// Aggregate collects news for the ticker. Korean tickers get domestic
// coverage only; everything else gets domestic plus global, domestic items
// first. The keyword for the domestic search is the company name when given,
// else the ticker itself.
func (a *Aggregator) Aggregate(ticker, companyName string) []Item {
	keyword := companyName
	if keyword == "" {
		keyword = ticker
	}

	if IsDomestic(ticker) {
		return a.fetchDomestic(keyword, domesticOnlyLimit)
	}

	items := a.fetchDomestic(keyword, domesticMixedLimit)
	return append(items, a.fetchGlobal(ticker, globalLimit)...)
}

func (a *Aggregator) fetchDomestic(keyword string, limit int) []Item {
	items, err := a.domestic.Fetch(keyword, limit)
	if err != nil {
		slog.Warn("domestic news source unavailable", "keyword", keyword, "error", err)
		return nil
	}
	return items
}

func (a *Aggregator) fetchGlobal(ticker string, limit int) []Item {
	items, err := a.global.Fetch(ticker, limit)
	if err != nil {
		slog.Warn("global news source unavailable", "ticker", ticker, "error", err)
		return nil
	}
	return items
}
