package market

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// PriceSnapshot is a point-in-time quote in wire shape.
type PriceSnapshot struct {
	Code          string  `json:"code"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	Currency      string  `json:"currency"`
}

// Quote is raw provider output before normalization.
type Quote struct {
	Price         float64
	PreviousClose float64
	Currency      string
}

type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (*Quote, error)
}

// HistoryPoint is one daily close for charting.
type HistoryPoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type HistoryProvider interface {
	History(ctx context.Context, symbol, period string) ([]HistoryPoint, error)
}

// Service resolves quotes by walking its providers in order and taking the
// first answer.
type Service struct {
	providers []QuoteProvider
}

func NewService(providers ...QuoteProvider) *Service {
	return &Service{providers: providers}
}

func (s *Service) Snapshot(ctx context.Context, ticker string) (*PriceSnapshot, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))

	lastErr := errors.New("no quote providers configured")
	for _, p := range s.providers {
		q, err := p.Quote(ctx, symbol)
		if err != nil {
			lastErr = err
			continue
		}
		return newSnapshot(symbol, q), nil
	}

	return nil, fmt.Errorf("quote %s: %w", symbol, lastErr)
}

func newSnapshot(symbol string, q *Quote) *PriceSnapshot {
	change := 0.0
	if q.PreviousClose > 0 {
		change = (q.Price - q.PreviousClose) / q.PreviousClose * 100
	}

	currency := q.Currency
	if currency == "" {
		currency = inferCurrency(symbol)
	}

	return &PriceSnapshot{
		Code:          symbol,
		Price:         round2(q.Price),
		ChangePercent: round2(change),
		Currency:      currency,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// inferCurrency guesses the trading currency from the symbol suffix when the
// provider does not report one.
func inferCurrency(symbol string) string {
	switch {
	case strings.HasSuffix(symbol, ".KS"), strings.HasSuffix(symbol, ".KQ"), symbol == "KRW=X":
		return "KRW"
	case strings.HasSuffix(symbol, ".T"):
		return "JPY"
	}
	return "USD"
}
