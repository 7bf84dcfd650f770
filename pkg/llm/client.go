package llm

import "context"

// Generator produces free-form text from a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// MarketData is the quote context fed into the briefing prompt.
type MarketData struct {
	Price         float64
	ChangePercent float64
}

// Headline is one aggregated news line for the prompt.
type Headline struct {
	Title  string
	Source string
}

// Briefing is the generated (or fallback) analysis for one ticker.
type Briefing struct {
	Ticker string `json:"ticker"`
	Text   string `json:"briefing"`
}
