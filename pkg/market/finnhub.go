package market

import (
	"context"
	"fmt"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnhubProvider is the primary quote source. Finnhub does not report a
// currency, so snapshots fall back to suffix inference.
type FinnhubProvider struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubProvider(apiKey string) *FinnhubProvider {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubProvider{client: client}
}

func (p *FinnhubProvider) Quote(ctx context.Context, symbol string) (*Quote, error) {
	res, _, err := p.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub quote: %w", err)
	}

	// Finnhub answers unknown symbols with all-zero fields instead of an
	// error status.
	if res.C == nil || *res.C == 0 {
		return nil, fmt.Errorf("finnhub quote: no data for %s", symbol)
	}

	q := &Quote{Price: float64(*res.C)}
	if res.Pc != nil {
		q.PreviousClose = float64(*res.Pc)
	}
	return q, nil
}
