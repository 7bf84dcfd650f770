package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// YahooProvider serves both roles of the Yahoo chart endpoint: fallback
// quotes (last two daily closes plus the reported currency) and chart
// history.
type YahooProvider struct {
	httpClient *http.Client
	baseURL    string
}

func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    yahooChartURL,
	}
}

func (p *YahooProvider) Quote(ctx context.Context, symbol string) (*Quote, error) {
	result, err := p.fetchChart(ctx, symbol, "5d")
	if err != nil {
		return nil, err
	}

	closes := result.closes()
	if len(closes) == 0 {
		return nil, fmt.Errorf("yahoo chart: no close data for %s", symbol)
	}

	q := &Quote{
		Price:    closes[len(closes)-1].Price,
		Currency: result.Meta.Currency,
	}
	if len(closes) > 1 {
		q.PreviousClose = closes[len(closes)-2].Price
	} else {
		q.PreviousClose = q.Price
	}
	return q, nil
}

func (p *YahooProvider) History(ctx context.Context, symbol, period string) ([]HistoryPoint, error) {
	result, err := p.fetchChart(ctx, symbol, period)
	if err != nil {
		return nil, err
	}

	points := result.closes()
	if len(points) == 0 {
		return nil, fmt.Errorf("yahoo chart: no history for %s", symbol)
	}
	return points, nil
}

func (p *YahooProvider) fetchChart(ctx context.Context, symbol, period string) (*yahooChartResult, error) {
	u := fmt.Sprintf("%s/%s?range=%s&interval=1d", p.baseURL, url.PathEscape(symbol), url.QueryEscape(period))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo chart request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; finbrief/1.0)")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo chart fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo chart status %d", resp.StatusCode)
	}

	var raw yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("yahoo chart decode: %w", err)
	}

	if raw.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart: %s", raw.Chart.Error.Description)
	}
	if len(raw.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo chart: empty result for %s", symbol)
	}

	return &raw.Chart.Result[0], nil
}

type yahooChartResponse struct {
	Chart struct {
		Result []yahooChartResult `json:"result"`
		Error  *yahooChartError   `json:"error"`
	} `json:"chart"`
}

type yahooChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type yahooChartResult struct {
	Meta struct {
		Currency string `json:"currency"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

// closes pairs timestamps with closes, dropping the null entries Yahoo emits
// for half-days and pending sessions.
func (r *yahooChartResult) closes() []HistoryPoint {
	if len(r.Indicators.Quote) == 0 {
		return nil
	}

	closes := r.Indicators.Quote[0].Close
	points := make([]HistoryPoint, 0, len(closes))
	for i, c := range closes {
		if c == nil || i >= len(r.Timestamp) {
			continue
		}
		points = append(points, HistoryPoint{
			Date:  time.Unix(r.Timestamp[i], 0).UTC().Format("2006-01-02"),
			Price: *c,
		})
	}
	return points
}
