package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const yahooSearchURL = "https://query1.finance.yahoo.com/v1/finance/search"

// YahooNewsClient fetches ticker-scoped news from Yahoo Finance. Titles are
// translated for display; the original title is kept alongside.
type YahooNewsClient struct {
	translator Translator
	httpClient *http.Client
	baseURL    string
}

func NewYahooNewsClient(translator Translator) *YahooNewsClient {
	return &YahooNewsClient{
		translator: translator,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    yahooSearchURL,
	}
}

func (c *YahooNewsClient) Name() string {
	return "Yahoo(US)"
}

func (c *YahooNewsClient) Fetch(ticker string, limit int) ([]Item, error) {
	u := fmt.Sprintf("%s?q=%s&newsCount=%d&quotesCount=0", c.baseURL, url.QueryEscape(ticker), limit)

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo news request: %w", err)
	}
	// Yahoo rejects the default Go user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; finbrief/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo news fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo news status %d", resp.StatusCode)
	}

	var raw yahooNewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("yahoo news decode: %w", err)
	}

	items := make([]Item, 0, limit)
	for _, env := range raw.News {
		if len(items) >= limit {
			break
		}

		rec, ok := env.record()
		if !ok {
			// Entry without a usable title; skip it, keep the batch.
			continue
		}

		items = append(items, Item{
			Source:        c.Name(),
			Title:         "[번역] " + c.translator.Translate(rec.Title),
			OriginalTitle: rec.Title,
			Link:          rec.url(),
			PubDate:       rec.PubDate,
			IsTranslated:  true,
		})
	}

	return items, nil
}

type yahooNewsResponse struct {
	News []yahooEnvelope `json:"news"`
}

// yahooEnvelope covers both payload generations: newer entries wrap the
// record under "content", older ones carry the fields at the top level.
type yahooEnvelope struct {
	Content *yahooRecord `json:"content"`
	yahooRecord
}

func (e yahooEnvelope) record() (yahooRecord, bool) {
	rec := e.yahooRecord
	if e.Content != nil {
		rec = *e.Content
	}
	if rec.Title == "" {
		return yahooRecord{}, false
	}
	return rec, true
}

type yahooRecord struct {
	Title           string             `json:"title"`
	Link            string             `json:"link"`
	PubDate         string             `json:"pubDate"`
	ClickThroughURL *yahooClickThrough `json:"clickThroughUrl"`
}

// url prefers the nested click-through URL, falls back to the flat link, and
// yields "" when neither is present.
func (r yahooRecord) url() string {
	if r.ClickThroughURL != nil && r.ClickThroughURL.URL != "" {
		return r.ClickThroughURL.URL
	}
	return r.Link
}

type yahooClickThrough struct {
	URL string `json:"url"`
}
