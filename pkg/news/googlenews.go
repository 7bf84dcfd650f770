package news

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

const googleNewsRSSURL = "https://news.google.com/rss/search"

// GoogleNewsClient reads the Google News RSS search feed for "{ticker} stock".
// Entries are taken in feed order; no re-sorting.
type GoogleNewsClient struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	baseURL    string
}

func NewGoogleNewsClient() *GoogleNewsClient {
	return &GoogleNewsClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		parser:     gofeed.NewParser(),
		baseURL:    googleNewsRSSURL,
	}
}

func (c *GoogleNewsClient) Name() string {
	return "Global (Google)"
}

func (c *GoogleNewsClient) Fetch(ticker string, limit int) ([]Item, error) {
	q := url.QueryEscape(ticker + " stock")
	u := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", c.baseURL, q)

	resp, err := c.httpClient.Get(u)
	if err != nil {
		return nil, fmt.Errorf("google news fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google news status %d", resp.StatusCode)
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("google news parse: %w", err)
	}

	items := make([]Item, 0, limit)
	for _, it := range feed.Items {
		if len(items) >= limit {
			break
		}

		items = append(items, Item{
			Source:  c.Name(),
			Title:   it.Title,
			Link:    it.Link,
			PubDate: it.Published,
		})
	}

	return items, nil
}
