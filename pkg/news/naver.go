package news

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const naverSearchURL = "https://openapi.naver.com/v1/search/news.json"

// ErrMissingCredentials is returned before any network call when the Naver
// API keys are not configured. The aggregator treats it like any other
// source failure: logged, zero items.
var ErrMissingCredentials = errors.New("naver credentials not configured")

type NaverCredentials struct {
	ClientID     string
	ClientSecret string
}

// NaverClient queries the Naver news search API, ordered by relevance.
type NaverClient struct {
	creds      NaverCredentials
	httpClient *http.Client
	baseURL    string
}

func NewNaverClient(creds NaverCredentials) *NaverClient {
	return &NaverClient{
		creds:      creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    naverSearchURL,
	}
}

func (c *NaverClient) Name() string {
	return "Naver"
}

func (c *NaverClient) Fetch(keyword string, limit int) ([]Item, error) {
	if c.creds.ClientID == "" || c.creds.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	u := fmt.Sprintf("%s?query=%s&display=%d&sort=sim", c.baseURL, url.QueryEscape(keyword), limit)

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("naver request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.creds.ClientID)
	req.Header.Set("X-Naver-Client-Secret", c.creds.ClientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("naver fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver status %d", resp.StatusCode)
	}

	var raw naverResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("naver decode: %w", err)
	}

	items := make([]Item, 0, len(raw.Items))
	for _, it := range raw.Items {
		link := it.OriginalLink
		if link == "" {
			link = it.Link
		}

		items = append(items, Item{
			Source:  c.Name(),
			Title:   cleanTitle(it.Title),
			Link:    link,
			PubDate: it.PubDate,
		})
	}

	return items, nil
}

var markupTag = regexp.MustCompile(`<[^<]+?>`)

// cleanTitle strips the markup Naver embeds in search results: keyword
// highlighting tags plus a small fixed set of escaped entities.
func cleanTitle(s string) string {
	s = markupTag.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

type naverResponse struct {
	Items []naverItem `json:"items"`
}

type naverItem struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	OriginalLink string `json:"originallink"`
	PubDate      string `json:"pubDate"`
}
