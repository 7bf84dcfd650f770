package translate

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const googleTranslateURL = "https://translate.googleapis.com/translate_a/single"

// GoogleClient translates text via the public Google translate endpoint with
// source language detection. Translation is strictly best effort: any failure
// hands the original text back untouched.
type GoogleClient struct {
	target     string
	httpClient *http.Client
	baseURL    string
}

func NewGoogleClient(target string) *GoogleClient {
	if target == "" {
		target = "ko"
	}
	return &GoogleClient{
		target:     target,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    googleTranslateURL,
	}
}

func (c *GoogleClient) Translate(text string) string {
	if text == "" {
		return ""
	}

	translated, err := c.translate(text)
	if err != nil {
		slog.Warn("translation failed, keeping original text", "error", err)
		return text
	}
	return translated
}

func (c *GoogleClient) translate(text string) (string, error) {
	u := fmt.Sprintf("%s?client=gtx&sl=auto&tl=%s&dt=t&q=%s",
		c.baseURL, url.QueryEscape(c.target), url.QueryEscape(text))

	resp, err := c.httpClient.Get(u)
	if err != nil {
		return "", fmt.Errorf("translate fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate status %d", resp.StatusCode)
	}

	// Payload shape: [[["translated","original",...], ...], ...]
	var payload []interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("translate decode: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translate payload")
	}

	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected translate payload shape")
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no translated text in payload")
	}
	return sb.String(), nil
}
