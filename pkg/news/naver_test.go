package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newNaverTestClient(srv *httptest.Server) *NaverClient {
	return &NaverClient{
		creds:      NaverCredentials{ClientID: "id", ClientSecret: "secret"},
		httpClient: srv.Client(),
		baseURL:    srv.URL,
	}
}

func TestNaverFetch(t *testing.T) {
	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"title":        "삼성전자 <b>반도체</b> &quot;훈풍&quot;",
				"link":         "https://news.naver.com/article/1",
				"originallink": "https://example.com/article/1",
				"pubDate":      "Mon, 24 Aug 2026 09:00:00 +0900",
			},
			{
				"title":        "현대차 실적 발표",
				"link":         "https://news.naver.com/article/2",
				"originallink": "",
				"pubDate":      "Mon, 24 Aug 2026 08:30:00 +0900",
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "삼성전자", r.URL.Query().Get("query"))
		assert.Equal(t, "5", r.URL.Query().Get("display"))
		assert.Equal(t, "sim", r.URL.Query().Get("sort"))
		assert.Equal(t, "id", r.Header.Get("X-Naver-Client-Id"))
		assert.Equal(t, "secret", r.Header.Get("X-Naver-Client-Secret"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := newNaverTestClient(srv)

	items, err := client.Fetch("삼성전자", 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(items))

	first := items[0]
	assert.Equal(t, "Naver", first.Source)
	assert.Equal(t, `삼성전자 반도체 "훈풍"`, first.Title)
	assert.Equal(t, "https://example.com/article/1", first.Link)
	assert.Equal(t, "Mon, 24 Aug 2026 09:00:00 +0900", first.PubDate)
	assert.Equal(t, false, first.IsTranslated)

	// Falls back to the portal link when originallink is empty.
	assert.Equal(t, "https://news.naver.com/article/2", items[1].Link)
}

func TestNaverFetchMissingCredentials(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := &NaverClient{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
	}

	items, err := client.Fetch("삼성전자", 5)

	assert.Equal(t, ErrMissingCredentials, err)
	assert.Equal(t, 0, len(items))
	assert.Equal(t, false, called)
}

func TestNaverFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newNaverTestClient(srv)

	items, err := client.Fetch("삼성전자", 5)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(items))
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips bold tags",
			input: "<b>삼성전자</b> 상승",
			want:  "삼성전자 상승",
		},
		{
			name:  "unescapes quot",
			input: "&quot;어닝 서프라이즈&quot;",
			want:  `"어닝 서프라이즈"`,
		},
		{
			name:  "unescapes amp",
			input: "S&amp;P 500 진입",
			want:  "S&P 500 진입",
		},
		{
			name:  "plain title unchanged",
			input: "현대차 실적 발표",
			want:  "현대차 실적 발표",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanTitle(tt.input))
		})
	}
}
