package news

// Item is one normalized news record. Items are immutable once constructed;
// the aggregator only concatenates them.
type Item struct {
	Source        string `json:"source"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title,omitempty"`
	Link          string `json:"link"`
	PubDate       string `json:"pubDate"`
	IsTranslated  bool   `json:"is_translated"`
}

// DomesticSource searches domestic-language news by keyword.
type DomesticSource interface {
	Fetch(keyword string, limit int) ([]Item, error)
}

// GlobalSource fetches ticker-scoped news from a global provider.
type GlobalSource interface {
	Fetch(ticker string, limit int) ([]Item, error)
}

// Translator converts text into the display language, best effort.
type Translator interface {
	Translate(text string) string
}
