package domain

// GoogleSearchResponse mirrors the Custom Search API response shape
// (https://www.googleapis.com/customsearch/v1). Only the fields the
// resolver needs are mapped.
type GoogleSearchResponse struct {
	Items []GoogleSearchItem `json:"items"`
}

// GoogleSearchItem is a single organic result from the Custom Search API
type GoogleSearchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	DisplayLink string `json:"displayLink"`
	Snippet     string `json:"snippet"`
	PageMap     *struct {
		Metatags []map[string]string `json:"metatags"`
	} `json:"pagemap,omitempty"`
}
