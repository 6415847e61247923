package domain

// Hit represents a single search result row
type Hit struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	NumComments int    `json:"num_comments"`
	Points      int    `json:"points"`
	CreatedAt   string `json:"created_at"`
	StoryText   string `json:"story_text"`
}

// ItemURL returns the Hacker News discussion page for the hit
func (h Hit) ItemURL() string {
	return "https://news.ycombinator.com/item?id=" + h.ObjectID
}

// Link returns the story URL, falling back to the discussion page
// for Ask/Show posts that have no external link
func (h Hit) Link() string {
	if h.URL != "" {
		return h.URL
	}
	return h.ItemURL()
}

// ResultPage holds the hits accumulated for a search term and the
// page number of the most recently merged fetch
type ResultPage struct {
	Hits    []Hit `json:"hits"`
	Page    int   `json:"page"`
	NbPages int   `json:"nbPages"`
	NbHits  int   `json:"nbHits"`
}

// HasMore reports whether the API advertised pages beyond the current one.
// When the page count is unknown it assumes there are.
func (p ResultPage) HasMore() bool {
	if p.NbPages == 0 {
		return true
	}
	return p.Page+1 < p.NbPages
}
