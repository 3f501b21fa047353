package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PublishedAtLayout is the timestamp format the news API uses for publishedAt.
// Values are not guaranteed to parse, display code falls back to the raw string.
const PublishedAtLayout = time.RFC3339

// Source identifies the publication an article came from
type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Article represents a single news article. The ID is generated locally at
// construction time and is never used for identity, the URL is the natural key.
type Article struct {
	ID          uuid.UUID `json:"-"`
	Source      Source    `json:"source"`
	Author      string    `json:"author,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"urlToImage,omitempty"`
	PublishedAt string    `json:"publishedAt"`
	Content     string    `json:"content,omitempty"`
}

// Response is the news API result envelope
type Response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// UnmarshalJSON decodes an article and assigns a fresh local ID
func (a *Article) UnmarshalJSON(data []byte) error {
	type alias Article
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = Article(aux)
	a.ID = uuid.New()
	return nil
}

// Same reports whether two articles are the same article, by URL only
func (a Article) Same(other Article) bool {
	return a.URL == other.URL
}

// DisplayTitle returns the title or a placeholder when empty
func (a Article) DisplayTitle() string {
	if a.Title == "" {
		return "No Title"
	}
	return a.Title
}

// DisplayDescription returns the description or a placeholder when absent
func (a Article) DisplayDescription() string {
	if a.Description == "" {
		return "No description available"
	}
	return a.Description
}

// DisplayAuthor returns the author, falling back to the source name and then
// to a literal "Unknown"
func (a Article) DisplayAuthor() string {
	if a.Author != "" {
		return a.Author
	}
	if a.Source.Name != "" {
		return a.Source.Name
	}
	return "Unknown"
}

// FormattedDate renders publishedAt in a human readable form. Unparseable
// values are returned as-is.
func (a Article) FormattedDate() string {
	t, err := time.Parse(PublishedAtLayout, a.PublishedAt)
	if err != nil {
		return a.PublishedAt
	}
	return t.Format("Jan 2, 2006 at 3:04 PM")
}
