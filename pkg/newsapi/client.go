package newsapi

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/readerapp/reader/pkg/domain"
)

// Connectivity reports whether the network is reachable
type Connectivity interface {
	Online() bool
}

// Client fetches articles from a NewsAPI-compatible endpoint. A fetch with an
// empty query hits top-headlines for the configured country, a non-empty
// query hits the everything endpoint sorted by publish date.
type Client struct {
	baseURL  string
	apiKey   string
	country  string
	pageSize int
	http     *http.Client
	conn     Connectivity
}

// Config holds client configuration
type Config struct {
	BaseURL  string
	APIKey   string
	Country  string
	PageSize int
	Timeout  time.Duration
}

// NewClient creates a news API client using the given connectivity monitor
func NewClient(cfg Config, conn Connectivity) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://newsapi.org/v2"
	}
	if cfg.Country == "" {
		cfg.Country = "us"
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 20
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		country:  cfg.Country,
		pageSize: cfg.PageSize,
		http:     &http.Client{Timeout: cfg.Timeout},
		conn:     conn,
	}
}

// IsConnected reports the connectivity monitor state
func (c *Client) IsConnected() bool {
	return c.conn.Online()
}

// FetchArticles retrieves articles, top headlines when query is empty.
// Failures are returned as *Error with a fixed user-visible message.
func (c *Client) FetchArticles(ctx context.Context, query string) ([]domain.Article, error) {
	if !c.IsConnected() {
		return nil, &Error{Kind: ErrNoInternet}
	}

	reqURL, err := c.buildURL(query)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidURL}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidURL}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[WARN] news api request failed: %v", err)
		return nil, &Error{Kind: ErrUnknown}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: ErrServer, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrUnknown}
	}
	if len(body) == 0 {
		return nil, &Error{Kind: ErrNoData}
	}

	var news domain.Response
	if err := json.Unmarshal(body, &news); err != nil {
		log.Printf("[WARN] failed to decode news api response: %v", err)
		return nil, &Error{Kind: ErrDecoding}
	}

	return news.Articles, nil
}

func (c *Client) buildURL(query string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", strconv.Itoa(c.pageSize))

	if query != "" {
		base = base.JoinPath("everything")
		params.Set("q", query)
		params.Set("sortBy", "publishedAt")
	} else {
		base = base.JoinPath("top-headlines")
		params.Set("country", c.country)
	}

	base.RawQuery = params.Encode()
	return base.String(), nil
}
