package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchArticlesTopHeadlines(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines", r.URL.Path)
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Empty(t, r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"totalResults": 2,
			"articles": [
				{"title": "First", "url": "https://example.com/1", "publishedAt": "2025-08-17T10:00:00Z"},
				{"title": "Second", "url": "https://example.com/2", "publishedAt": "2025-08-17T11:00:00Z"}
			]
		}`))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL, APIKey: "test-key"}, StaticConnectivity(true))

	articles, err := client.FetchArticles(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "First", articles[0].Title)
	assert.Equal(t, "https://example.com/2", articles[1].URL)
}

func TestClient_FetchArticlesSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/everything", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		assert.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
		assert.Empty(t, r.URL.Query().Get("country"))

		w.Write([]byte(`{"status": "ok", "totalResults": 0, "articles": []}`))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL, APIKey: "test-key"}, StaticConnectivity(true))

	articles, err := client.FetchArticles(context.Background(), "golang")
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestClient_FetchArticlesOffline(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, StaticConnectivity(false))

	_, err := client.FetchArticles(context.Background(), "")
	require.Error(t, err)
	assert.EqualError(t, err, "No internet connection available")
	assert.False(t, called, "offline fetch must not hit the network")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrNoInternet, apiErr.Kind)
}

func TestClient_FetchArticlesServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, StaticConnectivity(true))

	_, err := client.FetchArticles(context.Background(), "")
	require.Error(t, err)
	assert.EqualError(t, err, "Server error with code: 500")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrServer, apiErr.Kind)
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestClient_FetchArticlesNoData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with empty body
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, StaticConnectivity(true))

	_, err := client.FetchArticles(context.Background(), "")
	assert.EqualError(t, err, "No data received")
}

func TestClient_FetchArticlesDecodingError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": broken`))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, StaticConnectivity(true))

	_, err := client.FetchArticles(context.Background(), "")
	assert.EqualError(t, err, "Failed to decode response")
}

func TestClient_FetchArticlesUnreachableServer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // shut down before the request

	client := NewClient(Config{BaseURL: ts.URL}, StaticConnectivity(true))

	_, err := client.FetchArticles(context.Background(), "")
	assert.EqualError(t, err, "An unknown error occurred")
}

func TestError_Is(t *testing.T) {
	err := &Error{Kind: ErrServer, StatusCode: 503}
	assert.ErrorIs(t, err, &Error{Kind: ErrServer}, "kind matches regardless of status code")
	assert.NotErrorIs(t, err, &Error{Kind: ErrNoData})
}
