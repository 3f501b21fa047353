package articles_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readerapp/reader/pkg/articles"
	"github.com/readerapp/reader/pkg/articles/mocks"
	"github.com/readerapp/reader/pkg/domain"
	"github.com/readerapp/reader/pkg/newsapi"
)

// memStore is a minimal in-memory articles.Store used where a real
// persistence double is simpler than a moq mock
type memStore struct {
	mu        sync.Mutex
	cached    []domain.Article
	bookmarks []domain.Article
}

func (m *memStore) SaveCachedArticles(_ context.Context, articles []domain.Article) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cached = append([]domain.Article(nil), articles...)
}

func (m *memStore) FetchCachedArticles(_ context.Context) []domain.Article {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Article(nil), m.cached...)
}

func (m *memStore) SearchCachedArticles(_ context.Context, query string) []domain.Article {
	return articles.Filter(m.FetchCachedArticles(context.Background()), query)
}

func (m *memStore) SaveBookmark(_ context.Context, article domain.Article) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookmarks {
		if b.URL == article.URL {
			return
		}
	}
	m.bookmarks = append(m.bookmarks, article)
}

func (m *memStore) RemoveBookmark(_ context.Context, article domain.Article) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.bookmarks[:0]
	for _, b := range m.bookmarks {
		if b.URL != article.URL {
			kept = append(kept, b)
		}
	}
	m.bookmarks = kept
}

func (m *memStore) FetchBookmarkedArticles(_ context.Context) []domain.Article {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Article(nil), m.bookmarks...)
}

func (m *memStore) IsArticleBookmarked(_ context.Context, article domain.Article) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookmarks {
		if b.URL == article.URL {
			return true
		}
	}
	return false
}

func onlineFetcher(result []domain.Article) *mocks.FetcherMock {
	return &mocks.FetcherMock{
		FetchArticlesFunc: func(ctx context.Context, query string) ([]domain.Article, error) {
			return result, nil
		},
		IsConnectedFunc: func() bool { return true },
	}
}

func waitForInitialFetch(t *testing.T, fetcher *mocks.FetcherMock) {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(fetcher.FetchArticlesCalls()) >= 1
	}, time.Second, 5*time.Millisecond, "constructor kicks off an initial fetch")
}

func TestService_FetchSuccessWritesThrough(t *testing.T) {
	fetched := []domain.Article{
		{Title: "Fresh One", URL: "https://example.com/1"},
		{Title: "Fresh Two", URL: "https://example.com/2"},
	}
	fetcher := onlineFetcher(fetched)
	store := &memStore{}

	svc := articles.NewService(context.Background(), fetcher, store)
	waitForInitialFetch(t, fetcher)

	require.Eventually(t, func() bool { return len(svc.Articles()) == 2 }, time.Second, 5*time.Millisecond)
	assert.False(t, svc.Loading())
	assert.NoError(t, svc.LastError())
	assert.Equal(t, fetched, store.FetchCachedArticles(context.Background()),
		"successful fetch replaces the cache")
	assert.Equal(t, svc.Articles(), svc.Filtered(), "empty search text passes everything through")
}

func TestService_ConstructionLoadsCacheFirst(t *testing.T) {
	store := &memStore{cached: []domain.Article{
		{Title: "Stale but visible", URL: "https://example.com/cached"},
	}}

	// block the initial fetch so the cache snapshot is observable
	release := make(chan struct{})
	fetcher := &mocks.FetcherMock{
		FetchArticlesFunc: func(ctx context.Context, query string) ([]domain.Article, error) {
			<-release
			return []domain.Article{{Title: "Network", URL: "https://example.com/net"}}, nil
		},
		IsConnectedFunc: func() bool { return true },
	}

	svc := articles.NewService(context.Background(), fetcher, store)

	cached := svc.Articles()
	require.Len(t, cached, 1, "cache snapshot available before the network answers")
	assert.Equal(t, "https://example.com/cached", cached[0].URL)

	close(release)
	require.Eventually(t, func() bool {
		got := svc.Articles()
		return len(got) == 1 && got[0].URL == "https://example.com/net"
	}, time.Second, 5*time.Millisecond, "network result supersedes the cache snapshot")
}

func TestService_OfflineFallback(t *testing.T) {
	store := &memStore{cached: []domain.Article{
		{Title: "Cached Apple", URL: "https://example.com/a"},
		{Title: "Cached Banana", URL: "https://example.com/b"},
	}}
	fetcher := &mocks.FetcherMock{
		FetchArticlesFunc: func(ctx context.Context, query string) ([]domain.Article, error) {
			return nil, &newsapi.Error{Kind: newsapi.ErrNoInternet}
		},
		IsConnectedFunc: func() bool { return false },
	}

	svc := articles.NewService(context.Background(), fetcher, store)
	waitForInitialFetch(t, fetcher)

	require.Eventually(t, func() bool { return svc.LastError() != nil }, time.Second, 5*time.Millisecond)

	assert.EqualError(t, svc.LastError(), "No internet connection available")
	assert.Len(t, svc.Articles(), 2, "cache substitutes for the failed fetch")
	assert.False(t, svc.Loading())
}

func TestService_OfflineFallbackKeepsArticlesWhenCacheEmpty(t *testing.T) {
	store := &memStore{}
	fetcher := &mocks.FetcherMock{
		FetchArticlesFunc: func(ctx context.Context, query string) ([]domain.Article, error) {
			return nil, &newsapi.Error{Kind: newsapi.ErrNoInternet}
		},
		IsConnectedFunc: func() bool { return false },
	}

	svc := articles.NewService(context.Background(), fetcher, store)
	waitForInitialFetch(t, fetcher)

	require.Eventually(t, func() bool { return svc.LastError() != nil }, time.Second, 5*time.Millisecond)
	assert.Empty(t, svc.Articles())
}

func TestService_OnlineFailureKeepsCurrentSet(t *testing.T) {
	store := &memStore{}
	var fail bool
	var mu sync.Mutex
	fetcher := &mocks.FetcherMock{
		FetchArticlesFunc: func(ctx context.Context, query string) ([]domain.Article, error) {
			mu.Lock()
			defer mu.Unlock()
			if fail {
				return nil, &newsapi.Error{Kind: newsapi.ErrServer, StatusCode: 500}
			}
			return []domain.Article{{Title: "Good", URL: "https://example.com/good"}}, nil
		},
		IsConnectedFunc: func() bool { return true },
	}

	svc := articles.NewService(context.Background(), fetcher, store)
	waitForInitialFetch(t, fetcher)
	require.Eventually(t, func() bool { return len(svc.Articles()) == 1 }, time.Second, 5*time.Millisecond)

	mu.Lock()
	fail = true
	mu.Unlock()
	svc.Refresh(context.Background())

	assert.EqualError(t, svc.LastError(), "Server error with code: 500")
	assert.Len(t, svc.Articles(), 1, "online failure does not wipe the current set, no fallback while connected")
}

func TestService_SearchOnlineDelegatesToFetch(t *testing.T) {
	store := &memStore{}
	fetcher := onlineFetcher([]domain.Article{{Title: "Result", URL: "https://example.com/r"}})

	svc := articles.NewService(context.Background(), fetcher, store)
	waitForInitialFetch(t, fetcher)

	svc.Search(context.Background(), "golang")

	calls := fetcher.FetchArticlesCalls()
	require.NotEmpty(t, calls)
	assert.Equal(t, "golang", calls[len(calls)-1].Query, "online search goes through the network")
	assert.NotEmpty(t, store.FetchCachedArticles(context.Background()),
		"online search results are written through to cache")
}

func TestService_SearchOfflineUsesCache(t *testing.T) {
	store := &memStore{cached: []domain.Article{
		{Title: "Apple iPhone News", URL: "u1"},
		{Title: "Android Update", URL: "u2"},
	}}
	fetcher := &mocks.FetcherMock{
		FetchArticlesFunc: func(ctx context.Context, query string) ([]domain.Article, error) {
			return nil, &newsapi.Error{Kind: newsapi.ErrNoInternet}
		},
		IsConnectedFunc: func() bool { return false },
	}

	svc := articles.NewService(context.Background(), fetcher, store)
	waitForInitialFetch(t, fetcher)
	initialCalls := len(fetcher.FetchArticlesCalls())

	svc.Search(context.Background(), "Apple")

	got := svc.Articles()
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].URL)
	assert.Len(t, fetcher.FetchArticlesCalls(), initialCalls, "offline search bypasses the network entirely")
}

func TestService_ToggleBookmark(t *testing.T) {
	store := &memStore{}
	fetcher := onlineFetcher(nil)

	svc := articles.NewService(context.Background(), fetcher, store)
	waitForInitialFetch(t, fetcher)

	article := domain.Article{Title: "Keep Me", URL: "https://example.com/keep"}

	assert.False(t, svc.IsBookmarked(context.Background(), article))

	svc.ToggleBookmark(context.Background(), article)
	assert.True(t, svc.IsBookmarked(context.Background(), article))

	svc.ToggleBookmark(context.Background(), article)
	assert.False(t, svc.IsBookmarked(context.Background(), article))
}

func TestService_FilterEndToEnd(t *testing.T) {
	store := &memStore{}
	fetcher := onlineFetcher([]domain.Article{
		{Title: "Apple iPhone News", URL: "u1"},
		{Title: "Android Update", URL: "u2"},
	})

	svc := articles.NewService(context.Background(), fetcher, store)
	waitForInitialFetch(t, fetcher)
	require.Eventually(t, func() bool { return len(svc.Articles()) == 2 }, time.Second, 5*time.Millisecond)

	svc.SetSearchText("Apple")
	filtered := svc.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "u1", filtered[0].URL)

	svc.ToggleBookmark(context.Background(), filtered[0])
	assert.True(t, svc.IsBookmarked(context.Background(), filtered[0]))
	bookmarks := store.FetchBookmarkedArticles(context.Background())
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "u1", bookmarks[0].URL)

	svc.SetSearchText("")
	assert.Len(t, svc.Filtered(), 2, "clearing the filter restores the full set")

	svc.SetSearchText("apple")
	assert.Equal(t, "apple", svc.SearchText())
}

func TestService_LoadingFlagDuringFetch(t *testing.T) {
	store := &memStore{}
	started := make(chan struct{})
	release := make(chan struct{})
	first := true
	var mu sync.Mutex
	fetcher := &mocks.FetcherMock{
		FetchArticlesFunc: func(ctx context.Context, query string) ([]domain.Article, error) {
			mu.Lock()
			isFirst := first
			first = false
			mu.Unlock()
			if !isFirst {
				close(started)
				<-release
			}
			return nil, nil
		},
		IsConnectedFunc: func() bool { return true },
	}

	svc := articles.NewService(context.Background(), fetcher, store)
	waitForInitialFetch(t, fetcher)

	go svc.Refresh(context.Background())
	<-started
	assert.True(t, svc.Loading())
	assert.NoError(t, svc.LastError(), "starting a fetch clears the previous error")

	close(release)
	require.Eventually(t, func() bool { return !svc.Loading() }, time.Second, 5*time.Millisecond)
}
