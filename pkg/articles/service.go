package articles

import (
	"context"
	"log"
	"sync"

	"github.com/readerapp/reader/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Fetcher retrieves articles from the remote news API
type Fetcher interface {
	FetchArticles(ctx context.Context, query string) ([]domain.Article, error)
	IsConnected() bool
}

// Store persists cached and bookmarked articles
type Store interface {
	SaveCachedArticles(ctx context.Context, articles []domain.Article)
	FetchCachedArticles(ctx context.Context) []domain.Article
	SearchCachedArticles(ctx context.Context, query string) []domain.Article
	SaveBookmark(ctx context.Context, article domain.Article)
	RemoveBookmark(ctx context.Context, article domain.Article)
	FetchBookmarkedArticles(ctx context.Context) []domain.Article
	IsArticleBookmarked(ctx context.Context, article domain.Article) bool
}

// Service is the single source of truth for the current article set. It
// decides between the online and offline data path: a successful fetch
// replaces the cache, a failed fetch while offline falls back to it.
//
// Overlapping fetches are not sequenced, the last one to complete wins even
// when it is stale relative to a later request. The mutex protects state
// consistency, not completion order.
type Service struct {
	fetcher Fetcher
	store   Store

	mu         sync.RWMutex
	articles   []domain.Article
	filtered   []domain.Article
	searchText string
	loading    bool
	lastErr    error
}

// NewService creates the service, loads any existing cache so consumers have
// something to show immediately, and kicks off an initial fetch in the
// background. The network result supersedes the cache snapshot.
func NewService(ctx context.Context, fetcher Fetcher, store Store) *Service {
	s := &Service{fetcher: fetcher, store: store,
		articles: []domain.Article{}, filtered: []domain.Article{}}
	s.loadCached(ctx)
	go s.Fetch(ctx, "")
	return s
}

// Fetch retrieves articles from the network, an empty query means top
// headlines. On success the result replaces the article set and is written
// through to the cache. On failure the classified error is recorded and, when
// offline, the cache is substituted so the consumer is not left empty-handed.
func (s *Service) Fetch(ctx context.Context, query string) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	fetched, err := s.fetcher.FetchArticles(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		log.Printf("[WARN] fetch articles failed: %v", err)
		s.lastErr = err
		if !s.fetcher.IsConnected() {
			if cached := s.store.FetchCachedArticles(ctx); len(cached) > 0 {
				s.articles = cached
			}
			s.refilter()
		}
		return
	}

	s.articles = fetched
	s.store.SaveCachedArticles(ctx, fetched)
	s.refilter()
}

// Refresh re-fetches top headlines
func (s *Service) Refresh(ctx context.Context) {
	s.Fetch(ctx, "")
}

// Search runs a query through the network when online. When offline it
// searches the cache directly and makes the result the current article set,
// with no cache write-through since those records are already cached.
func (s *Service) Search(ctx context.Context, query string) {
	if s.fetcher.IsConnected() {
		s.Fetch(ctx, query)
		return
	}

	results := s.store.SearchCachedArticles(ctx, query)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = results
	s.refilter()
}

// ToggleBookmark flips the bookmark state of the article. Status is always
// queried fresh from the store, nothing is cached locally.
func (s *Service) ToggleBookmark(ctx context.Context, article domain.Article) {
	if s.store.IsArticleBookmarked(ctx, article) {
		s.store.RemoveBookmark(ctx, article)
		return
	}
	s.store.SaveBookmark(ctx, article)
}

// IsBookmarked reports whether the article is bookmarked
func (s *Service) IsBookmarked(ctx context.Context, article domain.Article) bool {
	return s.store.IsArticleBookmarked(ctx, article)
}

// SetSearchText updates the live filter text and recomputes the filtered view
func (s *Service) SetSearchText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchText = text
	s.refilter()
}

// SearchText returns the current filter text
func (s *Service) SearchText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchText
}

// Articles returns a copy of the unfiltered article set
func (s *Service) Articles() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Article(nil), s.articles...)
}

// Filtered returns a copy of the filtered article view
func (s *Service) Filtered() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Article(nil), s.filtered...)
}

// Loading reports whether a fetch is in flight
func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the classified error of the most recent failed fetch,
// nil after a success or while a fetch is in flight
func (s *Service) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// loadCached seeds the article set from the cache, keeping the current set
// when the cache is empty
func (s *Service) loadCached(ctx context.Context) {
	cached := s.store.FetchCachedArticles(ctx)
	if len(cached) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = cached
	s.refilter()
}

// refilter recomputes the filtered view, caller must hold the lock
func (s *Service) refilter() {
	s.filtered = Filter(s.articles, s.searchText)
}
