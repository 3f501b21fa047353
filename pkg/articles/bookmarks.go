package articles

import (
	"context"
	"sync"

	"github.com/readerapp/reader/pkg/domain"
)

// Bookmarks maintains the bookmarked article list with the same live filter
// the main article set uses. It operates on bookmark records only, cache
// refreshes never touch it.
type Bookmarks struct {
	store Store

	mu         sync.RWMutex
	articles   []domain.Article
	filtered   []domain.Article
	searchText string
}

// NewBookmarks creates the bookmark view and loads the current bookmarks
func NewBookmarks(ctx context.Context, store Store) *Bookmarks {
	b := &Bookmarks{store: store,
		articles: []domain.Article{}, filtered: []domain.Article{}}
	b.Load(ctx)
	return b
}

// Load reloads bookmarks from the store and recomputes the filtered view
func (b *Bookmarks) Load(ctx context.Context) {
	bookmarked := b.store.FetchBookmarkedArticles(ctx)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.articles = bookmarked
	b.refilter()
}

// Remove deletes the bookmark for the article and reloads the list
func (b *Bookmarks) Remove(ctx context.Context, article domain.Article) {
	b.store.RemoveBookmark(ctx, article)
	b.Load(ctx)
}

// SetSearchText updates the live filter text and recomputes the filtered view
func (b *Bookmarks) SetSearchText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.searchText = text
	b.refilter()
}

// Articles returns a copy of the unfiltered bookmark list
func (b *Bookmarks) Articles() []domain.Article {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]domain.Article(nil), b.articles...)
}

// Filtered returns a copy of the filtered bookmark view
func (b *Bookmarks) Filtered() []domain.Article {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]domain.Article(nil), b.filtered...)
}

// refilter recomputes the filtered view, caller must hold the lock
func (b *Bookmarks) refilter() {
	b.filtered = Filter(b.articles, b.searchText)
}
