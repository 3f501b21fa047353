package articles

import (
	"strings"

	"github.com/readerapp/reader/pkg/domain"
)

// Filter returns the articles matching the search text, preserving order.
// Empty text yields a copy of the whole input. Matching is a case-insensitive
// substring check against the title, the display description and the display
// author. No ranking is applied.
func Filter(articles []domain.Article, searchText string) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	if searchText == "" {
		return append(out, articles...)
	}

	needle := strings.ToLower(searchText)
	for _, a := range articles {
		if containsFold(a.Title, needle) ||
			containsFold(a.DisplayDescription(), needle) ||
			containsFold(a.DisplayAuthor(), needle) {
			out = append(out, a)
		}
	}
	return out
}

// containsFold checks a case-insensitive substring match, needle must
// already be lowercased
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
