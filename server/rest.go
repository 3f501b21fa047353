package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/readerapp/reader/pkg/domain"
)

// articlesResponse is the payload for article list endpoints
type articlesResponse struct {
	Articles []domain.Article `json:"articles"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.cfg.Version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// articlesHandler returns the current filtered article set. An optional
// filter parameter updates the live search text first.
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("filter") {
		s.articles.SetSearchText(r.URL.Query().Get("filter"))
	}
	renderJSON(w, r, http.StatusOK, s.currentArticles())
}

// refreshHandler triggers a fresh top-headlines fetch and returns the result
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	s.articles.Refresh(r.Context())
	renderJSON(w, r, http.StatusOK, s.currentArticles())
}

// searchHandler runs a search, online through the network, offline against
// the cache
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		renderError(w, r, fmt.Errorf("missing query parameter q"), http.StatusBadRequest)
		return
	}

	s.articles.Search(r.Context(), query)
	renderJSON(w, r, http.StatusOK, s.currentArticles())
}

// bookmarksHandler returns the filtered bookmark list, reloaded from the
// store on every request. An optional filter parameter updates the live
// search text first.
func (s *Server) bookmarksHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("filter") {
		s.bookmarks.SetSearchText(r.URL.Query().Get("filter"))
	}
	s.bookmarks.Load(r.Context())
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"articles": s.bookmarks.Filtered()})
}

// toggleBookmarkHandler flips the bookmark state of the posted article
func (s *Server) toggleBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	article, ok := decodeArticle(w, r)
	if !ok {
		return
	}

	s.articles.ToggleBookmark(r.Context(), article)
	bookmarked := s.articles.IsBookmarked(r.Context(), article)
	renderJSON(w, r, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

// removeBookmarkHandler deletes the bookmark for the posted article
func (s *Server) removeBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	article, ok := decodeArticle(w, r)
	if !ok {
		return
	}

	s.bookmarks.Remove(r.Context(), article)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"articles": s.bookmarks.Filtered()})
}

// getSettingHandler returns a single setting value
func (s *Server) getSettingHandler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	value, err := s.settings.GetSetting(r.Context(), key)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"key": key, "value": value})
}

// putSettingHandler stores a single setting value
func (s *Server) putSettingHandler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.settings.SetSetting(r.Context(), key, body.Value); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"key": key, "value": body.Value})
}

func (s *Server) currentArticles() articlesResponse {
	resp := articlesResponse{
		Articles: s.articles.Filtered(),
		Loading:  s.articles.Loading(),
	}
	if err := s.articles.LastError(); err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func decodeArticle(w http.ResponseWriter, r *http.Request) (domain.Article, bool) {
	var article domain.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		renderError(w, r, fmt.Errorf("invalid article payload"), http.StatusBadRequest)
		return domain.Article{}, false
	}
	if article.URL == "" {
		renderError(w, r, fmt.Errorf("article url is required"), http.StatusBadRequest)
		return domain.Article{}, false
	}
	return article, true
}
