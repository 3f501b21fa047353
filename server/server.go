package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/readerapp/reader/pkg/domain"
)

//go:generate moq -out mocks/articles.go -pkg mocks -skip-ensure -fmt goimports . ArticlesService
//go:generate moq -out mocks/bookmarks.go -pkg mocks -skip-ensure -fmt goimports . BookmarksService
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings

// ArticlesService is the orchestrator owning the current article set
type ArticlesService interface {
	Fetch(ctx context.Context, query string)
	Refresh(ctx context.Context)
	Search(ctx context.Context, query string)
	SetSearchText(text string)
	Articles() []domain.Article
	Filtered() []domain.Article
	Loading() bool
	LastError() error
	ToggleBookmark(ctx context.Context, article domain.Article)
	IsBookmarked(ctx context.Context, article domain.Article) bool
}

// BookmarksService maintains the bookmarked article list
type BookmarksService interface {
	Load(ctx context.Context)
	Remove(ctx context.Context, article domain.Article)
	SetSearchText(text string)
	Filtered() []domain.Article
}

// Settings is the key-value preferences store
type Settings interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Config holds server configuration
type Config struct {
	Listen  string
	Timeout time.Duration
	Version string
	Debug   bool
}

// Server exposes the article set, bookmarks and settings over a JSON API
type Server struct {
	articles  ArticlesService
	bookmarks BookmarksService
	settings  Settings
	cfg       Config

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg Config, articles ArticlesService, bookmarks BookmarksService, settings Settings) *Server {
	s := &Server{
		articles:  articles,
		bookmarks: bookmarks,
		settings:  settings,
		cfg:       cfg,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.cfg.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Timeout,
		WriteTimeout: s.cfg.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("reader", "readerapp", s.cfg.Version))
	s.router.Use(rest.Ping)

	if s.cfg.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /articles", s.articlesHandler)
		r.HandleFunc("POST /articles/refresh", s.refreshHandler)
		r.HandleFunc("GET /articles/search", s.searchHandler)
		r.HandleFunc("GET /bookmarks", s.bookmarksHandler)
		r.HandleFunc("POST /bookmarks/toggle", s.toggleBookmarkHandler)
		r.HandleFunc("DELETE /bookmarks", s.removeBookmarkHandler)
		r.HandleFunc("GET /settings/{key}", s.getSettingHandler)
		r.HandleFunc("PUT /settings/{key}", s.putSettingHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
