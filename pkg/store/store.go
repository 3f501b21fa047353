package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/readerapp/reader/pkg/domain"
)

//go:embed schema.sql
var schema string

// Store keeps cached and bookmarked articles in SQLite. Persistence failures
// never propagate to callers: writes no-op and reads return empty results,
// with the error visible on the log only. The cache is a best-effort
// convenience, not a system of record.
type Store struct {
	conn        *sqlx.DB
	maxArticles int
}

// Config represents store configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MaxArticles     int // retention bound for cached articles, trimmed on write
}

// New opens the database, applies pragmas and initializes the schema
func New(cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:reader.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.MaxArticles == 0 {
		cfg.MaxArticles = 100
	}

	conn, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// optimize SQLite settings
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{conn: conn, maxArticles: cfg.MaxArticles}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

// Ping verifies the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// articleRow is the persisted shape shared by both collections
type articleRow struct {
	ID           int64          `db:"id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	Author       sql.NullString `db:"author"`
	URL          string         `db:"url"`
	ImageURL     sql.NullString `db:"image_url"`
	PublishedAt  string         `db:"published_at"`
	Content      sql.NullString `db:"content"`
	SourceName   sql.NullString `db:"source_name"`
	SourceID     sql.NullString `db:"source_id"`
	CachedAt     sql.NullTime   `db:"cached_at"`
	BookmarkedAt sql.NullTime   `db:"bookmarked_at"`
}

func (r *articleRow) toArticle() domain.Article {
	return domain.Article{
		ID:          uuid.New(),
		Title:       r.Title,
		Description: r.Description.String,
		Author:      r.Author.String,
		URL:         r.URL,
		ImageURL:    r.ImageURL.String,
		PublishedAt: r.PublishedAt,
		Content:     r.Content.String,
		Source:      domain.Source{ID: r.SourceID.String, Name: r.SourceName.String},
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// SaveCachedArticles atomically replaces the whole cache with the given
// articles, stamped with the current time. The previous cache contents are
// gone after this call. The retention bound is enforced here, oldest first.
func (s *Store) SaveCachedArticles(ctx context.Context, articles []domain.Article) {
	if err := s.saveCachedArticles(ctx, articles); err != nil {
		log.Printf("[WARN] failed to save cached articles: %v", err)
	}
}

func (s *Store) saveCachedArticles(ctx context.Context, articles []domain.Article) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		return s.inTransaction(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, "DELETE FROM cached_articles"); err != nil {
				return fmt.Errorf("clear cached articles: %w", err)
			}

			now := time.Now().UTC()
			query := `
				INSERT INTO cached_articles (
					title, description, author, url, image_url,
					published_at, content, source_name, source_id, cached_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`
			for _, a := range articles {
				_, err := tx.ExecContext(ctx, query, a.Title, nullable(a.Description), nullable(a.Author),
					a.URL, nullable(a.ImageURL), a.PublishedAt, nullable(a.Content),
					nullable(a.Source.Name), nullable(a.Source.ID), now)
				if err != nil {
					return fmt.Errorf("insert cached article %q: %w", a.URL, err)
				}
			}

			// trim-on-write: keep the newest maxArticles records
			trim := `
				DELETE FROM cached_articles WHERE id NOT IN (
					SELECT id FROM cached_articles ORDER BY cached_at DESC, id ASC LIMIT ?
				)
			`
			if _, err := tx.ExecContext(ctx, trim, s.maxArticles); err != nil {
				return fmt.Errorf("trim cached articles: %w", err)
			}
			return nil
		})
	})
}

// FetchCachedArticles returns all cached articles, most recently cached first.
// Never fails the caller, storage errors yield an empty result.
func (s *Store) FetchCachedArticles(ctx context.Context) []domain.Article {
	var rows []articleRow
	query := `
		SELECT id, title, description, author, url, image_url,
		       published_at, content, source_name, source_id, cached_at
		FROM cached_articles ORDER BY cached_at DESC, id ASC
	`
	if err := s.conn.SelectContext(ctx, &rows, query); err != nil {
		log.Printf("[WARN] failed to fetch cached articles: %v", err)
		return []domain.Article{}
	}
	return toArticles(rows)
}

// SearchCachedArticles returns cached articles whose title or description
// contains the query, case-insensitive, ordered same as FetchCachedArticles
func (s *Store) SearchCachedArticles(ctx context.Context, query string) []domain.Article {
	var rows []articleRow
	q := `
		SELECT id, title, description, author, url, image_url,
		       published_at, content, source_name, source_id, cached_at
		FROM cached_articles
		WHERE instr(lower(title), lower(?)) > 0
		   OR instr(lower(coalesce(description, '')), lower(?)) > 0
		ORDER BY cached_at DESC, id ASC
	`
	if err := s.conn.SelectContext(ctx, &rows, q, query, query); err != nil {
		log.Printf("[WARN] failed to search cached articles: %v", err)
		return []domain.Article{}
	}
	return toArticles(rows)
}

// SaveBookmark stores a bookmark for the article unless one with the same url
// already exists, in which case it is a no-op
func (s *Store) SaveBookmark(ctx context.Context, article domain.Article) {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		query := `
			INSERT OR IGNORE INTO bookmarks (
				title, description, author, url, image_url,
				published_at, content, source_name, source_id, bookmarked_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		_, err := s.conn.ExecContext(ctx, query, article.Title, nullable(article.Description),
			nullable(article.Author), article.URL, nullable(article.ImageURL), article.PublishedAt,
			nullable(article.Content), nullable(article.Source.Name), nullable(article.Source.ID),
			time.Now().UTC())
		return err
	})
	if err != nil {
		log.Printf("[WARN] failed to save bookmark for %q: %v", article.URL, err)
	}
}

// RemoveBookmark deletes every bookmark matching the article's url
func (s *Store) RemoveBookmark(ctx context.Context, article domain.Article) {
	if _, err := s.conn.ExecContext(ctx, "DELETE FROM bookmarks WHERE url = ?", article.URL); err != nil {
		log.Printf("[WARN] failed to remove bookmark for %q: %v", article.URL, err)
	}
}

// FetchBookmarkedArticles returns all bookmarks, most recently bookmarked first
func (s *Store) FetchBookmarkedArticles(ctx context.Context) []domain.Article {
	var rows []articleRow
	query := `
		SELECT id, title, description, author, url, image_url,
		       published_at, content, source_name, source_id, bookmarked_at
		FROM bookmarks ORDER BY bookmarked_at DESC, id DESC
	`
	if err := s.conn.SelectContext(ctx, &rows, query); err != nil {
		log.Printf("[WARN] failed to fetch bookmarks: %v", err)
		return []domain.Article{}
	}
	return toArticles(rows)
}

// IsArticleBookmarked checks bookmark existence by url
func (s *Store) IsArticleBookmarked(ctx context.Context, article domain.Article) bool {
	var count int
	err := s.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM bookmarks WHERE url = ?", article.URL)
	if err != nil {
		log.Printf("[WARN] failed to check bookmark status for %q: %v", article.URL, err)
		return false
	}
	return count > 0
}

// GetSetting retrieves a setting value, empty string when not set
func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.conn.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.conn.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// inTransaction executes a function within a database transaction
func (s *Store) inTransaction(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed: %w (rollback also failed: %s)", err, rbErr.Error())
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func toArticles(rows []articleRow) []domain.Article {
	articles := make([]domain.Article, len(rows))
	for i := range rows {
		articles[i] = rows[i].toArticle()
	}
	return articles
}
