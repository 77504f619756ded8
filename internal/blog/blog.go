// Package blog sequences backend calls the way the UI needs them: input is
// checked before any request, lists are cached after every successful fetch
// and the cache follows a delete-all.
package blog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/partyapatil/Ai-blog-frontend/internal/article"
)

// Backend is the remote blog API.
type Backend interface {
	ListArticles(ctx context.Context) ([]article.Article, error)
	GenerateSingle(ctx context.Context, prompt string) error
	GenerateBulk(ctx context.Context, reqs []article.GenerationRequest) (int, error)
	DeleteAll(ctx context.Context) error
}

// Snapshot stores the last fetched list.
type Snapshot interface {
	ReplaceArticles(articles []article.Article) error
	Clear() error
	GetArticles() ([]article.Article, error)
	GetArticle(id string) (*article.Article, error)
	LastSync() (time.Time, bool)
}

// Listing is an article list and where it came from.
type Listing struct {
	Articles []article.Article
	// Stale is set when the list comes from the local snapshot because the
	// backend could not be reached.
	Stale    bool
	SyncedAt time.Time
}

type Service struct {
	backend  Backend
	snapshot Snapshot
	logger   *slog.Logger
	now      func() time.Time

	mu sync.Mutex
	// last is the most recent successful fetch of this process.
	last    Listing
	hasLast bool
}

// New builds a Service. snapshot may be nil, in which case nothing is cached.
func New(backend Backend, snapshot Snapshot, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{backend: backend, snapshot: snapshot, logger: logger, now: time.Now}
}

// Refresh fetches the article list. On failure the error is logged and the
// last good list is returned alongside it, marked stale: the one fetched
// earlier by this process if any, else the cached snapshot.
func (s *Service) Refresh(ctx context.Context) (Listing, error) {
	articles, err := s.backend.ListArticles(ctx)
	if err != nil {
		s.logger.Error("fetching articles", "err", err)
		if last, ok := s.lastListing(); ok {
			last.Stale = true
			return last, err
		}
		cached, cerr := s.Cached()
		if cerr != nil {
			s.logger.Warn("reading article snapshot", "err", cerr)
		}
		cached.Stale = true
		return cached, err
	}

	listing := Listing{Articles: articles, SyncedAt: s.now()}
	s.remember(listing)
	if s.snapshot != nil {
		if err := s.snapshot.ReplaceArticles(articles); err != nil {
			// The fresh list is still good; only offline use suffers
			s.logger.Warn("caching articles", "err", err)
		}
	}
	s.logger.Debug("articles refreshed", "count", len(articles))
	return listing, nil
}

// Cached returns the local snapshot without touching the network.
func (s *Service) Cached() (Listing, error) {
	if s.snapshot == nil {
		return Listing{Articles: []article.Article{}}, nil
	}
	articles, err := s.snapshot.GetArticles()
	if err != nil {
		return Listing{Articles: []article.Article{}}, fmt.Errorf("reading snapshot: %w", err)
	}
	synced, _ := s.snapshot.LastSync()
	return Listing{Articles: articles, SyncedAt: synced}, nil
}

// CachedArticle looks id up in the snapshot only. It returns nil when the
// article is not cached.
func (s *Service) CachedArticle(id string) (*article.Article, error) {
	if s.snapshot == nil {
		return nil, nil
	}
	return s.snapshot.GetArticle(id)
}

// Generate requests one article from a free-form prompt.
func (s *Service) Generate(ctx context.Context, prompt string) error {
	prompt, err := article.ParsePrompt(prompt)
	if err != nil {
		return err
	}
	if err := s.backend.GenerateSingle(ctx, prompt); err != nil {
		return err
	}
	s.logger.Info("article generated")
	return nil
}

// GenerateBulk parses raw bulk input and submits it as a single batch. It
// returns the backend's count of generated articles.
func (s *Service) GenerateBulk(ctx context.Context, raw string) (int, error) {
	reqs, err := article.ParseBulk(raw)
	if err != nil {
		return 0, err
	}
	return s.Submit(ctx, reqs)
}

// Submit validates and sends already-parsed requests.
func (s *Service) Submit(ctx context.Context, reqs []article.GenerationRequest) (int, error) {
	if len(reqs) == 0 {
		return 0, &article.EmptyInputError{Input: article.InputTitles}
	}
	if err := article.Validate(reqs); err != nil {
		return 0, err
	}
	count, err := s.backend.GenerateBulk(ctx, reqs)
	if err != nil {
		return 0, err
	}
	s.logger.Info("articles generated", "requested", len(reqs), "count", count)
	return count, nil
}

// DeleteAll removes every article on the backend, then empties the snapshot.
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.backend.DeleteAll(ctx); err != nil {
		return err
	}
	s.remember(Listing{Articles: []article.Article{}, SyncedAt: s.now()})
	if s.snapshot != nil {
		if err := s.snapshot.Clear(); err != nil {
			s.logger.Warn("clearing article snapshot", "err", err)
		}
	}
	s.logger.Info("all articles deleted")
	return nil
}

func (s *Service) remember(l Listing) {
	articles := make([]article.Article, len(l.Articles))
	copy(articles, l.Articles)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = Listing{Articles: articles, SyncedAt: l.SyncedAt}
	s.hasLast = true
}

func (s *Service) lastListing() (Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasLast {
		return Listing{}, false
	}
	articles := make([]article.Article, len(s.last.Articles))
	copy(articles, s.last.Articles)
	return Listing{Articles: articles, SyncedAt: s.last.SyncedAt}, true
}
