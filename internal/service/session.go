package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pokedex/browser/internal/catalog"
	"pokedex/browser/internal/domain"
	"pokedex/browser/internal/view"
)

// Session is the browsing state behind the UI: the loader with its catalog plus the current query.
type Session struct {
	loader   *catalog.Loader
	renderer *view.Renderer

	mu      sync.RWMutex
	query   string
	lastErr error
}

func NewSession(loader *catalog.Loader, renderer *view.Renderer) *Session {
	return &Session{
		loader:   loader,
		renderer: renderer,
	}
}

func (s *Session) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

func (s *Session) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// LastError is the failure of the most recent load, cleared by the next successful one
func (s *Session) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Session) CanLoadMore() bool {
	return !s.loader.Busy() && !s.loader.Exhausted()
}

func (s *Session) Loading() bool {
	return s.loader.Busy()
}

// LoadMore loads the next page. ErrBusy is returned as is and does not replace the last error.
func (s *Session) LoadMore(ctx context.Context, progress catalog.ProgressFunc) (*catalog.PageResult, error) {
	res, err := s.loader.LoadPageWithProgress(ctx, progress)
	if errors.Is(err, catalog.ErrBusy) {
		return nil, err
	}

	s.mu.Lock()
	s.lastErr = err
	if errors.Is(err, catalog.ErrExhausted) {
		s.lastErr = nil
	}
	s.mu.Unlock()

	return res, err
}

// LoadPages loads up to n pages, stopping early when the listing runs out
func (s *Session) LoadPages(ctx context.Context, n int, progress catalog.ProgressFunc) error {
	for i := 0; i < n; i++ {
		_, err := s.LoadMore(ctx, progress)
		if errors.Is(err, catalog.ErrExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Visible is the catalog projected through the current query
func (s *Session) Visible() []domain.DetailRecord {
	return view.Project(s.loader.Catalog().Records(), s.Query())
}

func (s *Session) Render(width int) string {
	grid := s.renderer.Grid(view.NewCards(s.Visible()), width)
	if grid == "" {
		return s.Status()
	}
	return grid + "\n" + s.Status()
}

func (s *Session) Status() string {
	total := s.loader.Catalog().Len()
	visible := len(s.Visible())

	parts := []string{fmt.Sprintf("Showing %d of %d", visible, total)}
	if q := s.Query(); q != "" {
		parts = append(parts, fmt.Sprintf("search %q", q))
	}

	switch {
	case s.loader.Busy():
		parts = append(parts, "loading...")
	case s.LastError() != nil:
		parts = append(parts, fmt.Sprintf("last load failed: %v (:more to retry)", s.LastError()))
	case s.loader.Exhausted():
		parts = append(parts, "all records loaded")
	default:
		parts = append(parts, ":more to load more")
	}

	return strings.Join(parts, " · ")
}
