package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pokedex/browser/internal/catalog"
	"pokedex/browser/internal/domain"
	"pokedex/browser/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	names []string
	fail  bool
}

func (s *stubAPI) GetListPage(ctx context.Context, offset, limit int) (*domain.ListPage, error) {
	if s.fail {
		return nil, errors.New("boom")
	}
	page := &domain.ListPage{Offset: offset, Count: len(s.names)}
	for i := offset; i < offset+limit && i < len(s.names); i++ {
		page.Results = append(page.Results, domain.SummaryRecord{Name: s.names[i], DetailURL: s.names[i]})
	}
	if offset+limit < len(s.names) {
		page.Next = "more"
	}
	return page, nil
}

func (s *stubAPI) GetDetail(ctx context.Context, detailURL string) (*domain.DetailRecord, error) {
	for i, n := range s.names {
		if n == detailURL {
			return &domain.DetailRecord{ID: i + 1, Name: n}, nil
		}
	}
	return nil, errors.New("unknown record")
}

func newSession(api *stubAPI, pageSize int) *Session {
	loader := catalog.NewLoader(api, catalog.New(), pageSize)
	return NewSession(loader, view.NewRenderer(30, 1))
}

func TestSession_SearchFiltersLoadedRecords(t *testing.T) {
	s := newSession(&stubAPI{names: []string{"charmander", "charizard", "squirtle"}}, 20)

	_, err := s.LoadMore(context.Background(), nil)
	require.NoError(t, err)

	s.Search("char")
	assert.Equal(t, "char", s.Query())
	visible := s.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "charmander", visible[0].Name)
	assert.Equal(t, "charizard", visible[1].Name)

	s.Search("")
	assert.Len(t, s.Visible(), 3)
}

func TestSession_StatusAndErrors(t *testing.T) {
	api := &stubAPI{names: []string{"bulbasaur", "ivysaur", "venusaur"}}
	s := newSession(api, 2)

	assert.True(t, s.CanLoadMore())
	assert.Equal(t, "Showing 0 of 0 · :more to load more", s.Status())

	_, err := s.LoadMore(context.Background(), nil)
	require.NoError(t, err)

	api.fail = true
	_, err = s.LoadMore(context.Background(), nil)
	require.Error(t, err)
	assert.Error(t, s.LastError())
	assert.Contains(t, s.Status(), "last load failed")
	assert.Contains(t, s.Status(), "Showing 2 of 2")

	api.fail = false
	_, err = s.LoadMore(context.Background(), nil)
	require.NoError(t, err)
	assert.NoError(t, s.LastError())
	assert.False(t, s.CanLoadMore())
	assert.Contains(t, s.Status(), "all records loaded")

	_, err = s.LoadMore(context.Background(), nil)
	assert.ErrorIs(t, err, catalog.ErrExhausted)
	assert.NoError(t, s.LastError())
}

func TestSession_LoadPagesStopsWhenExhausted(t *testing.T) {
	s := newSession(&stubAPI{names: []string{"a", "b", "c", "d", "e"}}, 2)

	require.NoError(t, s.LoadPages(context.Background(), 10, nil))
	assert.Len(t, s.Visible(), 5)
}

func TestSession_Render(t *testing.T) {
	s := newSession(&stubAPI{names: []string{"pikachu", "raichu"}}, 20)
	require.NoError(t, s.LoadPages(context.Background(), 1, nil))

	s.Search("PIKA")
	out := s.Render(120)

	assert.Contains(t, out, "Pikachu")
	assert.NotContains(t, out, "Raichu")
	assert.True(t, strings.HasSuffix(out, `Showing 1 of 2 · search "PIKA" · all records loaded`))
}
