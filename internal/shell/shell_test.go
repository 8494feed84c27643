package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"pokedex/browser/internal/catalog"
	"pokedex/browser/internal/domain"
	"pokedex/browser/internal/service"
	"pokedex/browser/internal/view"

	"github.com/stretchr/testify/assert"
)

type listAPI struct {
	names []string
}

func (a *listAPI) GetListPage(ctx context.Context, offset, limit int) (*domain.ListPage, error) {
	page := &domain.ListPage{Offset: offset, Count: len(a.names)}
	for i := offset; i < offset+limit && i < len(a.names); i++ {
		page.Results = append(page.Results, domain.SummaryRecord{Name: a.names[i], DetailURL: fmt.Sprintf("%d", i)})
	}
	if offset+limit < len(a.names) {
		page.Next = "next"
	}
	return page, nil
}

func (a *listAPI) GetDetail(ctx context.Context, detailURL string) (*domain.DetailRecord, error) {
	var i int
	if _, err := fmt.Sscanf(detailURL, "%d", &i); err != nil {
		return nil, err
	}
	return &domain.DetailRecord{ID: i + 1, Name: a.names[i]}, nil
}

func newShell(names []string, pageSize int) (*Shell, *bytes.Buffer, *service.Session) {
	loader := catalog.NewLoader(&listAPI{names: names}, catalog.New(), pageSize)
	session := service.NewSession(loader, view.NewRenderer(30, 1))
	out := &bytes.Buffer{}
	return New(session, out, io.Discard, func() int { return 80 }), out, session
}

func TestShell_LoadAndSearch(t *testing.T) {
	sh, out, session := newShell([]string{"charmander", "charizard", "squirtle", "wartortle"}, 2)
	ctx := context.Background()

	sh.LoadInitial(ctx)
	assert.Len(t, session.Visible(), 2)

	assert.False(t, sh.Execute(ctx, ":more"))
	assert.Len(t, session.Visible(), 4)

	out.Reset()
	assert.False(t, sh.Execute(ctx, "  char "))
	assert.Equal(t, "char", session.Query())
	assert.Contains(t, out.String(), "Charizard")
	assert.NotContains(t, out.String(), "Squirtle")

	assert.False(t, sh.Execute(ctx, ":c"))
	assert.Equal(t, "", session.Query())
	assert.Len(t, session.Visible(), 4)
}

func TestShell_MoreWhenExhausted(t *testing.T) {
	sh, out, _ := newShell([]string{"mew"}, 20)
	ctx := context.Background()

	sh.LoadInitial(ctx)
	out.Reset()

	sh.Execute(ctx, ":more")
	assert.Contains(t, out.String(), "all records are loaded")
}

func TestShell_Commands(t *testing.T) {
	sh, out, _ := newShell([]string{"mew"}, 20)
	ctx := context.Background()

	assert.False(t, sh.Execute(ctx, ":bogus"))
	assert.Contains(t, out.String(), "unknown command :bogus")

	out.Reset()
	assert.False(t, sh.Execute(ctx, ":help"))
	assert.Contains(t, out.String(), ":more")

	assert.True(t, sh.Execute(ctx, ":q"))
	assert.True(t, sh.Execute(ctx, "exit"))
}
