package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"pokedex/browser/internal/client"
	"pokedex/browser/internal/domain"
	"pokedex/browser/internal/metrics"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const DefaultPageSize = 20

var (
	// ErrBusy is returned when LoadPage is called while another load is in flight
	ErrBusy = errors.New("a page load is already in progress")
	// ErrExhausted is returned once the listing reported its last page
	ErrExhausted = errors.New("no more pages to load")
)

type Stage string

const (
	StageList      Stage = "list"
	StageDetail    Stage = "detail"
	StageCancelled Stage = "cancelled"
)

// LoadError reports a failed page load. The catalog and cursor are unchanged when it is returned.
type LoadError struct {
	Offset int
	Stage  Stage
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("page load at offset %d failed during %s: %v", e.Offset, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// PageResult describes one successful merge
type PageResult struct {
	Offset    int
	Fetched   int
	Added     []domain.DetailRecord
	Discarded int
}

// ProgressFunc is called from the fan-out goroutines each time a detail resolves.
// Implementations must be safe for concurrent use.
type ProgressFunc func(done, total int)

type Loader struct {
	client   client.PokeAPIClient
	catalog  *Catalog
	pageSize int

	busy atomic.Bool

	mu        sync.RWMutex
	cursor    int
	exhausted bool
}

func NewLoader(apiClient client.PokeAPIClient, catalog *Catalog, pageSize int) *Loader {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Loader{
		client:   apiClient,
		catalog:  catalog,
		pageSize: pageSize,
	}
}

func (l *Loader) Catalog() *Catalog {
	return l.catalog
}

func (l *Loader) Busy() bool {
	return l.busy.Load()
}

// Cursor is the offset the next LoadPage will request
func (l *Loader) Cursor() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cursor
}

func (l *Loader) Exhausted() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.exhausted
}

func (l *Loader) LoadPage(ctx context.Context) (*PageResult, error) {
	return l.LoadPageWithProgress(ctx, nil)
}

// LoadPageWithProgress fetches the page at the cursor, resolves every entry concurrently
// and merges the new records once all of them have arrived. Any failure fails the whole page.
func (l *Loader) LoadPageWithProgress(ctx context.Context, progress ProgressFunc) (*PageResult, error) {
	if !l.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer l.busy.Store(false)

	if l.Exhausted() {
		return nil, ErrExhausted
	}

	offset := l.Cursor()
	log.Infof("🔄 Loading page at offset %d", offset)

	page, err := l.client.GetListPage(ctx, offset, l.pageSize)
	if err != nil {
		return nil, l.fail(offset, StageList, err)
	}

	records, err := l.resolve(ctx, page.Results, progress)
	if err != nil {
		return nil, l.fail(offset, StageDetail, err)
	}

	// The caller may have gone away while details were in flight; drop the results then.
	if err := ctx.Err(); err != nil {
		return nil, l.fail(offset, StageCancelled, err)
	}

	added, discarded := l.catalog.Merge(records)

	l.mu.Lock()
	l.cursor = offset + l.pageSize
	l.exhausted = !page.HasNext()
	l.mu.Unlock()

	metrics.PagesLoadedTotal.Inc()
	metrics.RecordsAddedTotal.Add(float64(len(added)))
	metrics.DuplicatesDiscardedTotal.Add(float64(discarded))
	metrics.CatalogSize.Set(float64(l.catalog.Len()))

	log.Infof("✅ Loaded page at offset %d: %d fetched, %d added, %d duplicates",
		offset, len(records), len(added), discarded)

	return &PageResult{
		Offset:    offset,
		Fetched:   len(records),
		Added:     added,
		Discarded: discarded,
	}, nil
}

// resolve fetches all details concurrently. Each goroutine writes only its own slot,
// so the returned slice follows summary order regardless of completion order.
func (l *Loader) resolve(ctx context.Context, summaries []domain.SummaryRecord, progress ProgressFunc) ([]domain.DetailRecord, error) {
	records := make([]domain.DetailRecord, len(summaries))
	var done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	for i, summary := range summaries {
		g.Go(func() error {
			rec, err := l.client.GetDetail(gctx, summary.DetailURL)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", summary.Name, err)
			}
			records[i] = *rec

			n := done.Add(1)
			if progress != nil {
				progress(int(n), len(summaries))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

func (l *Loader) fail(offset int, stage Stage, err error) error {
	metrics.PageLoadFailuresTotal.WithLabelValues(string(stage)).Inc()
	log.Errorf("❌ Page load at offset %d failed during %s: %v", offset, stage, err)
	return &LoadError{Offset: offset, Stage: stage, Err: err}
}
