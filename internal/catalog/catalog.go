package catalog

import (
	"sync"

	"pokedex/browser/internal/domain"
)

// Catalog is the ordered, id-unique collection of records loaded so far.
// It only grows: existing entries are never removed or reordered.
type Catalog struct {
	mu      sync.RWMutex
	records []domain.DetailRecord
	ids     map[int]struct{}
}

func New() *Catalog {
	return &Catalog{
		ids: make(map[int]struct{}),
	}
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

func (c *Catalog) Contains(id int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.ids[id]
	return ok
}

// Records returns a snapshot in insertion order
func (c *Catalog) Records() []domain.DetailRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.DetailRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Merge appends the candidates whose id is not present yet, keeping candidate order.
// Repeats inside candidates are discarded too, so only the first occurrence lands.
func (c *Catalog) Merge(candidates []domain.DetailRecord) (added []domain.DetailRecord, discarded int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	added = make([]domain.DetailRecord, 0, len(candidates))
	for _, rec := range candidates {
		if _, exists := c.ids[rec.ID]; exists {
			discarded++
			continue
		}
		c.ids[rec.ID] = struct{}{}
		c.records = append(c.records, rec)
		added = append(added, rec)
	}

	return added, discarded
}
