package view

import (
	"strings"

	"pokedex/browser/internal/domain"

	"golang.org/x/text/cases"
)

// Project returns the records whose name contains query, ignoring case, in catalog order.
// An empty query returns records unchanged.
func Project(records []domain.DetailRecord, query string) []domain.DetailRecord {
	if query == "" {
		return records
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]domain.DetailRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(fold.String(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}
