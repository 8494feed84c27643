package domain

type TypeSlot struct {
	TypeName string `json:"type_name"`
}

type StatEntry struct {
	StatName  string `json:"stat_name"`
	BaseValue int    `json:"base_value"`
}

// DetailRecord is a fully resolved creature. Treat it as immutable once fetched.
type DetailRecord struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Types      []TypeSlot  `json:"types"`
	Stats      []StatEntry `json:"stats"`
	ArtworkURL *string     `json:"artwork_url,omitempty"`
}

// Stat returns the base value of the named stat, or 0 when the record has no such entry
func (r *DetailRecord) Stat(name string) int {
	for _, s := range r.Stats {
		if s.StatName == name {
			return s.BaseValue
		}
	}
	return 0
}

// HasArtwork reports whether the record carries a usable artwork reference
func (r *DetailRecord) HasArtwork() bool {
	return r.ArtworkURL != nil && *r.ArtworkURL != ""
}

// TypeNames returns the type names in slot order
func (r *DetailRecord) TypeNames() []string {
	names := make([]string, 0, len(r.Types))
	for _, t := range r.Types {
		names = append(names, t.TypeName)
	}
	return names
}
