package domain

// SummaryRecord is a lightweight listing entry used only to drive detail fetches
type SummaryRecord struct {
	Name      string `json:"name"`
	DetailURL string `json:"url"`
}

type ListPage struct {
	Offset  int             `json:"offset"`  // Offset the page was requested at
	Count   int             `json:"count"`   // Total records at the source
	Next    string          `json:"next"`    // URL of the following page, empty on the last page
	Results []SummaryRecord `json:"results"` // Summary entries on this page
}

// HasNext reports whether the source has records past this page
func (p *ListPage) HasNext() bool {
	return p.Next != ""
}
