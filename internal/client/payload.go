package client

import (
	"encoding/json"
	"fmt"

	"pokedex/browser/internal/domain"
)

// Wire shapes of the PokeAPI responses. Only the fields the catalog needs are decoded.

type listResponse struct {
	Count   int    `json:"count"`
	Next    string `json:"next"`
	Results []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

type detailResponse struct {
	ID    *int   `json:"id"`
	Name  string `json:"name"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Sprites *struct {
		Other map[string]struct {
			FrontDefault *string `json:"front_default"`
		} `json:"other"`
	} `json:"sprites"`
}

const officialArtwork = "official-artwork"

func parseListPage(body []byte, offset int) (*domain.ListPage, error) {
	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode list page: %w", err)
	}

	page := &domain.ListPage{
		Offset:  offset,
		Count:   resp.Count,
		Next:    resp.Next,
		Results: make([]domain.SummaryRecord, 0, len(resp.Results)),
	}

	for _, r := range resp.Results {
		if r.URL == "" {
			return nil, fmt.Errorf("list entry %q has no detail url", r.Name)
		}
		page.Results = append(page.Results, domain.SummaryRecord{
			Name:      r.Name,
			DetailURL: r.URL,
		})
	}

	return page, nil
}

func parseDetail(body []byte) (*domain.DetailRecord, error) {
	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode detail record: %w", err)
	}

	// id is what the catalog de-duplicates on, so a record without one is unusable
	if resp.ID == nil {
		return nil, fmt.Errorf("detail record %q has no id", resp.Name)
	}

	record := &domain.DetailRecord{
		ID:    *resp.ID,
		Name:  resp.Name,
		Types: make([]domain.TypeSlot, 0, len(resp.Types)),
		Stats: make([]domain.StatEntry, 0, len(resp.Stats)),
	}

	for _, t := range resp.Types {
		record.Types = append(record.Types, domain.TypeSlot{TypeName: t.Type.Name})
	}

	for _, s := range resp.Stats {
		record.Stats = append(record.Stats, domain.StatEntry{
			StatName:  s.Stat.Name,
			BaseValue: s.BaseStat,
		})
	}

	if resp.Sprites != nil {
		if art, ok := resp.Sprites.Other[officialArtwork]; ok && art.FrontDefault != nil && *art.FrontDefault != "" {
			url := *art.FrontDefault
			record.ArtworkURL = &url
		}
	}

	return record, nil
}
