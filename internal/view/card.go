package view

import (
	"strings"

	"pokedex/browser/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxStatPercent = 100

type Badge struct {
	TypeName string
	Category domain.TypeCategory
}

type StatBar struct {
	StatName string
	Label    string
	Value    int // raw base value
	Percent  int // Value clamped to [0, 100]
}

// Card is the display model of one record
type Card struct {
	ID          int
	Name        string
	DisplayName string
	Badges      []Badge
	Bars        []StatBar
	ArtworkURL  string // empty when the record has no artwork
}

func NewCard(rec domain.DetailRecord) Card {
	title := cases.Title(language.English)

	card := Card{
		ID:          rec.ID,
		Name:        rec.Name,
		DisplayName: title.String(rec.Name),
		Badges:      make([]Badge, 0, len(rec.Types)),
		Bars:        make([]StatBar, 0, len(domain.TrackedStats)),
	}

	for _, t := range rec.Types {
		card.Badges = append(card.Badges, Badge{
			TypeName: t.TypeName,
			Category: domain.CategoryForType(t.TypeName),
		})
	}

	for _, stat := range domain.TrackedStats {
		value := rec.Stat(stat)
		card.Bars = append(card.Bars, StatBar{
			StatName: stat,
			Label:    title.String(strings.ReplaceAll(stat, "-", " ")),
			Value:    value,
			Percent:  StatPercent(value),
		})
	}

	if rec.HasArtwork() {
		card.ArtworkURL = *rec.ArtworkURL
	}

	return card
}

func NewCards(records []domain.DetailRecord) []Card {
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, NewCard(r))
	}
	return cards
}

// StatPercent clamps a base value to a 0..100 bar width. Values above 100 are cut, not rescaled.
func StatPercent(baseValue int) int {
	return max(0, min(baseValue, maxStatPercent))
}
