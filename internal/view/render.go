package view

import (
	"fmt"
	"strings"

	"pokedex/browser/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

const (
	barWidth         = 20
	gridGap          = 2
	defaultCardWidth = 44
)

type badgeColors struct {
	bg string
	fg string
}

const (
	lightText = "#FFFFFF"
	darkText  = "#000000"
)

// Badge colors per category, dark text where the background is too light for white.
var palette = map[domain.TypeCategory]badgeColors{
	domain.TypeCategoryFire:     {bg: "#DC2626", fg: lightText},
	domain.TypeCategoryWater:    {bg: "#3B82F6", fg: lightText},
	domain.TypeCategoryGrass:    {bg: "#16A34A", fg: lightText},
	domain.TypeCategoryPoison:   {bg: "#A855F7", fg: lightText},
	domain.TypeCategoryBug:      {bg: "#BAE6FD", fg: lightText},
	domain.TypeCategoryNormal:   {bg: "#9CA3AF", fg: lightText},
	domain.TypeCategoryFlying:   {bg: "#38BDF8", fg: lightText},
	domain.TypeCategoryElectric: {bg: "#FACC15", fg: darkText},
	domain.TypeCategoryPsychic:  {bg: "#EC4899", fg: lightText},
	domain.TypeCategoryFighting: {bg: "#C2410C", fg: lightText},
	domain.TypeCategoryRock:     {bg: "#854D0E", fg: lightText},
	domain.TypeCategoryGround:   {bg: "#B45309", fg: lightText},
	domain.TypeCategorySteel:    {bg: "#6B7280", fg: lightText},
	domain.TypeCategoryGhost:    {bg: "#4338CA", fg: lightText},
	domain.TypeCategoryIce:      {bg: "#67E8F9", fg: darkText},
	domain.TypeCategoryFairy:    {bg: "#F0ABFC", fg: darkText},
	domain.TypeCategoryDefault:  {bg: "#6B7280", fg: lightText},
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C7086")).
			Padding(0, 1)

	nameStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	trackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB"))
)

// BadgeStyle returns the style for a type category, falling back to the default category
func BadgeStyle(category domain.TypeCategory) lipgloss.Style {
	colors, ok := palette[category]
	if !ok {
		colors = palette[domain.TypeCategoryDefault]
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(colors.bg)).
		Foreground(lipgloss.Color(colors.fg)).
		Bold(true).
		Padding(0, 1)
}

type Renderer struct {
	cardWidth int
	columns   int
}

// NewRenderer builds a renderer. columns <= 0 picks the column count from the available width.
func NewRenderer(cardWidth, columns int) *Renderer {
	if cardWidth <= 0 {
		cardWidth = defaultCardWidth
	}
	return &Renderer{cardWidth: cardWidth, columns: columns}
}

func (r *Renderer) Card(c Card) string {
	lines := []string{
		nameStyle.Render(c.DisplayName) + " " + mutedStyle.Render(fmt.Sprintf("#%03d", c.ID)),
	}

	if len(c.Badges) > 0 {
		badges := make([]string, 0, len(c.Badges))
		for _, b := range c.Badges {
			badges = append(badges, BadgeStyle(b.Category).Render(b.TypeName))
		}
		lines = append(lines, strings.Join(badges, " "))
	}

	if c.ArtworkURL != "" {
		lines = append(lines, mutedStyle.Render(c.ArtworkURL))
	}

	for _, bar := range c.Bars {
		lines = append(lines, renderBar(bar))
	}

	return cardStyle.Width(r.cardWidth).Render(strings.Join(lines, "\n"))
}

// Columns returns how many cards fit side by side in width
func (r *Renderer) Columns(width int) int {
	if r.columns > 0 {
		return r.columns
	}
	// border adds two cells on top of the styled width
	return max(1, (width+gridGap)/(r.cardWidth+2+gridGap))
}

func (r *Renderer) Grid(cards []Card, width int) string {
	if len(cards) == 0 {
		return ""
	}

	cols := r.Columns(width)
	gap := strings.Repeat(" ", gridGap)

	rows := make([]string, 0, (len(cards)+cols-1)/cols)
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))

		cells := make([]string, 0, 2*(end-start))
		for i, c := range cards[start:end] {
			if i > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, r.Card(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderBar(bar StatBar) string {
	filled := bar.Percent * barWidth / maxStatPercent

	var track string
	if filled > 0 {
		track += barStyle.Render(strings.Repeat("█", filled))
	}
	if filled < barWidth {
		track += trackStyle.Render(strings.Repeat("░", barWidth-filled))
	}

	return fmt.Sprintf("%-15s %s %3d", bar.Label, track, bar.Value)
}
