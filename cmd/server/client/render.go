package client

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/api/pokedex/v1alpha1"
)

const (
	statBarWidth = 30
	maxStatValue = 255
)

var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#A8A878"),
	"fire":     lipgloss.Color("#F08030"),
	"water":    lipgloss.Color("#6890F0"),
	"electric": lipgloss.Color("#F8D030"),
	"grass":    lipgloss.Color("#78C850"),
	"ice":      lipgloss.Color("#98D8D8"),
	"fighting": lipgloss.Color("#C03028"),
	"poison":   lipgloss.Color("#A040A0"),
	"ground":   lipgloss.Color("#E0C068"),
	"flying":   lipgloss.Color("#A890F0"),
	"psychic":  lipgloss.Color("#F85888"),
	"bug":      lipgloss.Color("#A8B820"),
	"rock":     lipgloss.Color("#B8A038"),
	"ghost":    lipgloss.Color("#705898"),
	"dragon":   lipgloss.Color("#7038F8"),
	"dark":     lipgloss.Color("#705848"),
	"steel":    lipgloss.Color("#B8B8D0"),
	"fairy":    lipgloss.Color("#EE99AC"),
}

var (
	accent = lipgloss.Color("#3f51b5")
	muted  = lipgloss.Color("#9e9e9e")
	danger = lipgloss.Color("#e53935")
)

// styles are bound to one renderer so color output follows the writer
type styles struct {
	r       *lipgloss.Renderer
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	errText lipgloss.Style
	card    lipgloss.Style
	bar     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		r:       r,
		title:   r.NewStyle().Bold(true).Foreground(accent),
		heading: r.NewStyle().Bold(true).Underline(true),
		muted:   r.NewStyle().Foreground(muted),
		errText: r.NewStyle().Bold(true).Foreground(danger),
		card:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		bar:     r.NewStyle().Foreground(accent),
	}
}

func (s styles) typeBadge(name, label string) string {
	color, ok := typeColors[name]
	if !ok {
		color = muted
	}
	return s.r.NewStyle().
		Background(color).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1).
		Render(label)
}

// RenderState writes a terminal view of a session's state to w
func RenderState(w io.Writer, state *pokedexv1alpha1.State) error {
	s := newStyles(w)

	var sections []string
	if filter := state.GetFilter(); filter != nil {
		sections = append(sections, s.muted.Render(fmt.Sprintf("Generation %s · %s", filter.Generation, filter.Method)))
	}

	switch {
	case state.GetPokemon() != nil:
		sections = append(sections,
			s.card.Render(renderPokemon(s, state.Pokemon)),
			renderMoves(s, state.GetMoves()))
	case state != nil && state.Error != "":
		sections = append(sections, s.errText.Render(state.Error))
	default:
		sections = append(sections, s.muted.Render("Search for a pokemon to begin."))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

func renderPokemon(s styles, p *pokedexv1alpha1.Pokemon) string {
	var b strings.Builder

	b.WriteString(s.title.Render(fmt.Sprintf("#%03d %s", p.Id, displayName(p.DisplayName, p.Name))))
	b.WriteString("\n")

	badges := make([]string, len(p.Types))
	for i, t := range p.Types {
		label := t.LocalizedName
		if label == "" {
			label = t.Name
		}
		badges[i] = s.typeBadge(t.Name, label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, badges...))
	b.WriteString("\n")
	b.WriteString(s.muted.Render(fmt.Sprintf("Height %.1f m · Weight %.1f kg", p.Height, p.Weight)))
	b.WriteString("\n")
	if p.ArtworkUrl != "" {
		b.WriteString(s.muted.Render(p.ArtworkUrl))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.heading.Render("Base Stats"))
	b.WriteString("\n")
	for _, stat := range p.Stats {
		fmt.Fprintf(&b, "%-16s %3d %s\n", stat.Name, stat.Value, s.bar.Render(statBar(int(stat.Value))))
	}

	if len(p.Evolutions) > 0 {
		b.WriteString("\n")
		b.WriteString(s.heading.Render("Evolution"))
		b.WriteString("\n")
		b.WriteString(evolutionLine(p.Evolutions))
	}

	return b.String()
}

func renderMoves(s styles, moves []*pokedexv1alpha1.Move) string {
	if len(moves) == 0 {
		return s.muted.Render("No moves for this filter.")
	}

	var b strings.Builder
	b.WriteString(s.heading.Render(fmt.Sprintf("Moves (%d)", len(moves))))
	for _, m := range moves {
		b.WriteString("\n")
		b.WriteString(s.title.Render(displayName(m.LocalizedName, m.Name)))
		b.WriteString("  ")
		b.WriteString(learnLabel(m))
		b.WriteString("\n")

		var facts []string
		if m.Type != "" {
			facts = append(facts, s.typeBadge(m.Type, m.Type))
		}
		if m.Power != nil {
			facts = append(facts, fmt.Sprintf("Power %d", *m.Power))
		}
		if m.Accuracy != nil {
			facts = append(facts, fmt.Sprintf("Accuracy %d", *m.Accuracy))
		}
		if len(facts) > 0 {
			b.WriteString("  " + strings.Join(facts, " · ") + "\n")
		}
		if m.Description != "" {
			b.WriteString("  " + s.muted.Render(m.Description) + "\n")
		}
	}
	return b.String()
}

func statBar(value int) string {
	value = min(max(value, 0), maxStatValue)
	filled := value * statBarWidth / maxStatValue
	return strings.Repeat("█", filled) + strings.Repeat("░", statBarWidth-filled)
}

func evolutionLine(steps []*pokedexv1alpha1.EvolutionStep) string {
	parts := make([]string, len(steps))
	for i, step := range steps {
		part := capitalize(step.Name)
		switch {
		case step.MinLevel != nil:
			part += fmt.Sprintf(" (Lv. %d)", *step.MinLevel)
		case step.Item != "":
			part += fmt.Sprintf(" (%s)", step.Item)
		case i > 0 && step.Trigger != "" && step.Trigger != "level-up":
			part += fmt.Sprintf(" (%s)", step.Trigger)
		}
		parts[i] = part
	}
	return strings.Join(parts, " → ")
}

func learnLabel(m *pokedexv1alpha1.Move) string {
	if m.Method == "level-up" {
		return fmt.Sprintf("Learn at Level %d", m.Level)
	}
	return "Learn by " + strings.Replace(m.Method, "-", " ", 1)
}

func displayName(localized, canonical string) string {
	if localized != "" {
		return localized
	}
	return capitalize(canonical)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
