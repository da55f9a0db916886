// Package render draws advice bundles for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/flopguide/advice"
	"github.com/lox/flopguide/poker"
)

const columnGap = 2

// Options controls layout.
type Options struct {
	Width       int
	MaxExamples int
	Color       bool
}

// Renderer renders bundles as three side-by-side tier columns.
type Renderer struct {
	opts Options
	r    *lipgloss.Renderer

	header     lipgloss.Style
	tierStyles map[advice.Tier]lipgloss.Style
	entryTitle lipgloss.Style
	bullet     lipgloss.Style
	example    lipgloss.Style
	redCard    lipgloss.Style
	blackCard  lipgloss.Style
	panel      lipgloss.Style
}

// New creates a renderer that writes styles for out. With Color off every
// style degrades to plain text.
func New(out io.Writer, opts Options) *Renderer {
	if opts.MaxExamples <= 0 || opts.MaxExamples > advice.MaxExamples {
		opts.MaxExamples = advice.MaxExamples
	}
	if opts.Width <= 0 {
		opts.Width = 120
	}

	r := lipgloss.NewRenderer(out)
	if !opts.Color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		opts: opts,
		r:    r,
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		tierStyles: map[advice.Tier]lipgloss.Style{
			advice.Favorable:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
			advice.Marginal:    r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
			advice.Unfavorable: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		},
		entryTitle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")),
		bullet:     r.NewStyle().Foreground(lipgloss.Color("#D0D0D0")),
		example:    r.NewStyle().Foreground(lipgloss.Color("#626262")),
		redCard:    r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		blackCard:  r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
	}
}

// Bundle renders the hand header followed by the three tier columns.
func (rd *Renderer) Bundle(h poker.Hand, b advice.Bundle) string {
	header := rd.header.Render(fmt.Sprintf("%s  %s · %s", h.Glyph(), h.Label(), h.Category()))

	colWidth := (rd.opts.Width - columnGap*(len(advice.Tiers)-1)) / len(advice.Tiers)
	cols := make([]string, 0, len(advice.Tiers)*2-1)
	for i, t := range advice.Tiers {
		if i > 0 {
			cols = append(cols, strings.Repeat(" ", columnGap))
		}
		cols = append(cols, rd.column(t, b.Tier(t), colWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
	)
}

func (rd *Renderer) column(t advice.Tier, entries []advice.Entry, width int) string {
	wrap := rd.r.NewStyle().Width(width)

	lines := []string{rd.tierStyles[t].Render(strings.ToUpper(t.String())), ""}
	for i, e := range entries {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, wrap.Render(rd.entryTitle.Render(e.Title)))
		for _, b := range e.Bullets {
			lines = append(lines, wrap.Render(rd.bullet.Render("• "+b)))
		}
		if ex := e.TopExamples(rd.opts.MaxExamples); len(ex) > 0 {
			lines = append(lines, rd.example.Render("e.g."))
			for _, board := range ex {
				lines = append(lines, "  "+rd.Board(board))
			}
		}
	}
	return wrap.Render(strings.Join(lines, "\n"))
}

// Board colours each card of a rendered example board by suit.
func (rd *Renderer) Board(board string) string {
	tokens := strings.Fields(board)
	for i, tok := range tokens {
		switch {
		case strings.HasSuffix(tok, "♥"), strings.HasSuffix(tok, "♦"):
			tokens[i] = rd.redCard.Render(tok)
		case strings.HasSuffix(tok, "♠"), strings.HasSuffix(tok, "♣"):
			tokens[i] = rd.blackCard.Render(tok)
		}
	}
	return strings.Join(tokens, " ")
}

// HowTo is shown in place of advice while the input is not a valid hand.
func (rd *Renderer) HowTo() string {
	body := strings.Join([]string{
		rd.entryTitle.Render("How to read this"),
		"",
		"Enter two cards as rank + suit, e.g. Js9s, 7c7d or AhKd.",
		"Ranks: A K Q J T 9 8 7 6 5 4 3 2   Suits: c d h s",
		"",
		rd.tierStyles[advice.Favorable].Render("Favorable") + "   flops to build a pot on",
		rd.tierStyles[advice.Marginal].Render("Marginal") + "    flops to keep the pot small",
		rd.tierStyles[advice.Unfavorable].Render("Unfavorable") + " flops to give up on",
		"",
		"Example boards are illustrations, not dealt cards.",
	}, "\n")
	return rd.panel.Render(body)
}

// SetWidth adjusts the layout width, ignoring widths too narrow for three columns.
func (rd *Renderer) SetWidth(width int) {
	if width >= 40 {
		rd.opts.Width = width
	}
}
