package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, borders and glyphs.
// All renderers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Price lipgloss.Style
	Selected                                    lipgloss.Style

	// Frame is the solid border on the outside of the board; Cut is the
	// border used where two pieces meet.
	Frame, Cut  lipgloss.Border
	BorderColor lipgloss.TerminalColor

	// Ramp is the shared board picture: a diagonal gradient sampled by
	// (x+y)/50 of each piece's offsets.
	Ramp [5]lipgloss.TerminalColor

	SymPhoto, SymSelected string
}

var current = classic()

// SetTheme switches the palette: classic (default), neon or mono.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),

		Frame:       lipgloss.NormalBorder(),
		Cut:         cutBorder(),
		BorderColor: lipgloss.Color("8"),
		Ramp: [5]lipgloss.TerminalColor{
			lipgloss.Color("229"), lipgloss.Color("222"), lipgloss.Color("215"),
			lipgloss.Color("209"), lipgloss.Color("203"),
		},
		SymPhoto: "▣", SymSelected: "›",
	}
}

func neon() Theme {
	t := classic()
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Price = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Frame = lipgloss.RoundedBorder()
	t.BorderColor = lipgloss.Color("13")
	t.Ramp = [5]lipgloss.TerminalColor{
		lipgloss.Color("51"), lipgloss.Color("45"), lipgloss.Color("99"),
		lipgloss.Color("135"), lipgloss.Color("201"),
	}
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	noColor := lipgloss.NoColor{}
	return Theme{
		Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Price: plain,
		Selected: lipgloss.NewStyle().Reverse(true),

		Frame:       asciiBorder("-", "|"),
		Cut:         asciiBorder(".", ":"),
		BorderColor: noColor,
		Ramp:        [5]lipgloss.TerminalColor{noColor, noColor, noColor, noColor, noColor},
		SymPhoto:    "#", SymSelected: ">",
	}
}

func cutBorder() lipgloss.Border {
	b := lipgloss.NormalBorder()
	b.Top, b.Bottom = "╌", "╌"
	b.Left, b.Right = "╎", "╎"
	return b
}

func asciiBorder(h, v string) lipgloss.Border {
	return lipgloss.Border{
		Top: h, Bottom: h, Left: v, Right: v,
		TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
	}
}
