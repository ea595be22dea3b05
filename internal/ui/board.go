package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/endurance/internal/model"
)

const (
	PieceWidth  = 14
	PieceHeight = 3
	ListWidth   = 36
)

// NoSelection renders a board or list without a highlighted slot.
const NoSelection = -1

// Piece renders slot i of the board. photo is the stored image's summary.
func Piece(i int, it model.Item, photo string, selected bool) string {
	t := current
	x, y := model.Offsets(i)

	st := lipgloss.NewStyle().
		Width(PieceWidth).
		Height(PieceHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Border(maskBorder(t, x, y)).
		BorderForeground(t.BorderColor)

	var label string
	if it.HasImage() {
		// The photo covers the piece; no number, no background slice.
		label = strings.TrimSpace(strings.Repeat(t.SymPhoto+" ", 3)) + "\n" + truncate(photo, PieceWidth)
	} else {
		label = strconv.Itoa(i + 1)
		st = st.Background(backgroundAt(t, x, y))
	}
	if selected {
		label = t.Selected.Render(label)
		st = st.BorderForeground(t.Accent.GetForeground())
	}
	return st.Render(label)
}

// Board renders all nine pieces as a 3x3 grid.
func Board(c model.Collection, photos [model.Size]string, sel int) string {
	rows := make([]string, 0, model.Size/model.Columns)
	for r := 0; r < model.Size/model.Columns; r++ {
		cells := make([]string, 0, model.Columns)
		for col := 0; col < model.Columns; col++ {
			i := r*model.Columns + col
			cells = append(cells, Piece(i, c[i], photos[i], i == sel))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ListRow renders "name ....... € price" for slot i.
func ListRow(i int, it model.Item, selected bool) string {
	t := current
	price := model.GridPrice(it)
	name := truncate(model.ListName(i, it), ListWidth-lipgloss.Width(price)-3)
	dots := ListWidth - lipgloss.Width(name) - lipgloss.Width(price) - 2
	if dots < 1 {
		dots = 1
	}

	prefix := "  "
	if selected {
		prefix = t.Selected.Render(t.SymSelected) + " "
		name = t.Selected.Render(name)
	}
	return prefix + name + " " + t.Muted.Render(strings.Repeat(".", dots)) + " " + t.Price.Render(price)
}

// List renders the list rows, one per slot.
func List(c model.Collection, sel int) string {
	rows := make([]string, 0, model.Size)
	for i, it := range c {
		rows = append(rows, ListRow(i, it, i == sel))
	}
	return strings.Join(rows, "\n")
}

// maskBorder picks each edge from the piece's offsets: edges on the board's
// outside are solid frame, inner edges are cut lines.
func maskBorder(t Theme, x, y int) lipgloss.Border {
	b := t.Cut
	if y == 0 {
		b.Top = t.Frame.Top
	}
	if y == 100 {
		b.Bottom = t.Frame.Bottom
	}
	if x == 0 {
		b.Left = t.Frame.Left
	}
	if x == 100 {
		b.Right = t.Frame.Right
	}
	b.TopLeft, b.TopRight = t.Frame.TopLeft, t.Frame.TopRight
	b.BottomLeft, b.BottomRight = t.Frame.BottomLeft, t.Frame.BottomRight
	return b
}

// backgroundAt samples the shared board picture at the piece's offsets.
func backgroundAt(t Theme, x, y int) lipgloss.TerminalColor {
	return t.Ramp[(x+y)/50]
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > max {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
