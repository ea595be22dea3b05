package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/endurance/internal/model"
	"github.com/idilsaglam/endurance/internal/ui"
)

const photoPlaceholder = "+ add a photo"

func (m Model) View() string {
	var body string
	if m.ctl.View() == DetailView {
		body = m.viewDetail()
	} else {
		body = m.viewGrid()
	}

	t := ui.Current()
	switch m.mode {
	case modeEditName, modeEditPrice:
		title := promptName
		if m.mode == modeEditPrice {
			title = promptPrice
		}
		body += "\n" + m.box(title+"\n"+m.ti.View())
	case modePickPhoto:
		body += "\n" + m.box(t.Title.Render("Pick a photo")+"  "+t.Muted.Render("esc to cancel")+"\n"+m.picker.View())
	case modeAlert:
		body += "\n" + m.box(t.Error.Render(m.alert)+"\n"+t.Muted.Render("press any key"))
	}

	if m.status != "" {
		body += "\n" + t.Muted.Render(m.status)
	}
	return ui.PanelString([]string{body})
}

// viewGrid rebuilds the board and the list from the current collection.
func (m Model) viewGrid() string {
	t := ui.Current()
	items := m.ctl.Items()

	var photos [model.Size]string
	for i := range photos {
		photos[i] = m.ctl.Photo(i)
	}

	boardSel, listSel := m.cursor, ui.NoSelection
	if m.focus == focusList {
		boardSel, listSel = ui.NoSelection, m.cursor
	}
	board := ui.Board(items, photos, boardSel)
	list := ui.List(items, listSel)

	content := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", list)
	if lipgloss.Width(content) > m.width-4 && m.width > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, board, "", list)
	}

	return strings.Join([]string{
		t.Title.Render("Endurance"),
		"",
		content,
		"",
		m.help.ShortHelpView(m.keys.gridHelp()),
	}, "\n")
}

func (m Model) viewDetail() string {
	t := ui.Current()
	it := m.ctl.Item()
	i := m.ctl.Current()

	area := lipgloss.NewStyle().
		Width(ui.PieceWidth*2).
		Height(ui.PieceHeight*2).
		Align(lipgloss.Center, lipgloss.Center).
		Border(t.Frame).
		BorderForeground(t.BorderColor)

	var photoArea string
	if it.HasImage() {
		photoArea = area.Render(t.SymPhoto + "\n" + m.ctl.Photo(i))
	} else {
		photoArea = area.Render(t.Muted.Render(photoPlaceholder))
	}

	return strings.Join([]string{
		t.Muted.Render("Piece " + strconv.Itoa(i+1)),
		t.Title.Render(model.DetailTitle(it)),
		"",
		photoArea,
		"",
		t.Price.Render(model.DetailPrice(it)),
		"",
		m.help.ShortHelpView(m.keys.detailHelp()),
	}, "\n")
}

func (m Model) box(s string) string {
	t := ui.Current()
	return lipgloss.NewStyle().
		Border(t.Frame).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(s)
}
