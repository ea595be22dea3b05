package tui

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/endurance/internal/model"
	"github.com/idilsaglam/endurance/internal/photo"
	"github.com/idilsaglam/endurance/internal/ui"
)

const (
	promptName  = "Name this another one:"
	promptPrice = "Set price (€):"
	alertPhoto  = "Image load failed"
)

type mode int

const (
	modeNormal mode = iota
	modeEditName
	modeEditPrice
	modePickPhoto
	modeAlert
)

type focus int

const (
	focusBoard focus = iota
	focusList
)

// Messages.
type (
	photoLoadedMsg struct {
		index int
		photo photo.Photo
	}
	photoFailedMsg struct {
		index int
		err   error
	}
	collectionChangedMsg struct{}
)

// Options tune the interactive program.
type Options struct {
	// Start is the deep-linked slot; StartOK false opens the grid.
	Start   int
	StartOK bool
	// PickDir is where the photo picker opens; defaults to the home dir.
	PickDir string
	Log     *zap.Logger
}

// Model is the Bubble Tea model wrapping the Controller.
type Model struct {
	ctx  context.Context
	ctl  *Controller
	st   Store
	log  *zap.Logger
	keys keyMap
	help help.Model

	mode   mode
	ti     textinput.Model // shared by the name and price prompts
	picker filepicker.Model
	pickAt int // slot the picker was opened for
	alert  string
	status string

	focus   focus
	cursor  int
	pickDir string

	width, height int
}

// New loads the collection and routes to the first screen.
func New(ctx context.Context, st Store, opt Options) Model {
	log := opt.Log
	if log == nil {
		log = zap.NewNop()
	}
	ctl := NewController(ctx, st, log)
	ctl.Route(opt.Start, opt.StartOK)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		ctx:     ctx,
		ctl:     ctl,
		st:      st,
		log:     log.Named("tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
		ti:      ti,
		pickDir: opt.PickDir,
		width:   80,
		height:  24,
	}
	m.cursor = ctl.Current()
	m.log.Debug("started", zap.Stringer("view", ctl.View()), zap.Int("current", ctl.Current()))
	return m
}

// Controller exposes the state for callers that drive the model directly.
func (m Model) Controller() *Controller { return m.ctl }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.picker.Height = pickerHeight(m.height)
		return m, nil

	case photoLoadedMsg:
		if err := m.ctl.SetPhoto(m.ctx, msg.index, msg.photo); err != nil {
			m.status = "save failed: " + err.Error()
			return m, nil
		}
		m.status = "photo saved"
		return m, nil

	case photoFailedMsg:
		m.log.Warn("photo load failed", zap.Int("index", msg.index), zap.Error(msg.err))
		m.mode = modeAlert
		m.alert = alertPhoto
		return m, nil

	case collectionChangedMsg:
		// Our own saves trigger the watcher too; only a real change reloads.
		items := m.st.Load(m.ctx)
		if items == m.ctl.Items() {
			return m, nil
		}
		m.ctl.Replace(items)
		m.status = "reloaded"
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
	}

	switch m.mode {
	case modeEditName, modeEditPrice:
		return m.updatePrompt(msg)
	case modePickPhoto:
		return m.updatePicker(msg)
	case modeAlert:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.mode = modeNormal
			m.alert = ""
		}
		return m, nil
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(km, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(km, m.keys.Clear) {
		m.clearAll()
		return m, nil
	}
	if m.ctl.View() == DetailView {
		return m.updateDetail(km)
	}
	return m.updateGrid(km)
}

func (m Model) updateGrid(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	col, row := model.Position(m.cursor)
	switch {
	case key.Matches(km, m.keys.Focus):
		if m.focus == focusBoard {
			m.focus = focusList
		} else {
			m.focus = focusBoard
		}
	case key.Matches(km, m.keys.Open):
		m.status = ""
		m.ctl.Open(m.cursor)
	case key.Matches(km, m.keys.Up):
		if m.focus == focusList {
			m.cursor = (m.cursor + model.Size - 1) % model.Size
		} else if row > 0 {
			m.cursor -= model.Columns
		}
	case key.Matches(km, m.keys.Down):
		if m.focus == focusList {
			m.cursor = (m.cursor + 1) % model.Size
		} else if row < model.Size/model.Columns-1 {
			m.cursor += model.Columns
		}
	case key.Matches(km, m.keys.Left):
		if m.focus == focusBoard && col > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Right):
		if m.focus == focusBoard && col < model.Columns-1 {
			m.cursor++
		}
	default:
		if s := km.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			m.cursor = int(s[0] - '1')
		}
	}
	return m, nil
}

func (m Model) updateDetail(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(km, m.keys.Name):
		m.openPrompt(modeEditName, m.ctl.Item().Name)
		return m, textinput.Blink
	case key.Matches(km, m.keys.Price):
		m.openPrompt(modeEditPrice, m.ctl.Item().Price)
		return m, textinput.Blink
	case key.Matches(km, m.keys.Photo):
		return m, m.openPicker()
	case key.Matches(km, m.keys.Confirm), key.Matches(km, m.keys.Back):
		m.ctl.ShowGrid()
		m.cursor = m.ctl.Current()
		m.status = ""
	}
	return m, nil
}

func (m *Model) openPrompt(md mode, seed string) {
	m.mode = md
	m.ti.SetValue(seed)
	m.ti.CursorEnd()
	m.ti.Focus()
}

func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			m.commitPrompt(m.ti.Value(), false)
			return m, nil
		case "esc":
			m.commitPrompt("", true)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) commitPrompt(value string, cancelled bool) {
	var (
		changed bool
		err     error
	)
	if m.mode == modeEditName {
		changed, err = m.ctl.CommitName(m.ctx, value, cancelled)
	} else {
		changed, err = m.ctl.CommitPrice(m.ctx, value, cancelled)
	}
	m.mode = modeNormal
	m.ti.SetValue("")
	m.ti.Blur()
	switch {
	case err != nil:
		m.status = "save failed: " + err.Error()
	case changed:
		m.status = "saved"
	default:
		m.status = ""
	}
}

func (m *Model) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = nil // the decoder decides what is an image
	fp.FileAllowed = true
	fp.DirAllowed = false
	fp.ShowHidden = false
	fp.ShowPermissions = false
	fp.ShowSize = true
	fp.AutoHeight = false
	fp.Height = pickerHeight(m.height)
	// esc closes the picker instead of walking up a directory.
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "up"))

	t := ui.Current()
	fp.Styles.Cursor = t.Accent
	fp.Styles.Selected = t.Accent.Bold(true)
	fp.Styles.Directory = t.Accent
	fp.Styles.DisabledFile = t.Muted
	fp.Styles.FileSize = t.Muted.Width(fp.Styles.FileSize.GetWidth()).Align(lipgloss.Right)

	dir := strings.TrimSpace(m.pickDir)
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = home
		} else {
			dir = "."
		}
	}
	fp.CurrentDirectory = dir

	m.picker = fp
	m.pickAt = m.ctl.Current()
	m.mode = modePickPhoto
	return fp.Init()
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		m.mode = modeNormal
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.mode = modeNormal
		m.pickDir = m.picker.CurrentDirectory
		return m, loadPhoto(m.pickAt, path)
	}
	if ok, _ := m.picker.DidSelectDisabledFile(msg); ok {
		m.mode = modeAlert
		m.alert = alertPhoto
		return m, nil
	}
	return m, cmd
}

// loadPhoto reads and decodes the picked file off the update loop.
func loadPhoto(index int, path string) tea.Cmd {
	return func() tea.Msg {
		p, err := photo.Load(path)
		if err != nil {
			return photoFailedMsg{index: index, err: err}
		}
		return photoLoadedMsg{index: index, photo: p}
	}
}

func (m *Model) clearAll() {
	if err := m.ctl.ClearAll(m.ctx); err != nil {
		m.status = "save failed: " + err.Error()
	} else {
		m.status = "cleared"
	}
	m.mode = modeNormal
	m.cursor = 0
}

func pickerHeight(h int) int {
	if h-14 < 5 {
		return 5
	}
	return h - 14
}
