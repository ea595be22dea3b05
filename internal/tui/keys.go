package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Focus                 key.Binding
	Open                  key.Binding
	Name, Price, Photo    key.Binding
	Confirm, Back         key.Binding
	Clear                 key.Binding
	Quit, ForceQuit       key.Binding
}

func defaultKeyMap() keyMap {
	k := keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "board/list")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Name:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "name")),
		Price:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "price")),
		Photo:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "photo")),
		Confirm: key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "confirm")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Clear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear all")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	// ForceQuit works in every mode, prompts and picker included.
	k.ForceQuit = key.NewBinding(key.WithKeys("ctrl+c"))
	return k
}

func (k keyMap) gridHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Focus, k.Open, k.Clear, k.Quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Name, k.Price, k.Photo, k.Confirm, k.Clear, k.Quit}
}
