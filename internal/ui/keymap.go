package ui

import "github.com/charmbracelet/bubbles/key"

// pickerKeyMap holds the picker keybindings.
type pickerKeyMap struct {
	Left          key.Binding
	Right         key.Binding
	Pick          key.Binding // 1-5 pick a mood directly
	Confirm       key.Binding
	ChooseAnother key.Binding
	History       key.Binding
	Quit          key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "pick"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		ChooseAnother: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "choose another"),
		),
		History: key.NewBinding(
			key.WithKeys("H", "tab"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// selectingKeys adapts the map to help.KeyMap for the palette view.
type selectingKeys struct {
	pickerKeyMap
	canConfirm bool
}

func (k selectingKeys) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Left, k.Right, k.Pick}
	if k.canConfirm {
		bindings = append(bindings, k.Confirm)
	}
	return append(bindings, k.History, k.Quit)
}

func (k selectingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// acknowledgedKeys adapts the map to help.KeyMap for the acknowledgement view.
type acknowledgedKeys struct {
	pickerKeyMap
}

func (k acknowledgedKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.ChooseAnother, k.History, k.Quit}
}

func (k acknowledgedKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
