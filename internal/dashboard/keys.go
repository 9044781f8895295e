// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dashboard

import "github.com/charmbracelet/bubbles/key"

// browseKeys holds key bindings for the widget browse mode.
type browseKeys struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Tab     key.Binding
	Refresh key.Binding
	Study   key.Binding
	Quit    key.Binding
}

// ShortHelp returns the browse mode bindings for the help bar.
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Tab, k.Refresh, k.Study, k.Quit}
}

// FullHelp returns the browse mode bindings grouped for expanded help.
func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Tab, k.Refresh, k.Study, k.Quit},
	}
}

// studyKeys holds key bindings for flash card study mode.
type studyKeys struct {
	Flip  key.Binding
	Again key.Binding
	Good  key.Binding
	End   key.Binding
}

// ShortHelp returns the study mode bindings for the help bar.
func (k studyKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Again, k.Good, k.End}
}

// FullHelp returns the study mode bindings grouped for expanded help.
func (k studyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flip, k.Again, k.Good, k.End}}
}

// BrowseKeyMap returns the key bindings for browse mode.
func BrowseKeyMap() browseKeys {
	return browseKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open widget"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Study: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "study cards"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StudyKeyMap returns the key bindings for study mode.
func StudyKeyMap() studyKeys {
	return studyKeys{
		Flip: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space", "flip"),
		),
		Again: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "again"),
		),
		Good: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "good"),
		),
		End: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end session"),
		),
	}
}
