package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		m.Close()
		return m, tea.Quit
	}

	if m.ShowHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	// Text inputs take every key except pane switching
	if handled, newModel, cmd := m.routeToInput(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Search):
		return m, m.focusPane(PaneSearch)

	case key.Matches(msg, Keys.NextPane):
		return m, m.focusPane((m.Focus + 1) % 3)

	case key.Matches(msg, Keys.PrevPane):
		return m, m.focusPane((m.Focus + 2) % 3)

	case key.Matches(msg, Keys.ToggleLeft):
		m.LeftBox.Toggle()
		return m, nil

	case key.Matches(msg, Keys.ToggleRight):
		m.RightBox.Toggle()
		return m, nil
	}

	// Route to the focused pane
	var cmd tea.Cmd
	switch m.Focus {
	case PaneResults:
		if m.LeftBox.IsOpen() {
			m.Results, cmd = m.Results.Update(msg)
		}
	case PaneRight:
		if !m.RightBox.IsOpen() {
			break
		}
		if m.State.SelectedID != "" {
			m.Detail, cmd = m.Detail.Update(msg)
		} else {
			m.WatchedList, cmd = m.WatchedList.Update(msg)
		}
	}
	return m, cmd
}

// routeToInput sends keys to a focused text input. Returns true if handled.
func (m Model) routeToInput(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch {
	case m.Focus == PaneSearch && m.SearchBar.Focused():
		switch {
		case key.Matches(msg, Keys.Escape, Keys.Submit):
			return true, m, m.focusPane(PaneResults)
		case key.Matches(msg, Keys.NextPane):
			return true, m, m.focusPane(PaneResults)
		case key.Matches(msg, Keys.PrevPane):
			return true, m, m.focusPane(PaneRight)
		}
		var cmd tea.Cmd
		m.SearchBar, cmd = m.SearchBar.Update(msg)
		return true, m, cmd

	case m.Focus == PaneRight && m.State.SelectedID == "" && m.WatchedList.IsFilterTyping():
		var cmd tea.Cmd
		m.WatchedList, cmd = m.WatchedList.Update(msg)
		return true, m, cmd
	}
	return false, m, nil
}
