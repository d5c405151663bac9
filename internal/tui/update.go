package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Focus positions beyond the text inputs: the year and zone selectors.
const (
	focusYear = iota
	focusZone
	selectorCount
)

func (m Model) selectorFocus() int {
	return m.focus - len(m.inputs)
}

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down", "enter":
		m.setFocus(m.focus + 1)
		return m, nil

	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil

	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch m.selectorFocus() {
		case focusYear:
			m.yearIndex = cycle(m.yearIndex+delta, len(yearChoices))
			m.recalculate()
			return m, nil
		case focusZone:
			m.zoneIndex = cycle(m.zoneIndex+delta, len(zoneChoices))
			m.recalculate()
			return m, nil
		}
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards the message to the focused text input and
// recalculates the result with the new field value.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recalculate()
	return m, cmd
}

func (m *Model) setFocus(focus int) {
	total := len(m.inputs) + selectorCount
	m.focus = cycle(focus, total)
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func cycle(i, n int) int {
	return ((i % n) + n) % n
}
