package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/degrees/internal/convert"
)

// inputMask holds the characters the field accepts while typing. It is a
// UI nicety only; convert.ParseInput decides validity at submit time.
const inputMask = "0123456789.-"

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.historyList.SetSize(m.historyPaneWidth(), m.settings.HistoryRows)
		return m, nil
	case tea.KeyMsg:
		if m.confirmClear {
			return m.updateConfirmClear(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		return m.submit()

	case "tab", "shift+tab":
		// Swapping direction discards any pending result or error but
		// leaves the input text and history alone.
		m.direction = m.direction.Toggle()
		m.state = stateIdle
		m.status = ""
		m.statusErr = false
		return m, nil

	case "esc":
		m.state = stateIdle
		m.status = ""
		m.statusErr = false
		return m, nil

	case "ctrl+x":
		if m.store.IsEmpty() {
			m.status = "History is already empty."
			m.statusErr = false
			return m, nil
		}
		m.confirmClear = true
		return m, nil

	case "up", "down":
		var cmd tea.Cmd
		m.historyList, cmd = m.historyList.Update(msg)
		return m, cmd
	}

	return m.updateInput(msg)
}

// updateInput feeds masked keystrokes to the text field. Editing while a
// result or error is showing drops back to idle.
func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if !strings.ContainsRune(inputMask, r) {
				return m, nil
			}
		}
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.state = stateIdle
		m.status = ""
		m.statusErr = false
	}
	return m, cmd
}

func (m model) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.store.Clear()
		m.syncHistoryList()
		m.confirmClear = false
		m.status = "History cleared."
		m.statusErr = false
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	default:
		m.confirmClear = false
		m.status = ""
		return m, nil
	}
}

// submit runs the conversion core against the current input and records
// the outcome in history on success.
func (m model) submit() (tea.Model, tea.Cmd) {
	value, err := convert.Convert(m.input.Value(), m.direction)
	if err != nil {
		m.state = stateError
		switch {
		case errors.Is(err, convert.ErrEmptyInput):
			m.errText = "Enter a temperature first."
		case errors.Is(err, convert.ErrNotANumber):
			m.errText = "That doesn't look like a number."
		default:
			m.errText = err.Error()
		}
		m.setError(m.errText)
		return m, nil
	}

	input, _ := convert.ParseInput(m.input.Value())
	m.store.Record(m.direction, input, value, m.now())
	m.syncHistoryList()
	m.state = stateSuccess
	m.result = value
	m.status = fmt.Sprintf("Converted %s.", m.direction.Label())
	m.statusErr = false
	return m, nil
}
