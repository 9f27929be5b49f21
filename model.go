package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/degrees/internal/convert"
	"github.com/jask/degrees/internal/history"
)

const appName = "Degrees"

// ---------------------------------------------------------------------------
// Pending conversion state
// ---------------------------------------------------------------------------

// pendingState is the caller-side state machine around the conversion core:
// idle until a submit, then success or error until the input is edited, the
// direction changes, or the pending result is dismissed. History is never
// touched by these transitions.
type pendingState int

const (
	stateIdle pendingState = iota
	stateSuccess
	stateError
)

// ---------------------------------------------------------------------------
// History item (implements list.Item)
// ---------------------------------------------------------------------------

type historyItem struct {
	rec history.Record
}

func (h historyItem) Title() string       { return history.DisplayText(h.rec) }
func (h historyItem) Description() string { return "" }
func (h historyItem) FilterValue() string { return history.DisplayText(h.rec) }

type historyItemDelegate struct {
	now func() time.Time
}

func (d historyItemDelegate) Height() int  { return 1 }
func (d historyItemDelegate) Spacing() int { return 0 }
func (d historyItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}
func (d historyItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(historyItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = cursorStyle.Render("> ")
	}
	text := history.DisplayText(entry.rec)
	age := dimStyle.Render(history.RelativeTime(entry.rec, d.now()))
	line := fmt.Sprintf("%s%s  %s", prefix, text, age)
	fmt.Fprint(w, padRight(line, m.Width()))
}

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Convert key.Binding
	Swap    key.Binding
	Clear   key.Binding
	UpDown  key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Convert: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "convert")),
		Swap:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "swap direction")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear history")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "history")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Convert, k.Swap, k.UpDown, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Convert, k.Swap, k.UpDown, k.Clear, k.Dismiss, k.Quit}}
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	settings appSettings
	keys     keyMap
	now      func() time.Time

	input       textinput.Model
	direction   convert.Direction
	state       pendingState
	result      float64
	errText     string
	store       *history.Store
	historyList list.Model

	confirmClear bool
	status       string
	statusErr    bool

	width  int
	height int
}

func newModel(settings appSettings, now func() time.Time) model {
	input := textinput.New()
	input.Placeholder = "0.0"
	input.CharLimit = 16
	input.Width = 20
	input.Prompt = ""
	input.Focus()

	listModel := list.New([]list.Item{}, historyItemDelegate{now: now}, 0, settings.HistoryRows)
	listModel.SetShowTitle(false)
	listModel.Styles.NoItems = lipgloss.NewStyle()
	listModel.SetShowStatusBar(false)
	listModel.SetFilteringEnabled(false)
	listModel.SetShowHelp(false)
	listModel.DisableQuitKeybindings()

	return model{
		settings:    settings,
		keys:        newKeyMap(),
		now:         now,
		input:       input,
		direction:   settings.startDirection(),
		state:       stateIdle,
		store:       history.NewStore(settings.HistoryCapacity),
		historyList: listModel,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// setError sets the status as an error message (rendered in Red).
func (m *model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

// syncHistoryList rebuilds the list items from the store, keeping the
// cursor on the newest entry after a record.
func (m *model) syncHistoryList() {
	entries := m.store.Entries()
	items := make([]list.Item, len(entries))
	for i, rec := range entries {
		items[i] = historyItem{rec: rec}
	}
	m.historyList.SetItems(items)
	m.historyList.ResetSelected()
}
