package dropdown

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/domain"
)

// Item is a dropdown candidate
type Item struct {
	ID    string
	Label string
}

// Action reports what a key did to the dropdown
type Action int

const (
	ActionNone Action = iota
	ActionOpened
	ActionClosed
	ActionMoved
	ActionFiltered
	ActionConfirmed
)

// Result is returned by HandleKey and Confirm
type Result struct {
	Action Action
	Item   Item
}

// Model is a single-selection dropdown: a combobox when the trigger is a text
// input, a select when it is a button. It keeps one confirmed item until the
// host clears it.
type Model struct {
	kind     domain.TriggerKind
	input    textinput.Model
	items    []Item
	filtered []Item
	exclude  func(Item) bool
	open     bool
	cursor   int
	selected *Item
}

// New creates a closed dropdown over items
func New(kind domain.TriggerKind, items []Item) *Model {
	ti := textinput.New()
	ti.Placeholder = "add item..."
	ti.Prompt = ""
	ti.CharLimit = 64

	m := &Model{kind: kind, input: ti}
	m.SetItems(items)
	return m
}

// Kind returns the trigger kind
func (m *Model) Kind() domain.TriggerKind {
	return m.kind
}

// SetItems replaces the candidate list
func (m *Model) SetItems(items []Item) {
	m.items = append([]Item(nil), items...)
	m.refilter()
}

// SetExclude hides candidates for which fn returns true, typically the ones
// already selected.
func (m *Model) SetExclude(fn func(Item) bool) {
	m.exclude = fn
	m.refilter()
}

// Refresh re-applies the filter after the exclusion set changed
func (m *Model) Refresh() {
	m.refilter()
}

func (m *Model) IsOpen() bool { return m.open }

func (m *Model) Open() {
	m.open = true
	m.clampCursor()
}

func (m *Model) Close() {
	m.open = false
	m.cursor = 0
}

func (m *Model) Toggle() {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
}

// Query returns the text typed into an input trigger
func (m *Model) Query() string {
	return m.input.Value()
}

// Items returns the visible candidates in ranked order
func (m *Model) Items() []Item {
	return append([]Item(nil), m.filtered...)
}

func (m *Model) Cursor() int { return m.cursor }

// Highlighted returns the candidate under the cursor
func (m *Model) Highlighted() (Item, bool) {
	if len(m.filtered) == 0 {
		return Item{}, false
	}
	return m.filtered[m.cursor], true
}

// Selected returns the confirmed item not yet cleared by the host
func (m *Model) Selected() (Item, bool) {
	if m.selected == nil {
		return Item{}, false
	}
	return *m.selected, true
}

// CaretAtStart reports whether nothing precedes the caret. Button triggers
// have no caret and always report true.
func (m *Model) CaretAtStart() bool {
	if m.kind == domain.TriggerButton {
		return true
	}
	return m.input.Position() == 0
}

// Focus gives the text input keyboard focus
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.input.Blur()
}

func (m *Model) Focused() bool {
	return m.input.Focused()
}

// InputView renders the text input
func (m *Model) InputView() string {
	return m.input.View()
}

// HandleKey applies a key the multiple-selection engine did not consume
func (m *Model) HandleKey(msg tea.KeyMsg) (Result, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.open {
			m.Close()
			return Result{Action: ActionClosed}, nil
		}
		return Result{}, nil

	case "up":
		if m.open && m.cursor > 0 {
			m.cursor--
			return Result{Action: ActionMoved}, nil
		}
		return Result{}, nil

	case "down":
		if !m.open {
			m.Open()
			return Result{Action: ActionOpened}, nil
		}
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			return Result{Action: ActionMoved}, nil
		}
		return Result{}, nil

	case "enter":
		if !m.open {
			m.Open()
			return Result{Action: ActionOpened}, nil
		}
		return m.Confirm(), nil

	case " ":
		if m.kind == domain.TriggerButton {
			m.Toggle()
			if m.open {
				return Result{Action: ActionOpened}, nil
			}
			return Result{Action: ActionClosed}, nil
		}
	}

	if m.kind == domain.TriggerButton {
		return Result{}, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return Result{}, cmd
	}
	m.open = true
	m.cursor = 0
	m.refilter()
	return Result{Action: ActionFiltered}, cmd
}

// Confirm selects the highlighted candidate. The host adds it to its
// selection and then calls ClearSelection.
func (m *Model) Confirm() Result {
	item, ok := m.Highlighted()
	if !ok {
		return Result{}
	}
	m.selected = &item
	return Result{Action: ActionConfirmed, Item: item}
}

// ClearSelection returns the dropdown to its unselected, closed baseline
func (m *Model) ClearSelection() {
	m.selected = nil
	m.input.Reset()
	m.Close()
	m.refilter()
}

type ranked struct {
	item     Item
	contains bool
	distance int
	index    int
}

// refilter drops excluded candidates and, when there is a query, ranks the
// rest: substring matches first, then by edit distance.
func (m *Model) refilter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	maxDistance := max(1, len(query)/3)

	matches := make([]ranked, 0, len(m.items))
	for i, item := range m.items {
		if m.exclude != nil && m.exclude(item) {
			continue
		}
		if query == "" {
			matches = append(matches, ranked{item: item, index: i})
			continue
		}
		label := strings.ToLower(item.Label)
		r := ranked{
			item:     item,
			contains: strings.Contains(label, query),
			distance: levenshtein.ComputeDistance(query, label),
			index:    i,
		}
		if r.contains || r.distance <= maxDistance {
			matches = append(matches, r)
		}
	}

	if query != "" {
		sort.SliceStable(matches, func(i, j int) bool {
			if matches[i].contains != matches[j].contains {
				return matches[i].contains
			}
			if matches[i].distance != matches[j].distance {
				return matches[i].distance < matches[j].distance
			}
			return matches[i].index < matches[j].index
		})
	}

	m.filtered = m.filtered[:0]
	for _, r := range matches {
		m.filtered = append(m.filtered, r.item)
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
