package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/viz"
)

type mode int

const (
	modeBrowse mode = iota
	modePrompt
)

// pending names the operation a prompt will complete.
type pending int

const (
	pendingAdd pending = iota
	pendingInsert
	pendingSet
	pendingRemove
	pendingFind
)

var prompts = map[pending]string{
	pendingAdd:    "add",
	pendingInsert: "insert before cursor",
	pendingSet:    "replace at cursor",
	pendingRemove: "remove first",
	pendingFind:   "find",
}

type model struct {
	list   *dynarray.List[string]
	cursor int
	mode   mode
	op     pending
	input  string
	status string
	err    error
	width  int
}

func newModel(list *dynarray.List[string]) model {
	return model{list: list, width: 80}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modePrompt {
			return m.promptKey(msg)
		}
		return m.browseKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m model) browseKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.err = nil
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < m.list.Count()-1 {
			m.cursor++
		}
	case "a":
		m.prompt(pendingAdd)
	case "i":
		m.prompt(pendingInsert)
	case "e":
		m.prompt(pendingSet)
	case "d":
		m.prompt(pendingRemove)
	case "/":
		m.prompt(pendingFind)
	case "x":
		if err := m.list.RemoveAt(m.cursor); err != nil {
			m.err = err
		} else {
			m.status = fmt.Sprintf("removed slot %d", m.cursor)
		}
	case "r":
		m.list.Reverse()
		m.status = "reversed"
	case "c":
		m.list.Clear()
		m.status = "cleared"
	}
	m.clampCursor()
	return m, nil
}

func (m model) promptKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = modeBrowse
		m.submit()
		m.input = ""
		m.clampCursor()
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input = ""
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m *model) prompt(op pending) {
	m.mode = modePrompt
	m.op = op
	m.input = ""
}

func (m *model) submit() {
	v := m.input
	switch m.op {
	case pendingAdd:
		m.list.Add(v)
		m.cursor = m.list.Count() - 1
		m.status = fmt.Sprintf("added %q", v)
	case pendingInsert:
		m.err = m.list.Insert(m.cursor, v)
		if m.err == nil {
			m.status = fmt.Sprintf("inserted %q at %d", v, m.cursor)
		}
	case pendingSet:
		m.err = m.list.Set(m.cursor, v)
		if m.err == nil {
			m.status = fmt.Sprintf("slot %d = %q", m.cursor, v)
		}
	case pendingRemove:
		m.status = fmt.Sprintf("remove %q: %t", v, m.list.Remove(v))
	case pendingFind:
		if i := m.list.IndexOf(v); i >= 0 {
			m.cursor = i
			m.status = fmt.Sprintf("%q at %d", v, i)
		} else {
			m.status = fmt.Sprintf("%q not found", v)
		}
	}
}

func (m *model) clampCursor() {
	if m.cursor >= m.list.Count() {
		m.cursor = m.list.Count() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(viz.Title.Render("DYNARRAY PLAYGROUND") + "\n\n")

	perRow := max(m.width/16, 1)
	s.WriteString(viz.Slots(m.list.Slice(), m.list.Capacity(), m.cursor, perRow) + "\n")
	s.WriteString(viz.Summary(m.list.Count(), m.list.Capacity()) + "\n\n")

	switch {
	case m.mode == modePrompt:
		s.WriteString(fmt.Sprintf("%s: %s█\n", prompts[m.op], m.input))
	case m.err != nil:
		s.WriteString(viz.ErrorText.Render(m.err.Error()) + "\n")
	case m.status != "":
		s.WriteString(m.status + "\n")
	default:
		s.WriteString("\n")
	}

	s.WriteString("\n" + viz.KeyHint.Render("a add · i insert · e edit · x delete · d remove value · / find · r reverse · c clear · ←/→ move · q quit"))
	return s.String()
}

// Run starts the playground on list, which is edited in place.
func Run(list *dynarray.List[string]) error {
	_, err := tea.NewProgram(newModel(list), tea.WithAltScreen()).Run()
	return err
}
