// Package ui implements the interactive terminal view over the rollout
// diagrams. The interface has three modes: a diagram picker, a node
// browser, and an edit form driven by a core.SessionManager so that
// unsaved drafts never touch the store.
package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avetori/flownote/pkg/core"
	"github.com/avetori/flownote/pkg/diagram"
)

type mode int

const (
	modePick mode = iota
	modeBrowse
	modeEdit
)

// row is one selectable line in the browser: a diagram node or one of
// its sub-nodes.
type row struct {
	key       string
	label     string
	shape     diagram.Shape
	isSub     bool
	parentKey string
	subID     string
	allowSub  bool
}

// Model is the bubbletea model for the diagram browser.
type Model struct {
	svc      *core.Service
	sessions *core.SessionManager

	mode     mode
	diagrams []diagram.Diagram
	pickIdx  int
	current  diagram.Diagram
	rows     []row
	cursor   int

	labelInput    textinput.Model
	deadlineInput textinput.Model
	notesInput    textarea.Model
	focusIdx      int

	status string
	width  int
	height int
}

// New builds the initial model bound to a store service.
func New(svc *core.Service) Model {
	label := textinput.New()
	label.Placeholder = "Label"
	label.CharLimit = 80

	deadline := textinput.New()
	deadline.Placeholder = "YYYY-MM-DD"
	deadline.CharLimit = 10

	notes := textarea.New()
	notes.Placeholder = "Notes (markdown)"
	notes.SetHeight(5)

	return Model{
		svc:           svc,
		sessions:      core.NewSessionManager(svc),
		mode:          modePick,
		diagrams:      diagram.Diagrams(),
		labelInput:    label,
		deadlineInput: deadline,
		notesInput:    notes,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.notesInput.SetWidth(min(msg.Width-4, 72))
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modePick:
			return m.updatePick(msg)
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeEdit:
			return m.updateEdit(msg)
		}
	}
	return m, nil
}

func (m Model) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.pickIdx > 0 {
			m.pickIdx--
		}
	case "down", "j":
		if m.pickIdx < len(m.diagrams)-1 {
			m.pickIdx++
		}
	case "enter":
		m.current = m.diagrams[m.pickIdx]
		m.rows = m.buildRows()
		m.cursor = 0
		m.mode = modeBrowse
		m.status = ""
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.mode = modePick
		m.status = ""
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "e", "enter":
		if len(m.rows) == 0 {
			return m, nil
		}
		return m.openEditor(m.rows[m.cursor]), nil
	case "a":
		r := m.currentRow()
		parentKey := r.key
		if r.isSub {
			parentKey = r.parentKey
		}
		if !m.parentAllowsSubNodes(parentKey) {
			m.status = "this node does not accept sub-nodes"
			return m, nil
		}
		m.sessions.OpenNewSubNode(parentKey)
		return m.focusSession(), nil
	case "d":
		r := m.currentRow()
		if r.key == "" {
			return m, nil
		}
		if r.isSub {
			m.svc.DeleteSubNode(context.Background(), r.parentKey, r.subID)
			m.status = "sub-node deleted"
		} else {
			if err := m.svc.Remove(context.Background(), r.key); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.status = "annotation removed"
		}
		m.rows = m.buildRows()
		if m.cursor >= len(m.rows) && m.cursor > 0 {
			m.cursor--
		}
	case "H", "J", "K", "L":
		m.nudgeSubNode(msg.String())
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.sessions.Current()
	if session == nil {
		m.mode = modeBrowse
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.sessions.Cancel()
		m.mode = modeBrowse
		m.status = "edit cancelled"
		return m, nil
	case "tab", "shift+tab":
		m.cycleFocus(msg.String() == "shift+tab")
		return m, nil
	case "ctrl+s", "enter":
		// The notes textarea needs enter for newlines; commit from it
		// with ctrl+s only.
		if msg.String() == "enter" && m.notesInput.Focused() {
			break
		}
		session.Label = m.labelInput.Value()
		session.Deadline = m.deadlineInput.Value()
		session.Notes = m.notesInput.Value()
		if session.Deadline != "" {
			if _, ok := core.ParseDeadline(session.Deadline); !ok {
				m.status = "invalid deadline, want YYYY-MM-DD"
				return m, nil
			}
		}
		if err := m.sessions.Commit(context.Background()); err != nil {
			if errors.Is(err, core.ErrEmptyLabel) {
				m.status = "label must not be empty"
				return m, nil
			}
			m.status = err.Error()
			return m, nil
		}
		m.mode = modeBrowse
		m.status = "saved"
		m.rows = m.buildRows()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focusIdx {
	case 0:
		if m.editHasLabel() {
			m.labelInput, cmd = m.labelInput.Update(msg)
		} else {
			m.deadlineInput, cmd = m.deadlineInput.Update(msg)
		}
	case 1:
		if m.editHasLabel() {
			m.deadlineInput, cmd = m.deadlineInput.Update(msg)
		} else {
			m.notesInput, cmd = m.notesInput.Update(msg)
		}
	case 2:
		m.notesInput, cmd = m.notesInput.Update(msg)
	}
	return m, cmd
}

// openEditor starts an edit session for the row under the cursor and
// pre-fills the form inputs from its drafts.
func (m Model) openEditor(r row) Model {
	if r.isSub {
		m.sessions.OpenSubNode(r.parentKey, r.subID)
	} else {
		m.sessions.OpenNode(r.key)
	}
	return m.focusSession()
}

// focusSession loads the open session's drafts into the inputs.
func (m Model) focusSession() Model {
	session := m.sessions.Current()
	m.labelInput.SetValue(session.Label)
	m.deadlineInput.SetValue(session.Deadline)
	m.notesInput.SetValue(session.Notes)
	m.focusIdx = 0
	m.syncFocus()
	m.mode = modeEdit
	m.status = ""
	return m
}

func (m *Model) cycleFocus(backwards bool) {
	fields := 2
	if m.editHasLabel() {
		fields = 3
	}
	if backwards {
		m.focusIdx = (m.focusIdx + fields - 1) % fields
	} else {
		m.focusIdx = (m.focusIdx + 1) % fields
	}
	m.syncFocus()
}

func (m *Model) syncFocus() {
	m.labelInput.Blur()
	m.deadlineInput.Blur()
	m.notesInput.Blur()

	idx := m.focusIdx
	if !m.editHasLabel() {
		idx++ // skip the label slot
	}
	switch idx {
	case 0:
		m.labelInput.Focus()
	case 1:
		m.deadlineInput.Focus()
	case 2:
		m.notesInput.Focus()
	}
}

// editHasLabel reports whether the open session edits a sub-node, which
// carries a label in addition to the annotation fields.
func (m Model) editHasLabel() bool {
	session := m.sessions.Current()
	return session != nil && session.Kind != core.SessionNode
}

func (m Model) currentRow() row {
	if len(m.rows) == 0 {
		return row{}
	}
	return m.rows[m.cursor]
}

func (m Model) parentAllowsSubNodes(parentKey string) bool {
	_, n, ok := diagram.SplitKey(parentKey)
	return ok && n.AllowSubNodes
}

// nudgeSubNode moves the selected sub-node by a fixed step. The first
// nudge pins an auto-placed sub-node to its resolved position.
func (m *Model) nudgeSubNode(key string) {
	r := m.currentRow()
	if !r.isSub {
		return
	}
	var sub core.SubNode
	found := false
	for _, s := range m.svc.SubNodes(r.parentKey) {
		if s.ID == r.subID {
			sub, found = s, true
			break
		}
	}
	if !found {
		return
	}
	if !sub.Placed {
		m.resolveRowPlacement(r.parentKey)
		for _, s := range m.svc.SubNodes(r.parentKey) {
			if s.ID == r.subID {
				sub = s
				break
			}
		}
	}

	const step = 10.0
	x, y := sub.X, sub.Y
	switch key {
	case "H":
		x -= step
	case "L":
		x += step
	case "K":
		y -= step
	case "J":
		y += step
	}
	m.svc.RepositionSubNode(context.Background(), r.parentKey, r.subID, x, y)
	m.status = fmt.Sprintf("moved to (%.0f, %.0f)", max(x, 0), max(y, 0))
}

func (m *Model) resolveRowPlacement(parentKey string) {
	_, n, ok := diagram.SplitKey(parentKey)
	if !ok {
		return
	}
	anchorX := n.Pos.X + n.Size.W + 60
	m.svc.ResolvePlacement(context.Background(), parentKey, anchorX, n.Pos.Y, diagram.SubNodeSpacing)
}

// buildRows flattens the current diagram into browser rows, with each
// node followed by its sub-nodes in creation order.
func (m Model) buildRows() []row {
	var rows []row
	for _, n := range m.current.Nodes {
		key := m.current.NodeKey(n.ID)
		rows = append(rows, row{
			key:      key,
			label:    n.Label,
			shape:    n.Shape,
			allowSub: n.AllowSubNodes,
		})
		for _, sub := range m.svc.SubNodes(key) {
			rows = append(rows, row{
				key:       core.SubKey(key, sub.ID),
				label:     sub.Label,
				isSub:     true,
				parentKey: key,
				subID:     sub.ID,
			})
		}
	}
	return rows
}
