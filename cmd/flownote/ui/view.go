package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avetori/flownote/pkg/core"
	"github.com/avetori/flownote/pkg/diagram"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	subRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	dueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	overdueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("35")).MarginTop(1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	formLabel     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	noteMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
)

func (m Model) View() string {
	switch m.mode {
	case modePick:
		return m.viewPick()
	case modeEdit:
		return m.viewEdit()
	default:
		return m.viewBrowse()
	}
}

func (m Model) viewPick() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("flownote: pick a diagram"))
	b.WriteString("\n")
	for i, d := range m.diagrams {
		marker := "  "
		style := rowStyle
		if i == m.pickIdx {
			marker = "> "
			style = cursorStyle
		}
		b.WriteString(marker + style.Render(d.Title) + "\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ move · enter open · q quit"))
	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.current.Title))
	b.WriteString("\n")

	for i, r := range m.rows {
		line := m.renderRow(r)
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString(helpStyle.Render("↑/↓ move · e edit · a add sub-node · d delete · H/J/K/L nudge · esc back · q quit"))
	return b.String()
}

func (m Model) renderRow(r row) string {
	var line string
	if r.isSub {
		line = subRowStyle.Render("  └─ " + r.label)
	} else {
		line = shapeGlyph(r.shape) + " " + rowStyle.Render(r.label)
		if r.allowSub {
			line += subRowStyle.Render(" +")
		}
	}

	rec := m.svc.Annotation(r.key)
	if rec.Deadline != "" {
		due := dueStyle.Render(" due " + rec.Deadline)
		if m.svc.Overdue(rec.Deadline) {
			due = overdueStyle.Render(" due " + rec.Deadline + " !")
		}
		line += due
	}
	if rec.Notes != "" {
		line += noteMarkStyle.Render(" ✎")
	}
	return line
}

func (m Model) viewEdit() string {
	session := m.sessions.Current()
	if session == nil {
		return ""
	}

	var b strings.Builder
	switch {
	case session.Kind == core.SessionNode:
		b.WriteString(headerStyle.Render("edit " + session.NodeKey))
	case session.SubID == "":
		b.WriteString(headerStyle.Render("new sub-node under " + session.ParentKey))
	default:
		b.WriteString(headerStyle.Render("edit sub-node " + session.SubID))
	}
	b.WriteString("\n")

	if m.editHasLabel() {
		b.WriteString(formLabel.Render("Label") + "\n")
		b.WriteString(m.labelInput.View() + "\n\n")
	}
	b.WriteString(formLabel.Render("Deadline") + "\n")
	b.WriteString(m.deadlineInput.View() + "\n\n")
	b.WriteString(formLabel.Render("Notes") + "\n")
	b.WriteString(m.notesInput.View() + "\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString(helpStyle.Render("tab next field · ctrl+s save · esc cancel"))
	return b.String()
}

func shapeGlyph(s diagram.Shape) string {
	switch s {
	case diagram.ShapeTerminator:
		return "◯"
	case diagram.ShapeDecision:
		return "◇"
	case diagram.ShapeSubprocess:
		return "▣"
	default:
		return "▭"
	}
}
