package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/gorev/pkg/editor"
	"tableflip.dev/gorev/pkg/msg"
	"tableflip.dev/gorev/pkg/task"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Italic(true)
	busyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("gorev"))
	b.WriteString("  ")
	b.WriteString(m.statsLine())
	b.WriteString("\n\n")

	if len(m.snap.Tasks) == 0 {
		b.WriteString(faintStyle.Render("  no tasks"))
		b.WriteString("\n")
	}
	for i, t := range m.snap.Tasks {
		b.WriteString(m.renderRow(i, t))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.filterLine())
	b.WriteString("\n")

	if line := m.inputLine(); line != "" {
		b.WriteString("\n" + line + "\n")
	}
	if m.mode == modeHelp {
		b.WriteString("\n" + faintStyle.Italic(true).Render(helpText) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

const helpText = "j/k move, h/l page, o add, i title, d due date, x toggle, backspace delete, / search, f filter, b due bound, c clear, r refresh, q quit"

func (m Model) renderRow(i int, t task.Task) string {
	check := "[ ]"
	if t.IsCompleted {
		check = "[x]"
	}

	title := t.Title
	if m.editingRow(i, t) {
		title = m.input.View()
	}

	due := ""
	if t.DueDate != nil {
		due = "  " + t.DueDate.String()
	}
	if m.mode == modeEditDate && m.editID == t.ID && i == m.cursor {
		due = "  " + m.input.View()
	}

	line := fmt.Sprintf("%s %s%s", check, title, due)

	switch {
	case i == m.cursor && m.mode == modeNormal:
		return selectedStyle.Render("→ " + line)
	case t.IsCompleted:
		return "  " + doneStyle.Render(line)
	case t.Overdue():
		return "  " + overdueStyle.Render(line)
	default:
		return "  " + line
	}
}

func (m Model) editingRow(i int, t task.Task) bool {
	return m.mode == modeEditTitle && m.editID == t.ID && i == m.cursor
}

func (m Model) statsLine() string {
	return faintStyle.Render(fmt.Sprintf("%d tasks · %d done · %d open · %d%%",
		m.snap.TotalTasks, m.snap.Completed, m.snap.Pending, m.snap.Progress))
}

func (m Model) filterLine() string {
	parts := []string{fmt.Sprintf("filter: %s", m.snap.Filters.Status)}
	if m.snap.Filters.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.snap.Filters.SearchTerm))
	}
	if m.snap.Filters.EndDate != nil {
		parts = append(parts, "due ≤ "+m.snap.Filters.EndDate.String())
	}
	if m.snap.TotalPages > 1 {
		parts = append(parts, fmt.Sprintf("page %d/%d", m.snap.Page, m.snap.TotalPages))
	}
	return faintStyle.Render(strings.Join(parts, "  ·  "))
}

func (m Model) inputLine() string {
	switch m.mode {
	case modeAdd:
		return "add: " + m.input.View()
	case modeSearch:
		return "search: " + m.input.View()
	case modeBound:
		return "due before: " + m.input.View()
	}
	return ""
}

func (m Model) statusLine() string {
	if m.notice != nil {
		hint := m.loc.TD(msg.RetryAfterHint, map[string]interface{}{"Seconds": m.notice.RetryAfter})
		return noticeStyle.Render(m.notice.Message + " · " + hint)
	}
	if m.flash != "" {
		return errStyle.Render(m.flash)
	}
	if busy := m.busyLine(); busy != "" {
		return busyStyle.Render(busy)
	}
	if m.editor != nil && m.editor.State() == editor.Saving {
		return busyStyle.Render("saving…")
	}
	return faintStyle.Render("? help · q quit")
}

func (m Model) busyLine() string {
	switch {
	case m.snap.Loading:
		return "loading…"
	case m.snap.Creating:
		return "creating…"
	case m.snap.Updating:
		return "saving…"
	case m.snap.Deleting:
		return "deleting…"
	}
	return ""
}
