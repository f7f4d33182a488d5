package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const paneWidth = 38

func (m DashboardModel) paneFrame(title string, focused bool, body string) string {
	t := CurrentTheme
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(paneWidth)
	head := t.Dim.Render(title)
	if focused {
		border = border.BorderForeground(lipgloss.Color("205"))
		head = t.Focused.Render(title)
	}
	return border.Render(head + "\n" + body)
}

func (m DashboardModel) View() string {
	if m.width == 0 {
		return "Starting dashboard..."
	}
	t := CurrentTheme

	header := t.Header.Render("Dayboard · "+m.store.SelectedDate) + "  " +
		t.Dim.Render(FormatCombined(m.snap.CombinedPct, m.snap.PhysPct, m.snap.ProfPct))

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.paneFrame(m.grid.Title(), m.view.focusedPane == PaneCalendar, m.renderCalendar()),
		m.paneFrame("Reminders", m.view.focusedPane == PaneReminders, m.renderReminders()),
	)
	mid := lipgloss.JoinVertical(lipgloss.Left,
		m.paneFrame("Daily Tasks", m.view.focusedPane == PaneTasks, m.renderTasks()),
		m.paneFrame("Physical", m.view.focusedPane == PanePhysical, m.renderPhysical()),
	)
	right := m.paneFrame("Profession Notebook", m.view.focusedPane == PaneNotebook, m.renderNotebook())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, mid, right)

	sections := []string{header, body}
	if m.inputs.active() {
		sections = append(sections, t.Input.Render(m.inputs.field.View()))
	}
	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, t.Dim.Render(m.helpLine()))

	return t.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DashboardModel) renderCalendar() string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Dim.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	today := 0
	if now := time.Now(); now.Year() == m.grid.Year && now.Month() == m.grid.Month {
		today = now.Day()
	}
	for _, week := range m.grid.Weeks {
		cells := make([]string, 0, 7)
		for _, day := range week {
			if day == 0 {
				cells = append(cells, "  ")
				continue
			}
			cell := fmt.Sprintf("%2d", day)
			switch {
			case day == m.view.calDay:
				cell = t.Focused.Reverse(true).Render(cell)
			case day == today:
				cell = t.Today.Render(cell)
			default:
				cell = t.Item.Render(cell)
			}
			cells = append(cells, cell)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) renderTasks() string {
	t := CurrentTheme
	var b strings.Builder

	switch {
	case m.store.TasksLoading:
		b.WriteString(m.spin.View() + " Loading tasks...")
	case m.store.TasksError:
		b.WriteString(t.Error.Render("Unable to load tasks. Check your connection."))
	case len(m.store.Tasks) == 0:
		b.WriteString(t.Dim.Render("No tasks scheduled for " + m.store.SelectedDate + "."))
	default:
		for i, task := range m.store.Tasks {
			style := t.Item
			if task.Done {
				style = t.DoneItem
			}
			line := checkbox(task.Done) + " " + truncateLabel(task.Title, paneWidth-8)
			b.WriteString(m.cursorMark(m.view.focusedPane == PaneTasks && i == m.view.taskCursor))
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(t.Badge.Render(FormatTaskKPI(m.snap.TasksDone, m.snap.TasksTotal, m.snap.TasksPct)))
	return b.String()
}

func (m DashboardModel) renderNotebook() string {
	t := CurrentTheme
	var b strings.Builder

	todoTab := FormatBadge("To-Do", m.snap.TodoCount)
	doneTab := FormatBadge("Done", m.snap.DoneCount)
	if m.view.activeTab == TabTodo {
		todoTab = t.Focused.Render(todoTab)
		doneTab = t.Dim.Render(doneTab)
	} else {
		todoTab = t.Dim.Render(todoTab)
		doneTab = t.Focused.Render(doneTab)
	}
	b.WriteString(todoTab + "  " + doneTab + "\n\n")

	list := m.store.ProfTodo
	if m.view.activeTab == TabDone {
		list = m.store.ProfDone
	}
	if len(list) == 0 {
		b.WriteString(t.Dim.Render("Nothing here yet.") + "\n")
	}
	for i, task := range list {
		style := t.Item
		if task.Done {
			style = t.DoneItem
		}
		if m.view.leaving[task.ID] {
			style = t.Dim
		}
		line := checkbox(task.Done) + " " + truncateLabel(task.Title, paneWidth-8)
		b.WriteString(m.cursorMark(m.view.focusedPane == PaneNotebook && i == m.view.profCursor))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.ring.ViewAs(m.snap.RingFrac))
	b.WriteString(fmt.Sprintf(" %d%%\n", m.snap.RingPct))

	if m.store.Notes != "" {
		b.WriteString("\n" + t.Dim.Render("Notes: "+truncateLabel(m.store.Notes, paneWidth-12)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) renderPhysical() string {
	t := CurrentTheme
	var b strings.Builder

	b.WriteString(m.waterBar.ViewAs(m.snap.WaterFrac))
	b.WriteString("\n")
	b.WriteString(t.Item.Render(FormatWater(m.store.Physical.Water, m.store.Physical.WaterTarget)))
	b.WriteString("\n\n")

	if len(m.store.Physical.Checklist) == 0 {
		b.WriteString(t.Dim.Render("No checklist items.") + "\n")
	}
	for i, item := range m.store.Physical.Checklist {
		style := t.Item
		if item.Checked {
			style = t.DoneItem
		}
		line := checkbox(item.Checked) + " " + truncateLabel(item.Label, paneWidth-8)
		b.WriteString(m.cursorMark(m.view.focusedPane == PanePhysical && i == m.view.nutriCursor))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if m.store.Physical.FoodLog != "" {
		b.WriteString("\n" + t.Dim.Render("Food: "+truncateLabel(m.store.Physical.FoodLog, paneWidth-11)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) renderReminders() string {
	t := CurrentTheme
	if len(m.store.Reminders) == 0 {
		return t.Dim.Render("No reminders for this day.")
	}
	var b strings.Builder
	for i, r := range m.store.Reminders {
		style := t.Item
		if r.Done {
			style = t.DoneItem
		}
		line := checkbox(r.Done) + " " + truncateLabel(r.Title, paneWidth-8)
		b.WriteString(m.cursorMark(m.view.focusedPane == PaneReminders && i == m.view.remCursor))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) renderToasts() string {
	t := CurrentTheme
	toasts := m.toasts.Visible()
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		style := t.Dim
		switch toast.Kind {
		case ToastSuccess:
			style = t.Success
		case ToastError:
			style = t.Error
		}
		lines = append(lines, style.Render("• "+toast.Text))
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) helpLine() string {
	bindings := m.keys.BindingsForPane(m.view.focusedPane)
	parts := make([]string, 0, len(bindings)+1)
	seen := make(map[string]bool)
	for _, b := range bindings {
		if seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, b.Key+" "+b.Description)
	}
	parts = append(parts, "q quit")
	return strings.Join(parts, " · ")
}

func (m DashboardModel) cursorMark(on bool) string {
	if on {
		return CurrentTheme.Focused.Render("› ")
	}
	return "  "
}
