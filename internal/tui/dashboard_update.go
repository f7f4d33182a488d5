package tui

import (
	"strings"

	"dayboard/internal/util"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.store.TasksLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case clockTickMsg:
		return m.handleClockTick()

	case toastExpiredMsg:
		m.toasts.Expire(msg.id)
		return m, nil

	case tasksLoadedMsg:
		m.store.FinishTaskLoad(msg.date, msg.tasks, msg.err)
		util.LogError("load tasks", msg.err)
		m.view.taskCursor = clampCursor(m.view.taskCursor, len(m.store.Tasks))
		m.snap = m.store.Refresh()
		return m, nil

	case taskAddedMsg:
		if msg.err != nil {
			util.LogError("add task", msg.err)
			return m, m.pushToast(ToastError, "Could not add task.")
		}
		// The add is only rendered once the server acknowledged it.
		if msg.date == m.store.SelectedDate {
			m.store.AppendTask(msg.title)
			m.snap = m.store.Refresh()
		}
		return m, nil

	case syncDoneMsg:
		if msg.err != nil {
			util.LogError("sync "+msg.what, msg.err)
			var cmd tea.Cmd
			if m.store.Fail(msg.pending) {
				cmd = m.pushToast(ToastError, "Could not sync "+msg.what+": change reverted.")
			}
			m.snap = m.store.Refresh()
			return m, cmd
		}
		m.store.Confirm(msg.pending)
		return m, nil

	case profLoadedMsg:
		if msg.err != nil {
			util.LogError("load notebook", msg.err)
			return m, m.pushToast(ToastError, "Unable to load the notebook.")
		}
		m.store.SetProfessionTasks(msg.tasks)
		m.view.profCursor = 0
		m.snap = m.store.Refresh()
		return m, nil

	case profAddedMsg:
		if msg.err != nil {
			util.LogError("add notebook task", msg.err)
			return m, m.pushToast(ToastError, "Could not add notebook task.")
		}
		m.store.InsertProfessionTask(msg.id, msg.title)
		// Bring the new item into view if the done tab was showing.
		m.view.activeTab = TabTodo
		m.view.profCursor = 0
		m.snap = m.store.Refresh()
		return m, nil

	case profToggleSyncedMsg:
		if msg.err != nil {
			util.LogError("toggle notebook task", msg.err)
			var cmd tea.Cmd
			if m.store.Fail(msg.pending) {
				cmd = m.pushToast(ToastError, "Could not sync notebook: change reverted.")
			}
			m.snap = m.store.Refresh()
			return m, cmd
		}
		// The server aggregate is authoritative for the ring.
		m.store.ConfirmProfessionToggle(msg.pending, msg.stats)
		m.snap = m.store.Refresh()
		return m, nil

	case profDeletedMsg:
		if msg.err != nil {
			util.LogError("delete notebook task", msg.err)
			return m, m.pushToast(ToastError, "Could not delete notebook task.")
		}
		// Confirmed: let the row linger briefly before it disappears.
		m.view.leaving[msg.id] = true
		return m, deleteFlushCmd(msg.id)

	case profDeleteFlushMsg:
		delete(m.view.leaving, msg.id)
		m.store.RemoveProfessionTask(msg.id)
		m.view.profCursor = clampCursor(m.view.profCursor, m.activeTabLen())
		m.snap = m.store.Refresh() // badges recomputed after removal
		return m, nil

	case physicalLoadedMsg:
		if msg.err != nil {
			util.LogError("load physical", msg.err)
			return m, m.pushToast(ToastError, "Unable to load physical tracking.")
		}
		m.store.SetPhysical(msg.day)
		m.view.nutriCursor = 0
		m.snap = m.store.Refresh()
		return m, nil

	case remindersLoadedMsg:
		if msg.err != nil {
			util.LogError("load reminders", msg.err)
			return m, nil
		}
		if msg.date == m.store.SelectedDate {
			m.store.SetReminders(msg.reminders)
			m.view.remCursor = 0
		}
		return m, nil

	case reminderAddedMsg:
		if msg.err != nil {
			util.LogError("add reminder", msg.err)
			return m, m.pushToast(ToastError, "Could not add reminder.")
		}
		if msg.date == m.store.SelectedDate {
			m.store.InsertReminder(msg.id, msg.title, msg.date)
			m.view.remCursor = 0
		}
		return m, nil

	case reminderDeletedMsg:
		if msg.err != nil {
			util.LogError("delete reminder", msg.err)
			return m, m.pushToast(ToastError, "Could not delete reminder.")
		}
		m.store.RemoveReminder(msg.id)
		m.view.remCursor = clampCursor(m.view.remCursor, len(m.store.Reminders))
		return m, nil

	case reportDoneMsg:
		if msg.err != nil {
			util.LogError("pdf report", msg.err)
			return m, m.pushToast(ToastError, "Could not generate the report.")
		}
		return m, m.pushToast(ToastSuccess, "Report saved: "+msg.path)

	case tea.KeyMsg:
		if m.inputs.active() {
			return m.updateInput(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
			return next, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m DashboardModel) handleClockTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{clockTickCmd()}
	today := util.Today()
	if today != m.lastDay {
		// Fire at most once per observed midnight crossing.
		m.lastDay = today
		if m.cfg.DailyNotification {
			cmds = append(cmds,
				m.pushToast(ToastSuccess, "New day started! Check your daily goals."),
				tea.Printf("\a"))
		}
	}
	return m, tea.Batch(cmds...)
}

// pushToast queues a toast and its expiry timer.
func (m DashboardModel) pushToast(kind ToastKind, text string) tea.Cmd {
	id := m.toasts.Push(kind, text)
	return toastTTLCmd(id)
}

func clampCursor(cur, n int) int {
	if n == 0 {
		return 0
	}
	return util.Clamp(cur, 0, n-1)
}

// --- Shared input handling ---

func (m DashboardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputs.close()
		return m, nil
	case "enter":
		return m.commitInput()
	}
	var cmd tea.Cmd
	m.inputs.field, cmd = m.inputs.field.Update(msg)
	return m, cmd
}

func (m DashboardModel) commitInput() (tea.Model, tea.Cmd) {
	value := m.inputs.field.Value()
	title := strings.TrimSpace(value)

	switch m.inputs.mode {
	case inputAddTask:
		if title == "" {
			return m, nil // no request, nothing rendered
		}
		m.inputs.close()
		return m, m.addTaskCmd(title, m.store.SelectedDate)

	case inputAddProf:
		if title == "" {
			return m, nil
		}
		m.inputs.close()
		return m, m.addProfCmd(title)

	case inputAddReminder:
		if title == "" {
			return m, nil
		}
		m.inputs.close()
		return m, m.addReminderCmd(title, m.store.SelectedDate)

	case inputEditProf:
		id := m.inputs.editID
		m.inputs.close()
		if title == "" {
			// The store was never touched, so the old title stands.
			return m, m.pushToast(ToastError, "Task title cannot be empty.")
		}
		p, ok := m.store.EditProfession(id, title)
		if !ok {
			return m, nil
		}
		m.snap = m.store.Refresh()
		return m, m.editProfCmd(p, id, title)

	case inputNotes:
		m.inputs.close()
		p := m.store.SetNotes(value)
		return m, m.saveNotesCmd(p, value)

	case inputFoodLog:
		m.inputs.close()
		p := m.store.SetFoodLog(value)
		return m, m.saveFoodLogCmd(p, value)
	}

	m.inputs.close()
	return m, nil
}

// --- Key handlers ---

func (m DashboardModel) activeTabLen() int {
	if m.view.activeTab == TabDone {
		return len(m.store.ProfDone)
	}
	return len(m.store.ProfTodo)
}

func (m DashboardModel) profUnderCursor() (int64, string, bool) {
	list := m.store.ProfTodo
	if m.view.activeTab == TabDone {
		list = m.store.ProfDone
	}
	i := m.view.profCursor
	if i < 0 || i >= len(list) {
		return 0, "", false
	}
	t := list[i]
	if m.view.leaving[t.ID] {
		return 0, "", false
	}
	return t.ID, t.Title, true
}

func handleCursorUp(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	switch m.view.focusedPane {
	case PaneCalendar:
		m.view.calDay = m.grid.ClampDay(m.view.calDay - 7)
	case PaneTasks:
		m.view.taskCursor = clampCursor(m.view.taskCursor-1, len(m.store.Tasks))
	case PaneNotebook:
		m.view.profCursor = clampCursor(m.view.profCursor-1, m.activeTabLen())
	case PanePhysical:
		m.view.nutriCursor = clampCursor(m.view.nutriCursor-1, len(m.store.Physical.Checklist))
	case PaneReminders:
		m.view.remCursor = clampCursor(m.view.remCursor-1, len(m.store.Reminders))
	}
	return m, nil, true
}

func handleCursorDown(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	switch m.view.focusedPane {
	case PaneCalendar:
		m.view.calDay = m.grid.ClampDay(m.view.calDay + 7)
	case PaneTasks:
		m.view.taskCursor = clampCursor(m.view.taskCursor+1, len(m.store.Tasks))
	case PaneNotebook:
		m.view.profCursor = clampCursor(m.view.profCursor+1, m.activeTabLen())
	case PanePhysical:
		m.view.nutriCursor = clampCursor(m.view.nutriCursor+1, len(m.store.Physical.Checklist))
	case PaneReminders:
		m.view.remCursor = clampCursor(m.view.remCursor+1, len(m.store.Reminders))
	}
	return m, nil, true
}

func handleCursorLeft(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	switch m.view.focusedPane {
	case PaneCalendar:
		m.view.calDay = m.grid.ClampDay(m.view.calDay - 1)
	case PaneNotebook:
		m.view.activeTab = TabTodo
		m.view.profCursor = 0
	default:
		return m, nil, false
	}
	return m, nil, true
}

func handleCursorRight(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	switch m.view.focusedPane {
	case PaneCalendar:
		m.view.calDay = m.grid.ClampDay(m.view.calDay + 1)
	case PaneNotebook:
		m.view.activeTab = TabDone
		m.view.profCursor = 0
	default:
		return m, nil, false
	}
	return m, nil, true
}

func handleCalendarSelect(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	date := m.grid.DateOf(m.view.calDay)
	m.store.SetSelectedDate(date)
	m.store.BeginTaskLoad()
	m.view.taskCursor = 0
	m.snap = m.store.Refresh()
	return m, tea.Batch(m.loadTasksCmd(date), m.loadRemindersCmd(date), m.spin.Tick), true
}

func handleToggle(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	switch m.view.focusedPane {
	case PaneTasks:
		tg, ok := m.store.ToggleTaskAt(m.view.taskCursor)
		if !ok {
			return m, nil, true
		}
		m.snap = m.store.Refresh()
		if !tg.Send {
			return m, nil, true
		}
		return m, m.toggleTaskCmd(tg.Pending, tg.ID, tg.Done), true

	case PaneNotebook:
		id, _, ok := m.profUnderCursor()
		if !ok {
			return m, nil, true
		}
		tg, ok := m.store.ToggleProfession(id)
		if !ok {
			return m, nil, true
		}
		m.view.profCursor = clampCursor(m.view.profCursor, m.activeTabLen())
		m.snap = m.store.Refresh()
		return m, m.toggleProfCmd(tg.Pending, id, tg.Done), true

	case PanePhysical:
		items := m.store.Physical.Checklist
		if m.view.nutriCursor < 0 || m.view.nutriCursor >= len(items) {
			return m, nil, true
		}
		id := items[m.view.nutriCursor].ID
		nt, ok := m.store.ToggleNutrition(id)
		if !ok {
			return m, nil, true
		}
		m.snap = m.store.Refresh()
		return m, m.toggleNutritionCmd(nt.Pending, id, nt.Checked), true

	case PaneReminders:
		if m.view.remCursor < 0 || m.view.remCursor >= len(m.store.Reminders) {
			return m, nil, true
		}
		id := m.store.Reminders[m.view.remCursor].ID
		rt, ok := m.store.ToggleReminder(id)
		if !ok {
			return m, nil, true
		}
		return m, m.toggleReminderCmd(rt.Pending, id, rt.Done), true
	}
	return m, nil, false
}

func handleAddKey(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	switch m.view.focusedPane {
	case PaneTasks:
		m.inputs.open(inputAddTask, "New task...", "")
	case PaneNotebook:
		m.inputs.open(inputAddProf, "New notebook task...", "")
	case PaneReminders:
		m.inputs.open(inputAddReminder, "New reminder...", "")
	default:
		return m, nil, false
	}
	return m, nil, true
}

func handleEditKey(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	// Completed tasks are not editable, matching the notebook's rules.
	if m.view.activeTab != TabTodo {
		return m, nil, true
	}
	id, title, ok := m.profUnderCursor()
	if !ok {
		return m, nil, true
	}
	m.inputs.open(inputEditProf, "Task title...", title)
	m.inputs.editID = id
	return m, nil, true
}

func handleDeleteKey(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	switch m.view.focusedPane {
	case PaneNotebook:
		id, _, ok := m.profUnderCursor()
		if !ok {
			return m, nil, true
		}
		// Removal waits for the server; see profDeletedMsg.
		return m, m.deleteProfCmd(id), true
	case PaneReminders:
		if m.view.remCursor < 0 || m.view.remCursor >= len(m.store.Reminders) {
			return m, nil, true
		}
		return m, m.deleteReminderCmd(m.store.Reminders[m.view.remCursor].ID), true
	}
	return m, nil, false
}

func handleTabTodo(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	m.view.activeTab = TabTodo
	m.view.profCursor = 0
	return m, nil, true
}

func handleTabDone(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	m.view.activeTab = TabDone
	m.view.profCursor = 0
	return m, nil, true
}

func handleNotesKey(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	m.inputs.open(inputNotes, "Notebook notes...", m.store.Notes)
	return m, nil, true
}

func handleFoodKey(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	m.inputs.open(inputFoodLog, "What did you eat today?", m.store.Physical.FoodLog)
	return m, nil, true
}

func handleWaterUp(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	up := m.store.AddWater(m.cfg.WaterStepLiters)
	m.snap = m.store.Refresh()
	return m, m.updateWaterCmd(up.Pending, up.Liters), true
}

func handleWaterDown(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
	up := m.store.AddWater(-m.cfg.WaterStepLiters)
	m.snap = m.store.Refresh()
	return m, m.updateWaterCmd(up.Pending, up.Liters), true
}
