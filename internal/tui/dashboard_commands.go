package tui

import (
	"context"
	"math"
	"time"

	"dayboard/internal/config"
	"dayboard/internal/models"
	"dayboard/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

type clockTickMsg time.Time

type toastExpiredMsg struct{ id int }

type tasksLoadedMsg struct {
	date  string
	tasks []models.Task
	err   error
}

type taskAddedMsg struct {
	title string
	date  string
	err   error
}

// syncDoneMsg is the generic confirmation result for ack-only writes.
type syncDoneMsg struct {
	pending state.Pending
	what    string
	err     error
}

type profLoadedMsg struct {
	tasks []models.ProfessionTask
	err   error
}

type profAddedMsg struct {
	id    int64
	title string
	err   error
}

type profToggleSyncedMsg struct {
	pending state.Pending
	stats   models.ProfessionStats
	err     error
}

type profDeletedMsg struct {
	id  int64
	err error
}

type profDeleteFlushMsg struct{ id int64 }

type physicalLoadedMsg struct {
	day models.PhysicalDay
	err error
}

type remindersLoadedMsg struct {
	date      string
	reminders []models.Reminder
	err       error
}

type reminderAddedMsg struct {
	id    int64
	title string
	date  string
	err   error
}

type reminderDeletedMsg struct {
	id  int64
	err error
}

type reportDoneMsg struct {
	path string
	err  error
}

// --- Commands ---

func clockTickCmd() tea.Cmd {
	return tea.Tick(config.ClockTick, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func toastTTLCmd(id int) tea.Cmd {
	return tea.Tick(config.ToastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m DashboardModel) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.cfg.RequestTimeout())
}

func (m DashboardModel) loadTasksCmd(date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		tasks, err := m.client.Tasks(ctx, date)
		return tasksLoadedMsg{date: date, tasks: tasks, err: err}
	}
}

func (m DashboardModel) addTaskCmd(title, date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		err := m.client.AddTask(ctx, title, date)
		return taskAddedMsg{title: title, date: date, err: err}
	}
}

func (m DashboardModel) toggleTaskCmd(p state.Pending, id int64, done bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		err := m.client.ToggleTask(ctx, id, done)
		return syncDoneMsg{pending: p, what: "task", err: err}
	}
}

func (m DashboardModel) loadProfessionCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		tasks, err := m.client.ProfessionTasks(ctx)
		return profLoadedMsg{tasks: tasks, err: err}
	}
}

func (m DashboardModel) addProfCmd(title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		id, err := m.client.AddProfessionTask(ctx, title)
		return profAddedMsg{id: id, title: title, err: err}
	}
}

func (m DashboardModel) toggleProfCmd(p state.Pending, id int64, done bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		stats, err := m.client.ToggleProfessionTask(ctx, id, done)
		return profToggleSyncedMsg{pending: p, stats: stats, err: err}
	}
}

func (m DashboardModel) editProfCmd(p state.Pending, id int64, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		err := m.client.EditProfessionTask(ctx, id, title)
		return syncDoneMsg{pending: p, what: "rename", err: err}
	}
}

func (m DashboardModel) deleteProfCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		err := m.client.DeleteProfessionTask(ctx, id)
		return profDeletedMsg{id: id, err: err}
	}
}

func deleteFlushCmd(id int64) tea.Cmd {
	return tea.Tick(config.DeleteExitDelay, func(time.Time) tea.Msg { return profDeleteFlushMsg{id: id} })
}

func (m DashboardModel) saveNotesCmd(p state.Pending, notes string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		err := m.client.SaveNotes(ctx, notes)
		return syncDoneMsg{pending: p, what: "notes", err: err}
	}
}

func (m DashboardModel) loadPhysicalCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		day, err := m.client.Physical(ctx)
		return physicalLoadedMsg{day: day, err: err}
	}
}

func (m DashboardModel) updateWaterCmd(p state.Pending, liters float64) tea.Cmd {
	rounded := math.Round(liters*100) / 100
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		err := m.client.UpdateWater(ctx, rounded)
		return syncDoneMsg{pending: p, what: "water", err: err}
	}
}

func (m DashboardModel) saveFoodLogCmd(p state.Pending, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		err := m.client.SaveFoodLog(ctx, text)
		return syncDoneMsg{pending: p, what: "food log", err: err}
	}
}

func (m DashboardModel) toggleNutritionCmd(p state.Pending, id int64, checked bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		err := m.client.ToggleNutrition(ctx, id, checked)
		return syncDoneMsg{pending: p, what: "nutrition", err: err}
	}
}

func (m DashboardModel) loadRemindersCmd(date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		reminders, err := m.client.Reminders(ctx, date)
		return remindersLoadedMsg{date: date, reminders: reminders, err: err}
	}
}

func (m DashboardModel) addReminderCmd(title, date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		id, err := m.client.AddReminder(ctx, title, date)
		return reminderAddedMsg{id: id, title: title, date: date, err: err}
	}
}

func (m DashboardModel) toggleReminderCmd(p state.Pending, id int64, done bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		err := m.client.ToggleReminder(ctx, id, done)
		return syncDoneMsg{pending: p, what: "reminder", err: err}
	}
}

func (m DashboardModel) deleteReminderCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		err := m.client.DeleteReminder(ctx, id)
		return reminderDeletedMsg{id: id, err: err}
	}
}

func (m DashboardModel) reportCmd() tea.Cmd {
	data := buildReportData(m.store, m.snap)
	return func() tea.Msg {
		path, err := GeneratePDFReport(data)
		return reportDoneMsg{path: path, err: err}
	}
}
