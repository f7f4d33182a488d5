package tui

import (
	"time"

	"dayboard/internal/api"
	"dayboard/internal/config"
	"dayboard/internal/state"
	"dayboard/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var AppVersion = "0"

// DashboardModel is the root Bubble Tea model. All mutable state lives
// in the store; the model wires keys, network commands and rendering
// around it.
type DashboardModel struct {
	client api.Client
	cfg    *config.Config

	store *state.Store
	snap  state.Snapshot

	grid   MonthGrid
	view   *ViewState
	inputs *InputState
	toasts *ToastManager
	keys   *HandlerRegistry

	ring     progress.Model
	waterBar progress.Model
	spin     spinner.Model

	lastDay string

	width, height int
}

// NewDashboardModel builds the dashboard for today.
func NewDashboardModel(client api.Client, cfg *config.Config) DashboardModel {
	now := time.Now()

	ring := progress.New(progress.WithDefaultGradient())
	ring.Width = config.RingBarWidth
	water := progress.New(progress.WithSolidFill("39"))
	water.Width = config.WaterBarWidth

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := DashboardModel{
		client:   client,
		cfg:      cfg,
		store:    state.NewStore(util.ISODate(now), cfg.WaterTargetLiters),
		grid:     NewMonthGrid(now),
		view:     newViewState(now.Day()),
		inputs:   newInputState(),
		toasts:   newToastManager(),
		keys:     NewHandlerRegistry(),
		ring:     ring,
		waterBar: water,
		spin:     sp,
		lastDay:  util.ISODate(now),
	}
	m.snap = m.store.Refresh()
	m.registerBindings()
	return m
}

func (m *DashboardModel) registerBindings() {
	reg := m.keys
	reg.Register(KeyBinding{Key: "tab", Description: "next pane", Priority: 10, Handler: func(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
		m.view.nextPane()
		return m, nil, true
	}})
	reg.Register(KeyBinding{Key: "shift+tab", Description: "prev pane", Priority: 10, Handler: func(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
		m.view.prevPane()
		return m, nil, true
	}})
	reg.Register(KeyBinding{Key: "p", Description: "PDF report", Priority: 10, Handler: func(m DashboardModel) (DashboardModel, tea.Cmd, bool) {
		return m, m.reportCmd(), true
	}})

	reg.Register(KeyBinding{Key: "up", Handler: handleCursorUp})
	reg.Register(KeyBinding{Key: "down", Handler: handleCursorDown})
	reg.Register(KeyBinding{Key: "left", Handler: handleCursorLeft})
	reg.Register(KeyBinding{Key: "right", Handler: handleCursorRight})

	reg.Register(KeyBinding{Key: "enter", Description: "select day", Panes: []Pane{PaneCalendar}, Handler: handleCalendarSelect})
	reg.Register(KeyBinding{Key: " ", Description: "toggle", Panes: []Pane{PaneTasks, PaneNotebook, PanePhysical, PaneReminders}, Handler: handleToggle})
	reg.Register(KeyBinding{Key: "enter", Panes: []Pane{PaneTasks, PaneNotebook, PanePhysical, PaneReminders}, Handler: handleToggle})

	reg.Register(KeyBinding{Key: "a", Description: "add", Panes: []Pane{PaneTasks, PaneNotebook, PaneReminders}, Handler: handleAddKey})
	reg.Register(KeyBinding{Key: "e", Description: "edit", Panes: []Pane{PaneNotebook}, Handler: handleEditKey})
	reg.Register(KeyBinding{Key: "x", Description: "delete", Panes: []Pane{PaneNotebook, PaneReminders}, Handler: handleDeleteKey})
	reg.Register(KeyBinding{Key: "t", Description: "todo tab", Panes: []Pane{PaneNotebook}, Handler: handleTabTodo})
	reg.Register(KeyBinding{Key: "d", Description: "done tab", Panes: []Pane{PaneNotebook}, Handler: handleTabDone})
	reg.Register(KeyBinding{Key: "n", Description: "notes", Panes: []Pane{PaneNotebook}, Handler: handleNotesKey})

	reg.Register(KeyBinding{Key: "+", Description: "water +", Panes: []Pane{PanePhysical}, Handler: handleWaterUp})
	reg.Register(KeyBinding{Key: "=", Panes: []Pane{PanePhysical}, Handler: handleWaterUp})
	reg.Register(KeyBinding{Key: "-", Description: "water -", Panes: []Pane{PanePhysical}, Handler: handleWaterDown})
	reg.Register(KeyBinding{Key: "f", Description: "food log", Panes: []Pane{PanePhysical}, Handler: handleFoodKey})
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasksCmd(m.store.SelectedDate),
		m.loadProfessionCmd(),
		m.loadPhysicalCmd(),
		m.loadRemindersCmd(m.store.SelectedDate),
		clockTickCmd(),
		m.spin.Tick,
	)
}
