package tui

import (
	"dayboard/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
)

// Pane identifies one dashboard region.
type Pane int

const (
	PaneCalendar Pane = iota
	PaneTasks
	PaneNotebook
	PanePhysical
	PaneReminders
	paneCount
)

// NotebookTab selects the visible notebook partition.
type NotebookTab int

const (
	TabTodo NotebookTab = iota
	TabDone
)

// inputMode says what the shared text input is currently editing.
type inputMode int

const (
	inputNone inputMode = iota
	inputAddTask
	inputAddProf
	inputEditProf
	inputNotes
	inputFoodLog
	inputAddReminder
)

// ViewState tracks pane focus, cursors and the active notebook tab.
type ViewState struct {
	focusedPane Pane
	calDay      int // selected day-of-month cursor
	taskCursor  int
	profCursor  int
	nutriCursor int
	remCursor   int
	activeTab   NotebookTab
	// leaving marks notebook rows whose delete was confirmed and which
	// are waiting out the exit delay.
	leaving map[int64]bool
}

func newViewState(today int) *ViewState {
	return &ViewState{
		focusedPane: PaneTasks,
		calDay:      today,
		leaving:     make(map[int64]bool),
	}
}

func (v *ViewState) nextPane() {
	v.focusedPane = (v.focusedPane + 1) % paneCount
}

func (v *ViewState) prevPane() {
	v.focusedPane = (v.focusedPane + paneCount - 1) % paneCount
}

// InputState owns the shared text input and what it is bound to.
type InputState struct {
	field  textinput.Model
	mode   inputMode
	editID int64 // notebook task being renamed, when mode == inputEditProf
}

func newInputState() *InputState {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = config.MaxTitleLength
	ti.Width = 40
	return &InputState{field: ti}
}

func (in *InputState) open(mode inputMode, placeholder, value string) {
	in.mode = mode
	in.field.Placeholder = placeholder
	in.field.SetValue(value)
	in.field.CursorEnd()
	in.field.Focus()
	if mode == inputNotes || mode == inputFoodLog {
		in.field.CharLimit = config.MaxNotesLength
	} else {
		in.field.CharLimit = config.MaxTitleLength
	}
}

func (in *InputState) close() {
	in.mode = inputNone
	in.editID = 0
	in.field.SetValue("")
	in.field.Blur()
}

func (in *InputState) active() bool {
	return in.mode != inputNone
}
