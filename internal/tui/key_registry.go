package tui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler processes one key press. It reports whether it consumed
// the key; unconsumed keys fall through to the next binding.
type KeyHandler func(m DashboardModel) (DashboardModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Panes       []Pane // empty means all panes
	Priority    int
}

func (b KeyBinding) AppliesToPane(p Pane) bool {
	if len(b.Panes) == 0 {
		return true
	}
	for _, pane := range b.Panes {
		if pane == p {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToPane(m.view.focusedPane) {
			next, cmd, handled := b.Handler(m)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// BindingsForPane returns the bindings reachable from a pane, for the
// help line.
func (r *HandlerRegistry) BindingsForPane(p Pane) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToPane(p) && b.Description != "" {
			out = append(out, b)
		}
	}
	return out
}
