package tui

// ToastKind selects toast styling.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// Toast is one transient status line.
type Toast struct {
	ID   int
	Kind ToastKind
	Text string
}

// ToastManager owns the visible toast stack. Expiry is driven by timer
// messages carrying the toast id.
type ToastManager struct {
	toasts []Toast
	nextID int
}

func newToastManager() *ToastManager {
	return &ToastManager{}
}

// Push adds a toast and returns its id for the expiry timer.
func (t *ToastManager) Push(kind ToastKind, text string) int {
	t.nextID++
	t.toasts = append(t.toasts, Toast{ID: t.nextID, Kind: kind, Text: text})
	return t.nextID
}

// Expire drops the toast with the given id, if still visible.
func (t *ToastManager) Expire(id int) {
	for i, toast := range t.toasts {
		if toast.ID == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			return
		}
	}
}

// Visible returns the current toast stack, oldest first.
func (t *ToastManager) Visible() []Toast {
	return t.toasts
}
