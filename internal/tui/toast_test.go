package tui

import "testing"

func TestToastPushExpire(t *testing.T) {
	tm := newToastManager()

	a := tm.Push(ToastSuccess, "saved")
	b := tm.Push(ToastError, "failed")
	if a == b {
		t.Fatal("toast ids must be unique")
	}
	if len(tm.Visible()) != 2 {
		t.Fatalf("expected 2 visible toasts, got %d", len(tm.Visible()))
	}

	tm.Expire(a)
	vis := tm.Visible()
	if len(vis) != 1 || vis[0].ID != b {
		t.Errorf("expected only toast %d left, got %+v", b, vis)
	}

	// Expiring twice is harmless.
	tm.Expire(a)
	if len(tm.Visible()) != 1 {
		t.Error("double expire must not drop other toasts")
	}
}
