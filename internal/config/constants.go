package config

import "time"

// Timings.
const (
	// ToastTTL is how long a toast stays on screen.
	ToastTTL = 4 * time.Second

	// DeleteExitDelay is the pause between a confirmed delete and the
	// row disappearing, so the removal reads as deliberate.
	DeleteExitDelay = 250 * time.Millisecond

	// ClockTick is the wall-clock polling interval for the new-day
	// notification.
	ClockTick = time.Minute
)

// Input constraints.
const (
	// MaxTitleLength is the maximum task title length.
	MaxTitleLength = 100

	// MaxNotesLength is the maximum notebook notes length.
	MaxNotesLength = 2000
)

// Layout constants.
const (
	// MinPaneWidth is the minimum width for a dashboard pane.
	MinPaneWidth = 24

	// RingBarWidth is the width of the profession progress bar.
	RingBarWidth = 24

	// WaterBarWidth is the width of the hydration bar.
	WaterBarWidth = 24

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
