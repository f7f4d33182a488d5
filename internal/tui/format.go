package tui

import (
	"fmt"

	"dayboard/internal/config"
	"github.com/charmbracelet/x/ansi"
)

// FormatTaskKPI formats the daily-task summary metric.
func FormatTaskKPI(done, total, pct int) string {
	return fmt.Sprintf("%d/%d · %d%% complete", done, total, pct)
}

// FormatWater formats the hydration readout (e.g. "1.25 L / 2.50 L").
func FormatWater(liters, target float64) string {
	return fmt.Sprintf("%.2f L / %.2f L", liters, target)
}

// FormatBadge formats a notebook tab label with its item count.
func FormatBadge(label string, count int) string {
	return fmt.Sprintf("%s (%d)", label, count)
}

// FormatCombined formats the combined score with its two parts.
func FormatCombined(combined, phys, prof int) string {
	return fmt.Sprintf("Day score %d%%  ·  physical %d%%  ·  profession %d%%", combined, phys, prof)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
