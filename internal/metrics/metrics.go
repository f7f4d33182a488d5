// Package metrics holds the pure percentage math shared by every
// widget. Functions here have no side effects and never fail; negative
// counts are treated as zero.
package metrics

import (
	"math"

	"dayboard/internal/util"
)

// CompletionPercent returns round(done/total*100), or 0 when total is 0.
func CompletionPercent(done, total int) int {
	if total <= 0 {
		return 0
	}
	if done < 0 {
		done = 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// RingProgress returns the progress-ring fill percentage, capped at 100
// so a completed count above target cannot overfill the ring.
func RingProgress(target, completed int) float64 {
	if target <= 0 {
		return 0
	}
	if completed < 0 {
		completed = 0
	}
	pct := float64(completed) / float64(target) * 100
	return math.Min(pct, 100)
}

// CombinedScore averages the physical and profession percentages. Each
// input is clamped to [0,100] before the mean is taken.
func CombinedScore(physPct, profPct int) int {
	physPct = util.Clamp(physPct, 0, 100)
	profPct = util.Clamp(profPct, 0, 100)
	return int(math.Round(float64(physPct+profPct) / 2))
}

// WaterPercent returns how full the hydration bar is, capped at 100.
func WaterPercent(liters, target float64) float64 {
	if target <= 0 {
		return 0
	}
	if liters < 0 {
		liters = 0
	}
	return math.Min(liters/target*100, 100)
}
