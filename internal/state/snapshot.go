package state

import (
	"math"

	"dayboard/internal/metrics"
)

// Snapshot is the widget refresher's output: every derived display
// value, recomputed from the read-model after each mutation.
type Snapshot struct {
	// Daily task KPI
	TasksDone  int
	TasksTotal int
	TasksPct   int

	// Notebook badges
	TodoCount int
	DoneCount int

	// Profession ring
	RingPct  int
	RingFrac float64 // 0..1 fill for the progress bar

	// Hydration
	WaterPct  float64
	WaterFrac float64

	// Combined score and its parts
	PhysPct     int
	ProfPct     int
	CombinedPct int
}

// Refresh recomputes all derived values in a fixed order: collection
// KPIs first, then the profession ring, then the combined score, which
// depends on both of the former.
func (s *Store) Refresh() Snapshot {
	var snap Snapshot

	for _, t := range s.Tasks {
		if t.Done {
			snap.TasksDone++
		}
	}
	snap.TasksTotal = len(s.Tasks)
	snap.TasksPct = metrics.CompletionPercent(snap.TasksDone, snap.TasksTotal)

	snap.TodoCount = len(s.ProfTodo)
	snap.DoneCount = len(s.ProfDone)

	ring := metrics.RingProgress(s.ProfStats.Target, s.ProfStats.Completed)
	snap.RingPct = int(math.Round(ring))
	snap.RingFrac = ring / 100

	snap.WaterPct = metrics.WaterPercent(s.Physical.Water, s.Physical.WaterTarget)
	snap.WaterFrac = snap.WaterPct / 100

	snap.PhysPct = snap.TasksPct
	snap.ProfPct = snap.RingPct
	snap.CombinedPct = metrics.CombinedScore(snap.PhysPct, snap.ProfPct)
	return snap
}
