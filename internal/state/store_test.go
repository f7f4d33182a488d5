package state

import (
	"errors"
	"testing"

	"dayboard/internal/models"
	"dayboard/internal/testutil"
)

func setupStore() *Store {
	s := NewStore("2024-01-15", 2.5)
	s.FinishTaskLoad("2024-01-15", []models.Task{
		testutil.NewTask().WithID(1).WithTitle("Run 5k").Build(),
		testutil.NewTask().WithID(2).WithTitle("Stretch").Done().Build(),
	}, nil)
	s.SetProfessionTasks([]models.ProfessionTask{
		testutil.NewProfTask().WithID(10).WithTitle("Graph algorithms").Build(),
		testutil.NewProfTask().WithID(11).WithTitle("Two heaps").Done().Build(),
	})
	return s
}

func TestDoubleToggleRestoresLocalState(t *testing.T) {
	s := setupStore()
	before := s.Tasks[0].Done

	if _, ok := s.ToggleTaskAt(0); !ok {
		t.Fatalf("first toggle failed")
	}
	if s.Tasks[0].Done == before {
		t.Fatalf("first toggle did not flip state")
	}
	if _, ok := s.ToggleTaskAt(0); !ok {
		t.Fatalf("second toggle failed")
	}
	if s.Tasks[0].Done != before {
		t.Fatalf("double toggle did not restore state")
	}
}

func TestToggleUnpersistedTaskSendsNothing(t *testing.T) {
	s := setupStore()
	s.AppendTask("just added")
	i := len(s.Tasks) - 1

	tg, ok := s.ToggleTaskAt(i)
	if !ok {
		t.Fatalf("toggle failed")
	}
	if tg.Send {
		t.Fatalf("toggle of an ID-less task must not issue a request")
	}
	if !s.Tasks[i].Done {
		t.Fatalf("local state should still flip")
	}
}

func TestFailCompensatesToggle(t *testing.T) {
	s := setupStore()
	tg, _ := s.ToggleTaskAt(0)
	if !s.Tasks[0].Done {
		t.Fatalf("optimistic flip missing")
	}
	if !s.Fail(tg.Pending) {
		t.Fatalf("Fail reported stale for a fresh mutation")
	}
	if s.Tasks[0].Done {
		t.Fatalf("compensation did not restore state")
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	s := setupStore()
	first, _ := s.ToggleTaskAt(0)  // done -> true
	second, _ := s.ToggleTaskAt(0) // done -> false

	// The first request's failure arrives after the second mutation was
	// issued: it must not compensate.
	if s.Fail(first.Pending) {
		t.Fatalf("stale failure was applied")
	}
	if s.Tasks[0].Done {
		t.Fatalf("state regressed by stale response")
	}
	if !s.Confirm(second.Pending) {
		t.Fatalf("fresh confirmation reported stale")
	}
}

func TestFinishTaskLoadIgnoresOtherDates(t *testing.T) {
	s := setupStore()
	s.SetSelectedDate("2024-01-16")
	s.BeginTaskLoad()
	s.FinishTaskLoad("2024-01-15", []models.Task{testutil.NewTask().Build()}, nil)
	if len(s.Tasks) != 0 || !s.TasksLoading {
		t.Fatalf("load result for a stale date was installed")
	}
}

func TestFailedLoadYieldsEmptyListWithError(t *testing.T) {
	s := setupStore()
	s.BeginTaskLoad()
	s.FinishTaskLoad("2024-01-15", nil, errors.New("connection refused"))
	if len(s.Tasks) != 0 {
		t.Fatalf("failed load should leave an empty list")
	}
	if !s.TasksError || s.TasksLoading {
		t.Fatalf("failed load flags wrong: error=%v loading=%v", s.TasksError, s.TasksLoading)
	}
}

func TestToggleProfessionMovesToTopOfDone(t *testing.T) {
	s := setupStore()
	tg, ok := s.ToggleProfession(10)
	if !ok {
		t.Fatalf("toggle failed")
	}
	if !tg.Done {
		t.Fatalf("toggle should request completed=true")
	}
	if len(s.ProfTodo) != 0 {
		t.Fatalf("task not removed from todo partition")
	}
	if len(s.ProfDone) != 2 || s.ProfDone[0].ID != 10 {
		t.Fatalf("task not prepended to done partition: %+v", s.ProfDone)
	}

	// Server aggregate replaces the ring values.
	if !s.ConfirmProfessionToggle(tg.Pending, models.ProfessionStats{Target: 10, Completed: 4}) {
		t.Fatalf("fresh aggregate reported stale")
	}
	if s.ProfStats.Target != 10 || s.ProfStats.Completed != 4 {
		t.Fatalf("aggregate not installed: %+v", s.ProfStats)
	}
}

func TestToggleProfessionCompensationRestoresSlot(t *testing.T) {
	s := setupStore()
	s.InsertProfessionTask(12, "System design") // todo: [12, 10]

	tg, _ := s.ToggleProfession(10)
	if !s.Fail(tg.Pending) {
		t.Fatalf("Fail reported stale")
	}
	if len(s.ProfTodo) != 2 || s.ProfTodo[1].ID != 10 {
		t.Fatalf("compensation did not restore original slot: %+v", s.ProfTodo)
	}
	if s.ProfTodo[1].Done {
		t.Fatalf("compensation left task marked done")
	}
}

func TestStaleAggregateDiscarded(t *testing.T) {
	s := setupStore()
	first, _ := s.ToggleProfession(10)
	second, _ := s.ToggleProfession(10)

	if s.ConfirmProfessionToggle(first.Pending, models.ProfessionStats{Target: 2, Completed: 2}) {
		t.Fatalf("stale aggregate was installed")
	}
	if !s.ConfirmProfessionToggle(second.Pending, models.ProfessionStats{Target: 2, Completed: 1}) {
		t.Fatalf("fresh aggregate reported stale")
	}
	if s.ProfStats.Completed != 1 {
		t.Fatalf("ring stats = %+v", s.ProfStats)
	}
}

func TestInsertProfessionTaskPrepends(t *testing.T) {
	s := setupStore()
	s.InsertProfessionTask(12, "System design")
	if s.ProfTodo[0].ID != 12 {
		t.Fatalf("new task not at top of todo: %+v", s.ProfTodo)
	}
	if s.ProfStats.Target != 3 {
		t.Fatalf("target not grown: %+v", s.ProfStats)
	}
}

func TestEditProfessionCompensation(t *testing.T) {
	s := setupStore()
	p, ok := s.EditProfession(10, "Graphs, revisited")
	if !ok {
		t.Fatalf("edit failed")
	}
	got, _ := s.ProfessionTask(10)
	if got.Title != "Graphs, revisited" {
		t.Fatalf("title not applied: %q", got.Title)
	}
	s.Fail(p)
	got, _ = s.ProfessionTask(10)
	if got.Title != "Graph algorithms" {
		t.Fatalf("title not restored: %q", got.Title)
	}
}

func TestRemoveProfessionTaskShrinksStats(t *testing.T) {
	s := setupStore()
	if !s.RemoveProfessionTask(11) {
		t.Fatalf("remove failed")
	}
	if len(s.ProfDone) != 0 {
		t.Fatalf("done partition not shrunk")
	}
	if s.ProfStats.Target != 1 || s.ProfStats.Completed != 0 {
		t.Fatalf("stats = %+v", s.ProfStats)
	}
}

func TestAddWaterClampsAtZero(t *testing.T) {
	s := NewStore("2024-01-15", 2.5)
	s.AddWater(0.25)
	if s.Physical.Water != 0.25 {
		t.Fatalf("water = %f", s.Physical.Water)
	}
	up := s.AddWater(-1)
	if s.Physical.Water != 0 {
		t.Fatalf("water not clamped: %f", s.Physical.Water)
	}
	if up.Liters != 0 {
		t.Fatalf("update carries unclamped total: %f", up.Liters)
	}
}

func TestAddWaterCompensation(t *testing.T) {
	s := NewStore("2024-01-15", 2.5)
	s.AddWater(0.5)
	up := s.AddWater(0.25)
	s.Fail(up.Pending)
	if s.Physical.Water != 0.5 {
		t.Fatalf("water = %f, want 0.5", s.Physical.Water)
	}
}

func TestToggleNutritionAndReminder(t *testing.T) {
	s := NewStore("2024-01-15", 2.5)
	s.SetPhysical(models.PhysicalDay{
		Checklist: []models.NutritionItem{testutil.NewNutritionItem().WithID(5).Build()},
	})
	nt, ok := s.ToggleNutrition(5)
	if !ok || !nt.Checked {
		t.Fatalf("nutrition toggle: ok=%v checked=%v", ok, nt.Checked)
	}
	s.Fail(nt.Pending)
	if s.Physical.Checklist[0].Checked {
		t.Fatalf("nutrition compensation failed")
	}

	s.SetReminders([]models.Reminder{testutil.NewReminder().WithID(7).Build()})
	rt, ok := s.ToggleReminder(7)
	if !ok || !rt.Done {
		t.Fatalf("reminder toggle: ok=%v done=%v", ok, rt.Done)
	}
	if !s.RemoveReminder(7) {
		t.Fatalf("reminder remove failed")
	}
	if len(s.Reminders) != 0 {
		t.Fatalf("reminder not removed")
	}
}

func TestSetPhysicalKeepsConfiguredTarget(t *testing.T) {
	s := NewStore("2024-01-15", 3.0)
	s.SetPhysical(models.PhysicalDay{Water: 1.0})
	if s.Physical.WaterTarget != 3.0 {
		t.Fatalf("target = %f, want configured 3.0", s.Physical.WaterTarget)
	}
	s.SetPhysical(models.PhysicalDay{Water: 1.0, WaterTarget: 2.0})
	if s.Physical.WaterTarget != 2.0 {
		t.Fatalf("server target should win when present")
	}
}
