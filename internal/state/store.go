// Package state holds the client-side read-model and the optimistic
// mutation protocol. Every widget reads derived values from here, never
// from rendered output, and every controller writes through the
// mutators below.
//
// The store is owned by the UI update loop and is not safe for
// concurrent use. Confirmation requests run off-loop; their results are
// reconciled through Confirm/Fail with per-entity sequence stamps so an
// out-of-order response can never regress state.
package state

import (
	"dayboard/internal/models"
)

// EntityKind names one mutable collection or scalar.
type EntityKind string

const (
	KindTask           EntityKind = "task"
	KindProfessionTask EntityKind = "profession_task"
	KindNutrition      EntityKind = "nutrition"
	KindReminder       EntityKind = "reminder"
	KindWater          EntityKind = "water"
	KindNotes          EntityKind = "notes"
	KindFoodLog        EntityKind = "food_log"
)

// EntityKey identifies one entity for request sequencing. Scalars
// (water, notes, food log) use ID 0.
type EntityKey struct {
	Kind EntityKind
	ID   int64
}

// Pending identifies one in-flight confirmation request: which entity
// it mutates, the sequence stamp it was issued under, and the inverse
// mutation to run if the server rejects it.
type Pending struct {
	Key        EntityKey
	Seq        uint64
	compensate func(*Store)
}

// Store is the shared read-model for all dashboard widgets.
type Store struct {
	SelectedDate string

	Tasks        []models.Task
	TasksLoading bool
	TasksError   bool

	ProfTodo  []models.ProfessionTask // most-recent-first
	ProfDone  []models.ProfessionTask // most-recent-first
	ProfStats models.ProfessionStats
	Notes     string

	Physical models.PhysicalDay

	Reminders []models.Reminder

	seq map[EntityKey]uint64
}

// NewStore returns a store for the given day. waterTarget seeds the
// hydration target until the server snapshot replaces it.
func NewStore(date string, waterTarget float64) *Store {
	return &Store{
		SelectedDate: date,
		Physical:     models.PhysicalDay{WaterTarget: waterTarget},
		seq:          make(map[EntityKey]uint64),
	}
}

// pend stamps a new mutation of key and records its inverse.
func (s *Store) pend(key EntityKey, compensate func(*Store)) Pending {
	s.seq[key]++
	return Pending{Key: key, Seq: s.seq[key], compensate: compensate}
}

// fresh reports whether p is still the newest mutation of its entity.
func (s *Store) fresh(p Pending) bool {
	return p.Seq == s.seq[p.Key]
}

// Confirm marks a confirmation as arrived. It reports whether the
// result is fresh; a stale result (a newer mutation of the same entity
// was issued meanwhile) must be discarded by the caller.
func (s *Store) Confirm(p Pending) bool {
	return s.fresh(p)
}

// Fail rolls back a failed optimistic mutation by running its
// compensating action. A stale failure is dropped: the newer mutation
// already owns the entity's state.
func (s *Store) Fail(p Pending) bool {
	if !s.fresh(p) {
		return false
	}
	if p.compensate != nil {
		p.compensate(s)
	}
	return true
}

// --- Daily tasks ---

// SetSelectedDate switches the active date. The task collection for the
// old date is dropped; callers are expected to start a load.
func (s *Store) SetSelectedDate(date string) {
	s.SelectedDate = date
}

// BeginTaskLoad clears the visible list while a fetch is in flight. The
// prior list is not restorable afterwards; a failed load yields an
// empty list with an error marker.
func (s *Store) BeginTaskLoad() {
	s.Tasks = nil
	s.TasksLoading = true
	s.TasksError = false
}

// FinishTaskLoad installs a fetched task collection. Results for a date
// other than the currently selected one are ignored.
func (s *Store) FinishTaskLoad(date string, tasks []models.Task, err error) {
	if date != s.SelectedDate {
		return
	}
	s.TasksLoading = false
	if err != nil {
		s.Tasks = nil
		s.TasksError = true
		return
	}
	s.TasksError = false
	s.Tasks = tasks
}

// AppendTask appends a server-acknowledged task. The add path is not
// optimistic: the server confirmed the row but did not return its id,
// so the task keeps ID 0 until the next load.
func (s *Store) AppendTask(title string) {
	s.Tasks = append(s.Tasks, models.Task{Title: title, Date: s.SelectedDate})
}

// TaskToggle describes one task flip: what to send and whether to send
// anything at all (unpersisted tasks flip locally only).
type TaskToggle struct {
	Pending Pending
	ID      int64
	Done    bool
	Send    bool
}

// ToggleTaskAt optimistically flips the task at index i.
func (s *Store) ToggleTaskAt(i int) (TaskToggle, bool) {
	if i < 0 || i >= len(s.Tasks) {
		return TaskToggle{}, false
	}
	s.Tasks[i].Done = !s.Tasks[i].Done
	t := s.Tasks[i]
	if t.ID == 0 {
		return TaskToggle{Done: t.Done}, true
	}
	id := t.ID
	p := s.pend(EntityKey{KindTask, id}, func(s *Store) {
		for j := range s.Tasks {
			if s.Tasks[j].ID == id {
				s.Tasks[j].Done = !s.Tasks[j].Done
				return
			}
		}
	})
	return TaskToggle{Pending: p, ID: id, Done: t.Done, Send: true}, true
}

// --- Profession notebook ---

// SetProfessionTasks partitions a fetched notebook into todo/done and
// seeds the ring stats from the collection counts.
func (s *Store) SetProfessionTasks(tasks []models.ProfessionTask) {
	s.ProfTodo = nil
	s.ProfDone = nil
	for _, t := range tasks {
		if t.Done {
			s.ProfDone = append(s.ProfDone, t)
		} else {
			s.ProfTodo = append(s.ProfTodo, t)
		}
	}
	s.ProfStats = models.ProfessionStats{
		Target:    len(tasks),
		Completed: len(s.ProfDone),
	}
}

// InsertProfessionTask prepends a server-acknowledged task to the todo
// partition and grows the ring target.
func (s *Store) InsertProfessionTask(id int64, title string) {
	s.ProfTodo = append([]models.ProfessionTask{{ID: id, Title: title}}, s.ProfTodo...)
	s.ProfStats.Target++
}

// ProfessionTask finds a notebook task in either partition.
func (s *Store) ProfessionTask(id int64) (models.ProfessionTask, bool) {
	for _, t := range s.ProfTodo {
		if t.ID == id {
			return t, true
		}
	}
	for _, t := range s.ProfDone {
		if t.ID == id {
			return t, true
		}
	}
	return models.ProfessionTask{}, false
}

func removeProf(list []models.ProfessionTask, id int64) ([]models.ProfessionTask, models.ProfessionTask, int, bool) {
	for i, t := range list {
		if t.ID == id {
			out := append(append([]models.ProfessionTask{}, list[:i]...), list[i+1:]...)
			return out, t, i, true
		}
	}
	return list, models.ProfessionTask{}, 0, false
}

func insertProf(list []models.ProfessionTask, t models.ProfessionTask, i int) []models.ProfessionTask {
	if i < 0 {
		i = 0
	}
	if i > len(list) {
		i = len(list)
	}
	out := append([]models.ProfessionTask{}, list[:i]...)
	out = append(out, t)
	return append(out, list[i:]...)
}

// ProfToggle describes one optimistic partition move.
type ProfToggle struct {
	Pending Pending
	Done    bool
}

// ToggleProfession moves a task between partitions, newest-modified
// first in its destination. The ring stats are left for the server's
// aggregate to replace (ConfirmProfessionToggle); the compensating
// action moves the task back to its original slot.
func (s *Store) ToggleProfession(id int64) (ProfToggle, bool) {
	if todo, t, i, ok := removeProf(s.ProfTodo, id); ok {
		s.ProfTodo = todo
		t.Done = true
		s.ProfDone = append([]models.ProfessionTask{t}, s.ProfDone...)
		p := s.pend(EntityKey{KindProfessionTask, id}, func(s *Store) {
			done, t, _, ok := removeProf(s.ProfDone, id)
			if !ok {
				return
			}
			s.ProfDone = done
			t.Done = false
			s.ProfTodo = insertProf(s.ProfTodo, t, i)
		})
		return ProfToggle{Pending: p, Done: true}, true
	}
	if done, t, i, ok := removeProf(s.ProfDone, id); ok {
		s.ProfDone = done
		t.Done = false
		s.ProfTodo = append([]models.ProfessionTask{t}, s.ProfTodo...)
		p := s.pend(EntityKey{KindProfessionTask, id}, func(s *Store) {
			todo, t, _, ok := removeProf(s.ProfTodo, id)
			if !ok {
				return
			}
			s.ProfTodo = todo
			t.Done = true
			s.ProfDone = insertProf(s.ProfDone, t, i)
		})
		return ProfToggle{Pending: p, Done: false}, true
	}
	return ProfToggle{}, false
}

// ConfirmProfessionToggle installs the server's authoritative aggregate
// after a toggle confirmation. This is the one place server state
// replaces, rather than merges with, the local copy. Stale aggregates
// are discarded.
func (s *Store) ConfirmProfessionToggle(p Pending, stats models.ProfessionStats) bool {
	if !s.fresh(p) {
		return false
	}
	s.ProfStats = stats
	return true
}

// EditProfession renames a task in place. Validation (empty titles)
// belongs to the caller; the compensating action restores the old
// title.
func (s *Store) EditProfession(id int64, title string) (Pending, bool) {
	lists := []*[]models.ProfessionTask{&s.ProfTodo, &s.ProfDone}
	for _, list := range lists {
		for i := range *list {
			if (*list)[i].ID == id {
				old := (*list)[i].Title
				(*list)[i].Title = title
				p := s.pend(EntityKey{KindProfessionTask, id}, func(s *Store) {
					for _, l := range []*[]models.ProfessionTask{&s.ProfTodo, &s.ProfDone} {
						for j := range *l {
							if (*l)[j].ID == id {
								(*l)[j].Title = old
								return
							}
						}
					}
				})
				return p, true
			}
		}
	}
	return Pending{}, false
}

// RemoveProfessionTask removes a server-confirmed delete from its
// partition and shrinks the ring stats. Badge recomputation follows the
// removal, never precedes it.
func (s *Store) RemoveProfessionTask(id int64) bool {
	if todo, _, _, ok := removeProf(s.ProfTodo, id); ok {
		s.ProfTodo = todo
		s.ProfStats.Target--
		return true
	}
	if done, _, _, ok := removeProf(s.ProfDone, id); ok {
		s.ProfDone = done
		s.ProfStats.Target--
		s.ProfStats.Completed--
		return true
	}
	return false
}

// SetNotes stores the notebook notes optimistically; the compensating
// action restores the previous text.
func (s *Store) SetNotes(text string) Pending {
	old := s.Notes
	s.Notes = text
	return s.pend(EntityKey{Kind: KindNotes}, func(s *Store) {
		s.Notes = old
	})
}

// --- Physical ---

// SetPhysical installs the server snapshot of today's physical state.
// A zero target from the server keeps the configured one.
func (s *Store) SetPhysical(day models.PhysicalDay) {
	if day.WaterTarget <= 0 {
		day.WaterTarget = s.Physical.WaterTarget
	}
	s.Physical = day
}

// WaterUpdate describes one optimistic hydration change.
type WaterUpdate struct {
	Pending Pending
	Liters  float64 // new total to send
}

// AddWater accumulates a delta, clamped at zero.
func (s *Store) AddWater(delta float64) WaterUpdate {
	old := s.Physical.Water
	next := old + delta
	if next < 0 {
		next = 0
	}
	s.Physical.Water = next
	p := s.pend(EntityKey{Kind: KindWater}, func(s *Store) {
		s.Physical.Water = old
	})
	return WaterUpdate{Pending: p, Liters: next}
}

// NutritionToggle describes one optimistic checklist flip.
type NutritionToggle struct {
	Pending Pending
	Checked bool
}

// ToggleNutrition flips a checklist item.
func (s *Store) ToggleNutrition(id int64) (NutritionToggle, bool) {
	for i := range s.Physical.Checklist {
		if s.Physical.Checklist[i].ID == id {
			s.Physical.Checklist[i].Checked = !s.Physical.Checklist[i].Checked
			checked := s.Physical.Checklist[i].Checked
			p := s.pend(EntityKey{KindNutrition, id}, func(s *Store) {
				for j := range s.Physical.Checklist {
					if s.Physical.Checklist[j].ID == id {
						s.Physical.Checklist[j].Checked = !s.Physical.Checklist[j].Checked
						return
					}
				}
			})
			return NutritionToggle{Pending: p, Checked: checked}, true
		}
	}
	return NutritionToggle{}, false
}

// SetFoodLog stores the food log text optimistically.
func (s *Store) SetFoodLog(text string) Pending {
	old := s.Physical.FoodLog
	s.Physical.FoodLog = text
	return s.pend(EntityKey{Kind: KindFoodLog}, func(s *Store) {
		s.Physical.FoodLog = old
	})
}

// --- Reminders ---

// SetReminders installs a fetched reminder list.
func (s *Store) SetReminders(reminders []models.Reminder) {
	s.Reminders = reminders
}

// InsertReminder prepends a server-acknowledged reminder.
func (s *Store) InsertReminder(id int64, title, date string) {
	s.Reminders = append([]models.Reminder{{ID: id, Title: title, Date: date}}, s.Reminders...)
}

// ReminderToggle describes one optimistic reminder flip.
type ReminderToggle struct {
	Pending Pending
	Done    bool
}

// ToggleReminder flips a reminder's done flag.
func (s *Store) ToggleReminder(id int64) (ReminderToggle, bool) {
	for i := range s.Reminders {
		if s.Reminders[i].ID == id {
			s.Reminders[i].Done = !s.Reminders[i].Done
			done := s.Reminders[i].Done
			p := s.pend(EntityKey{KindReminder, id}, func(s *Store) {
				for j := range s.Reminders {
					if s.Reminders[j].ID == id {
						s.Reminders[j].Done = !s.Reminders[j].Done
						return
					}
				}
			})
			return ReminderToggle{Pending: p, Done: done}, true
		}
	}
	return ReminderToggle{}, false
}

// RemoveReminder removes a server-confirmed reminder delete.
func (s *Store) RemoveReminder(id int64) bool {
	for i := range s.Reminders {
		if s.Reminders[i].ID == id {
			s.Reminders = append(s.Reminders[:i], s.Reminders[i+1:]...)
			return true
		}
	}
	return false
}
