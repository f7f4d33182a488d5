package tui

import (
	"context"
	"sync"

	"dayboard/internal/api"
	"dayboard/internal/models"
)

// fakeClient records every call and answers from canned data. Any
// method whose err field is set fails.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	tasks     []models.Task
	profTasks []models.ProfessionTask
	stats     models.ProfessionStats
	physical  models.PhysicalDay
	reminders []models.Reminder
	nextID    int64

	err error
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeClient) Tasks(_ context.Context, date string) ([]models.Task, error) {
	f.record("Tasks " + date)
	return f.tasks, f.err
}

func (f *fakeClient) AddTask(_ context.Context, title, date string) error {
	f.record("AddTask " + title)
	return f.err
}

func (f *fakeClient) ToggleTask(_ context.Context, id int64, done bool) error {
	f.record("ToggleTask")
	return f.err
}

func (f *fakeClient) ProfessionTasks(context.Context) ([]models.ProfessionTask, error) {
	f.record("ProfessionTasks")
	return f.profTasks, f.err
}

func (f *fakeClient) AddProfessionTask(_ context.Context, title string) (int64, error) {
	f.record("AddProfessionTask " + title)
	f.nextID++
	return f.nextID, f.err
}

func (f *fakeClient) ToggleProfessionTask(_ context.Context, id int64, done bool) (models.ProfessionStats, error) {
	f.record("ToggleProfessionTask")
	return f.stats, f.err
}

func (f *fakeClient) EditProfessionTask(_ context.Context, id int64, title string) error {
	f.record("EditProfessionTask " + title)
	return f.err
}

func (f *fakeClient) DeleteProfessionTask(_ context.Context, id int64) error {
	f.record("DeleteProfessionTask")
	return f.err
}

func (f *fakeClient) SaveNotes(_ context.Context, notes string) error {
	f.record("SaveNotes")
	return f.err
}

func (f *fakeClient) Physical(context.Context) (models.PhysicalDay, error) {
	f.record("Physical")
	return f.physical, f.err
}

func (f *fakeClient) UpdateWater(_ context.Context, liters float64) error {
	f.record("UpdateWater")
	return f.err
}

func (f *fakeClient) SaveFoodLog(_ context.Context, text string) error {
	f.record("SaveFoodLog")
	return f.err
}

func (f *fakeClient) ToggleNutrition(_ context.Context, id int64, checked bool) error {
	f.record("ToggleNutrition")
	return f.err
}

func (f *fakeClient) Reminders(_ context.Context, date string) ([]models.Reminder, error) {
	f.record("Reminders " + date)
	return f.reminders, f.err
}

func (f *fakeClient) AddReminder(_ context.Context, title, date string) (int64, error) {
	f.record("AddReminder " + title)
	f.nextID++
	return f.nextID, f.err
}

func (f *fakeClient) ToggleReminder(_ context.Context, id int64, done bool) error {
	f.record("ToggleReminder")
	return f.err
}

func (f *fakeClient) DeleteReminder(_ context.Context, id int64) error {
	f.record("DeleteReminder")
	return f.err
}
