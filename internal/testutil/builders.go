// Package testutil provides fluent builders for test fixtures.
package testutil

import "dayboard/internal/models"

// TaskBuilder provides a fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{ID: 1, Title: "Test Task", Date: "2024-01-15"},
	}
}

func (b *TaskBuilder) WithID(id int64) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithDate(date string) *TaskBuilder {
	b.task.Date = date
	return b
}

func (b *TaskBuilder) Done() *TaskBuilder {
	b.task.Done = true
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// ProfTaskBuilder provides a fluent API for creating notebook tasks.
type ProfTaskBuilder struct {
	task models.ProfessionTask
}

func NewProfTask() *ProfTaskBuilder {
	return &ProfTaskBuilder{
		task: models.ProfessionTask{ID: 1, Title: "Test Notebook Task"},
	}
}

func (b *ProfTaskBuilder) WithID(id int64) *ProfTaskBuilder {
	b.task.ID = id
	return b
}

func (b *ProfTaskBuilder) WithTitle(title string) *ProfTaskBuilder {
	b.task.Title = title
	return b
}

func (b *ProfTaskBuilder) Done() *ProfTaskBuilder {
	b.task.Done = true
	return b
}

func (b *ProfTaskBuilder) Build() models.ProfessionTask {
	return b.task
}

// ReminderBuilder provides a fluent API for creating reminders.
type ReminderBuilder struct {
	reminder models.Reminder
}

func NewReminder() *ReminderBuilder {
	return &ReminderBuilder{
		reminder: models.Reminder{ID: 1, Title: "Test Reminder", Date: "2024-01-15"},
	}
}

func (b *ReminderBuilder) WithID(id int64) *ReminderBuilder {
	b.reminder.ID = id
	return b
}

func (b *ReminderBuilder) WithTitle(title string) *ReminderBuilder {
	b.reminder.Title = title
	return b
}

func (b *ReminderBuilder) Build() models.Reminder {
	return b.reminder
}

// NutritionBuilder provides a fluent API for checklist items.
type NutritionBuilder struct {
	item models.NutritionItem
}

func NewNutritionItem() *NutritionBuilder {
	return &NutritionBuilder{
		item: models.NutritionItem{ID: 1, Label: "Eggs (3 whole)", Kind: "protein"},
	}
}

func (b *NutritionBuilder) WithID(id int64) *NutritionBuilder {
	b.item.ID = id
	return b
}

func (b *NutritionBuilder) WithLabel(label string) *NutritionBuilder {
	b.item.Label = label
	return b
}

func (b *NutritionBuilder) Checked() *NutritionBuilder {
	b.item.Checked = true
	return b
}

func (b *NutritionBuilder) Build() models.NutritionItem {
	return b.item
}
