// Package api is the REST client for the dashboard backend. All state
// lives on the server; this package only moves JSON back and forth.
package api

import (
	"context"

	"dayboard/internal/models"
)

// TaskService defines daily-task operations.
type TaskService interface {
	Tasks(ctx context.Context, date string) ([]models.Task, error)
	AddTask(ctx context.Context, title, date string) error
	ToggleTask(ctx context.Context, id int64, done bool) error
}

// ProfessionService defines notebook operations.
type ProfessionService interface {
	ProfessionTasks(ctx context.Context) ([]models.ProfessionTask, error)
	AddProfessionTask(ctx context.Context, title string) (int64, error)
	ToggleProfessionTask(ctx context.Context, id int64, done bool) (models.ProfessionStats, error)
	EditProfessionTask(ctx context.Context, id int64, title string) error
	DeleteProfessionTask(ctx context.Context, id int64) error
	SaveNotes(ctx context.Context, notes string) error
}

// PhysicalService defines hydration and nutrition operations.
type PhysicalService interface {
	Physical(ctx context.Context) (models.PhysicalDay, error)
	UpdateWater(ctx context.Context, liters float64) error
	SaveFoodLog(ctx context.Context, text string) error
	ToggleNutrition(ctx context.Context, id int64, checked bool) error
}

// ReminderService defines reminder operations.
type ReminderService interface {
	Reminders(ctx context.Context, date string) ([]models.Reminder, error)
	AddReminder(ctx context.Context, title, date string) (int64, error)
	ToggleReminder(ctx context.Context, id int64, done bool) error
	DeleteReminder(ctx context.Context, id int64) error
}

// Client combines all backend service interfaces.
type Client interface {
	TaskService
	ProfessionService
	PhysicalService
	ReminderService
}

var _ Client = (*HTTP)(nil)
