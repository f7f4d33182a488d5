package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"dayboard/internal/models"
)

// HTTP talks to the dashboard backend over its JSON API.
type HTTP struct {
	base string
	hc   *http.Client
}

// NewHTTP returns a client for the backend at base (no trailing slash).
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{base: base, hc: hc}
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTP) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTP) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// --- Tasks ---

func (c *HTTP) Tasks(ctx context.Context, date string) ([]models.Task, error) {
	var tasks []models.Task
	err := c.getJSON(ctx, "/api/tasks?date="+url.QueryEscape(date), &tasks)
	return tasks, wrapTaskErr("list", 0, err)
}

func (c *HTTP) AddTask(ctx context.Context, title, date string) error {
	body := struct {
		Title string `json:"title"`
		Date  string `json:"date"`
	}{title, date}
	return wrapTaskErr("add", 0, c.postJSON(ctx, "/api/task/add", body, nil))
}

func (c *HTTP) ToggleTask(ctx context.Context, id int64, done bool) error {
	body := struct {
		ID        int64 `json:"id"`
		Completed bool  `json:"completed"`
	}{id, done}
	return wrapTaskErr("toggle", id, c.postJSON(ctx, "/api/task/toggle", body, nil))
}

// --- Profession notebook ---

func (c *HTTP) ProfessionTasks(ctx context.Context) ([]models.ProfessionTask, error) {
	var tasks []models.ProfessionTask
	err := c.getJSON(ctx, "/api/profession/tasks", &tasks)
	return tasks, wrapProfessionErr("list", 0, err)
}

func (c *HTTP) AddProfessionTask(ctx context.Context, title string) (int64, error) {
	body := struct {
		Title string `json:"title"`
	}{title}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.postJSON(ctx, "/api/profession/tasks/add", body, &resp); err != nil {
		return 0, wrapProfessionErr("add", 0, err)
	}
	return resp.ID, nil
}

func (c *HTTP) ToggleProfessionTask(ctx context.Context, id int64, done bool) (models.ProfessionStats, error) {
	body := struct {
		ID        int64 `json:"id"`
		Completed bool  `json:"completed"`
	}{id, done}
	var stats models.ProfessionStats
	err := c.postJSON(ctx, "/api/profession/tasks/toggle", body, &stats)
	return stats, wrapProfessionErr("toggle", id, err)
}

func (c *HTTP) EditProfessionTask(ctx context.Context, id int64, title string) error {
	body := struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}{id, title}
	return wrapProfessionErr("edit", id, c.postJSON(ctx, "/api/profession/tasks/edit", body, nil))
}

func (c *HTTP) DeleteProfessionTask(ctx context.Context, id int64) error {
	body := struct {
		ID int64 `json:"id"`
	}{id}
	return wrapProfessionErr("delete", id, c.postJSON(ctx, "/api/profession/tasks/delete", body, nil))
}

func (c *HTTP) SaveNotes(ctx context.Context, notes string) error {
	body := struct {
		Notes string `json:"notes"`
	}{notes}
	return wrapProfessionErr("save notes", 0, c.postJSON(ctx, "/api/profession/update", body, nil))
}

// --- Physical ---

func (c *HTTP) Physical(ctx context.Context) (models.PhysicalDay, error) {
	var day models.PhysicalDay
	err := c.getJSON(ctx, "/api/physical", &day)
	return day, wrapPhysicalErr("load", 0, err)
}

func (c *HTTP) UpdateWater(ctx context.Context, liters float64) error {
	body := struct {
		Water float64 `json:"water"`
	}{liters}
	return wrapPhysicalErr("water", 0, c.postJSON(ctx, "/api/physical/update", body, nil))
}

func (c *HTTP) SaveFoodLog(ctx context.Context, text string) error {
	body := struct {
		FoodLog string `json:"food_log"`
	}{text}
	return wrapPhysicalErr("food log", 0, c.postJSON(ctx, "/api/physical/update", body, nil))
}

func (c *HTTP) ToggleNutrition(ctx context.Context, id int64, checked bool) error {
	body := struct {
		ID      int64 `json:"id"`
		Checked bool  `json:"checked"`
	}{id, checked}
	return wrapPhysicalErr("nutrition toggle", id, c.postJSON(ctx, "/api/nutrition/checklist/toggle", body, nil))
}

// --- Reminders ---

func (c *HTTP) Reminders(ctx context.Context, date string) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := c.getJSON(ctx, "/api/reminders?date="+url.QueryEscape(date), &reminders)
	return reminders, wrapReminderErr("list", 0, err)
}

func (c *HTTP) AddReminder(ctx context.Context, title, date string) (int64, error) {
	body := struct {
		Title string `json:"title"`
		Date  string `json:"date"`
	}{title, date}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.postJSON(ctx, "/api/reminders/add", body, &resp); err != nil {
		return 0, wrapReminderErr("add", 0, err)
	}
	return resp.ID, nil
}

func (c *HTTP) ToggleReminder(ctx context.Context, id int64, done bool) error {
	body := struct {
		ID   int64 `json:"id"`
		Done bool  `json:"done"`
	}{id, done}
	return wrapReminderErr("toggle", id, c.postJSON(ctx, "/api/reminders/toggle", body, nil))
}

func (c *HTTP) DeleteReminder(ctx context.Context, id int64) error {
	body := struct {
		ID int64 `json:"id"`
	}{id}
	return wrapReminderErr("delete", id, c.postJSON(ctx, "/api/reminders/delete", body, nil))
}
