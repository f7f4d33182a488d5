package models

// Task is a daily task tied to a calendar date. The server owns the
// record; the client holds a transient copy for the visible date. An ID
// of zero marks a task added locally whose server row has not been
// re-fetched yet.
type Task struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date,omitempty"`
	Done  bool   `json:"is_completed"`
}

// ProfessionTask is a learning/skill task in the notebook. Full CRUD
// lifecycle: created, toggled between partitions, title-edited, deleted.
type ProfessionTask struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"is_completed"`
}

// ProfessionStats is the server-computed aggregate returned after a
// profession-task toggle. It is authoritative over any client-held copy.
type ProfessionStats struct {
	Target    int `json:"total"`
	Completed int `json:"done"`
}

// NutritionItem is one entry of the daily nutrition checklist. Labels
// are seeded by the server; the client only flips the checked flag.
type NutritionItem struct {
	ID      int64  `json:"id"`
	Label   string `json:"item_label"`
	Kind    string `json:"item_type"`
	Checked bool   `json:"is_checked"`
}

// PhysicalDay is the snapshot of today's physical tracking state.
type PhysicalDay struct {
	Water       float64         `json:"water_intake_liters"`
	WaterTarget float64         `json:"water_target"`
	FoodLog     string          `json:"food_log"`
	Checklist   []NutritionItem `json:"checklist"`
}

// Reminder is a dated focus item shown alongside the daily tasks.
type Reminder struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Date  string `json:"reminder_date"`
	Done  bool   `json:"is_done"`
}
