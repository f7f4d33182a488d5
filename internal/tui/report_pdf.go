package tui

import (
	"fmt"
	"path/filepath"

	"dayboard/internal/models"
	"dayboard/internal/state"
	"github.com/go-pdf/fpdf"
)

// reportData is a point-in-time copy of everything the report prints,
// taken on the update loop so the writer can run off-loop.
type reportData struct {
	Date      string
	Tasks     []models.Task
	ProfTodo  []models.ProfessionTask
	ProfDone  []models.ProfessionTask
	Notes     string
	Physical  models.PhysicalDay
	Reminders []models.Reminder
	Snap      state.Snapshot
}

func buildReportData(s *state.Store, snap state.Snapshot) reportData {
	return reportData{
		Date:      s.SelectedDate,
		Tasks:     append([]models.Task(nil), s.Tasks...),
		ProfTodo:  append([]models.ProfessionTask(nil), s.ProfTodo...),
		ProfDone:  append([]models.ProfessionTask(nil), s.ProfDone...),
		Notes:     s.Notes,
		Physical:  s.Physical,
		Reminders: append([]models.Reminder(nil), s.Reminders...),
		Snap:      snap,
	}
}

// GeneratePDFReport writes a one-page summary of the day and returns
// the absolute path of the file.
func GeneratePDFReport(data reportData) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Daily Report: %s", data.Date))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Day score: %d%% (physical %d%%, profession %d%%)",
		data.Snap.CombinedPct, data.Snap.PhysPct, data.Snap.ProfPct))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Daily Tasks (%d/%d)", data.Snap.TasksDone, data.Snap.TasksTotal))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(data.Tasks) == 0 {
		pdf.Cell(0, 8, "  - No tasks scheduled.")
		pdf.Ln(8)
	}
	for _, t := range data.Tasks {
		pdf.Cell(0, 8, fmt.Sprintf("  %s %s", checkbox(t.Done), t.Title))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Profession Notebook (%d%% complete)", data.Snap.RingPct))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, t := range data.ProfDone {
		pdf.Cell(0, 8, fmt.Sprintf("  [x] %s", t.Title))
		pdf.Ln(6)
	}
	for _, t := range data.ProfTodo {
		pdf.Cell(0, 8, fmt.Sprintf("  [ ] %s", t.Title))
		pdf.Ln(6)
	}
	if data.Notes != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 8, "Notes: "+data.Notes, "", "", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Physical")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("  Water: %s", FormatWater(data.Physical.Water, data.Physical.WaterTarget)))
	pdf.Ln(6)
	for _, item := range data.Physical.Checklist {
		pdf.Cell(0, 8, fmt.Sprintf("  %s %s", checkbox(item.Checked), item.Label))
		pdf.Ln(6)
	}
	if data.Physical.FoodLog != "" {
		pdf.MultiCell(0, 8, "  Food log: "+data.Physical.FoodLog, "", "", false)
	}

	if len(data.Reminders) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Reminders")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, r := range data.Reminders {
			pdf.Cell(0, 8, fmt.Sprintf("  %s %s", checkbox(r.Done), r.Title))
			pdf.Ln(6)
		}
	}

	filename := fmt.Sprintf("report_%s.pdf", data.Date)
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return abs, nil
}
