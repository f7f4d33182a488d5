package tui

import (
	"time"

	"dayboard/internal/util"
)

// MonthGrid is the current calendar month laid out in Sunday-first
// weeks. There is no month navigation; the grid always covers today's
// month.
type MonthGrid struct {
	Year  int
	Month time.Month
	// Weeks holds day numbers, 0 for cells outside the month.
	Weeks [][7]int
	days  int
}

// NewMonthGrid builds the grid for the month containing now.
func NewMonthGrid(now time.Time) MonthGrid {
	year, month := now.Year(), now.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	days := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday()) // Sunday = 0

	g := MonthGrid{Year: year, Month: month, days: days}
	var week [7]int
	col := offset
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			g.Weeks = append(g.Weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		g.Weeks = append(g.Weeks, week)
	}
	return g
}

// Days returns the number of days in the month.
func (g MonthGrid) Days() int {
	return g.days
}

// DateOf returns the ISO day key for a day number in this month.
func (g MonthGrid) DateOf(day int) string {
	return util.ISODate(time.Date(g.Year, g.Month, day, 0, 0, 0, 0, time.Local))
}

// ClampDay constrains a day number to the month.
func (g MonthGrid) ClampDay(day int) int {
	return util.Clamp(day, 1, g.days)
}

// Title returns the "January 2024" style heading.
func (g MonthGrid) Title() string {
	return time.Date(g.Year, g.Month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
}
