package timesheet

import "github.com/alexanderramin/timereview/internal/domain"

// RowTotal sums every day entry of a single row in minutes.
func RowTotal(row domain.TimesheetRow) int {
	total := 0
	for _, e := range row.DataSheet {
		total += TimeToMinutes(e.Hours)
	}
	return total
}

// DailyTotals sums minutes per weekday column across all rows, keyed by
// day name. A row without an entry for a day contributes nothing.
func DailyTotals(rows []domain.TimesheetRow, days []domain.WeekDay) map[string]int {
	totals := make(map[string]int, len(days))
	for i, day := range days {
		sum := 0
		for _, row := range rows {
			sum += TimeToMinutes(row.EntryAt(i).Hours)
		}
		totals[day.Name] += sum
	}
	return totals
}

// GrandTotal sums the per-day totals.
func GrandTotal(daily map[string]int) int {
	total := 0
	for _, m := range daily {
		total += m
	}
	return total
}
