package util

import "time"

// MonthWindow returns the first and last day of the month containing d.
// The last day is computed via day 0 of the following month.
func MonthWindow(d time.Time) (start, end time.Time) {
	start = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// WeekWindow returns the Sunday-start calendar week containing d,
// as inclusive [Sunday, Saturday] dates.
func WeekWindow(d time.Time) (start, end time.Time) {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	start = day.AddDate(0, 0, -int(day.Weekday()))
	end = start.AddDate(0, 0, 6)
	return start, end
}

// DaysBetween returns the number of whole days from start to end,
// rounded up, and never less than 1.
func DaysBetween(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	days := int(hours / 24)
	if float64(days*24) < hours {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// MonthKey formats d as its YYYY-MM bucket key
func MonthKey(d time.Time) string {
	return d.Format("2006-01")
}
