package calendar

import (
	"fmt"
	"time"
)

// WeekWindow is the seven-day period currently displayed. Start is aligned to
// the configured week start day at midnight; End is always Start plus seven
// days.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// WindowForDate returns the week window containing the given instant, aligned
// to weekStartDay. Out-of-range week start days fall back to Monday.
func WindowForDate(date time.Time, weekStartDay time.Weekday) WeekWindow {
	if weekStartDay < time.Sunday || weekStartDay > time.Saturday {
		weekStartDay = time.Monday
	}

	delta := (int(date.Weekday()) - int(weekStartDay) + 7) % 7
	year, month, day := date.AddDate(0, 0, -delta).Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, date.Location())

	return WeekWindow{Start: start, End: start.AddDate(0, 0, 7)}
}

// Previous returns the window shifted back by exactly seven days.
func (w WeekWindow) Previous() WeekWindow {
	return WeekWindow{Start: w.Start.AddDate(0, 0, -7), End: w.End.AddDate(0, 0, -7)}
}

// Next returns the window shifted forward by exactly seven days.
func (w WeekWindow) Next() WeekWindow {
	return WeekWindow{Start: w.Start.AddDate(0, 0, 7), End: w.End.AddDate(0, 0, 7)}
}

// Equal reports whether both windows cover the same period.
func (w WeekWindow) Equal(other WeekWindow) bool {
	return w.Start.Equal(other.Start) && w.End.Equal(other.End)
}

// Label renders the toolbar caption for the window, e.g. "Apr 15 – Apr 22, 2024".
func (w WeekWindow) Label() string {
	return fmt.Sprintf("%s – %s", w.Start.Format("Jan 2"), w.End.Format("Jan 2, 2006"))
}

// String returns the window's start date in ISO format.
func (w WeekWindow) String() string {
	return w.Start.Format("2006-01-02")
}
