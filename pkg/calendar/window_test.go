package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowForDate(t *testing.T) {
	tests := []struct {
		name         string
		date         time.Time
		weekStartDay time.Weekday
		wantStart    time.Time
	}{
		{
			name:         "Monday maps to itself",
			date:         time.Date(2024, 4, 15, 10, 30, 0, 0, time.UTC),
			weekStartDay: time.Monday,
			wantStart:    time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "Sunday belongs to the week started the previous Monday",
			date:         time.Date(2024, 4, 21, 23, 59, 0, 0, time.UTC),
			weekStartDay: time.Monday,
			wantStart:    time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "Wednesday in the middle of the week",
			date:         time.Date(2024, 4, 17, 8, 0, 0, 0, time.UTC),
			weekStartDay: time.Monday,
			wantStart:    time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "Sunday week start",
			date:         time.Date(2024, 4, 17, 8, 0, 0, 0, time.UTC),
			weekStartDay: time.Sunday,
			wantStart:    time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "start crosses a month boundary",
			date:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			weekStartDay: time.Monday,
			wantStart:    time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "invalid week start day falls back to Monday",
			date:         time.Date(2024, 4, 17, 8, 0, 0, 0, time.UTC),
			weekStartDay: time.Weekday(12),
			wantStart:    time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := WindowForDate(tt.date, tt.weekStartDay)
			assert.Equal(t, tt.wantStart, window.Start)
			assert.Equal(t, tt.wantStart.AddDate(0, 0, 7), window.End)
		})
	}
}

func TestWeekWindowNavigation(t *testing.T) {
	window := WindowForDate(time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), time.Monday)

	t.Run("next shifts by exactly seven days", func(t *testing.T) {
		next := window.Next()
		assert.Equal(t, time.Date(2024, 4, 22, 0, 0, 0, 0, time.UTC), next.Start)
		assert.Equal(t, time.Monday, next.Start.Weekday())
	})

	t.Run("previous shifts back by exactly seven days", func(t *testing.T) {
		previous := window.Previous()
		assert.Equal(t, time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC), previous.Start)
		assert.Equal(t, time.Monday, previous.Start.Weekday())
	})

	t.Run("next then previous round-trips", func(t *testing.T) {
		assert.True(t, window.Next().Previous().Equal(window))
		assert.True(t, window.Previous().Next().Equal(window))
	})

	t.Run("start always lands on the week start day over long sequences", func(t *testing.T) {
		current := window
		for i := 0; i < 60; i++ {
			current = current.Next()
			assert.Equal(t, time.Monday, current.Start.Weekday())
		}
		for i := 0; i < 120; i++ {
			current = current.Previous()
			assert.Equal(t, time.Monday, current.Start.Weekday())
		}
	})
}

func TestWeekWindowLabel(t *testing.T) {
	window := WindowForDate(time.Date(2024, 4, 17, 0, 0, 0, 0, time.UTC), time.Monday)
	assert.Equal(t, "Apr 15 – Apr 22, 2024", window.Label())
}
