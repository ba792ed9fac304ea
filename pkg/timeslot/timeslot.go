package timeslot

import "time"

// TimeSlot is a bookable time interval as served by the backend inventory.
// EndTime is always after StartTime, and BookedByUser implies IsBooked.
type TimeSlot struct {
	Id           int
	StartTime    time.Time
	EndTime      time.Time
	IsBooked     bool
	BookedByUser bool
	Category     int
}
