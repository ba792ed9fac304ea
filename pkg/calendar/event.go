package calendar

import (
	"time"

	"github.com/slotbook/slotbook/pkg/timeslot"
)

// Event is the view-local projection of a time slot. The whole event list is
// rebuilt on every completed synchronization and never mutated in place.
type Event struct {
	Id           int
	Title        string
	Start        time.Time
	End          time.Time
	IsBooked     bool
	BookedByUser bool
	// Slot keeps the originating record around for detail rendering.
	Slot timeslot.TimeSlot
}

func eventFromSlot(slot timeslot.TimeSlot) Event {
	title := "Available"
	if slot.IsBooked {
		if slot.BookedByUser {
			title = "Booked (You)"
		} else {
			title = "Booked (Other)"
		}
	}
	return Event{
		Id:           slot.Id,
		Title:        title,
		Start:        slot.StartTime,
		End:          slot.EndTime,
		IsBooked:     slot.IsBooked,
		BookedByUser: slot.BookedByUser,
		Slot:         slot,
	}
}
