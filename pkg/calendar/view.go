package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slotbook/slotbook/internal/event_bus"
	"github.com/slotbook/slotbook/internal/utils"
	"github.com/slotbook/slotbook/pkg/preferences"
	"github.com/slotbook/slotbook/pkg/timeslot"
)

var ErrEventNotFound = fmt.Errorf("event not found in current week")

// NavigationCommand moves the visible week.
type NavigationCommand string

const (
	NavigatePrevious NavigationCommand = "previous"
	NavigateNext     NavigationCommand = "next"
)

// Status is the loading/error/success triple exposed to the renderer. While
// Loading is true the previous event list must not be rendered as current.
type Status struct {
	Loading bool
	Error   string
	Success string
}

// View owns the visible week window and the active category filter snapshot,
// and exposes the synchronized event list together with the booking
// controller's entry points. It is the sole writer of window and filter;
// the synchronizer and the booking controller only read them and request
// re-synchronization through the view.
type View struct {
	slots        timeslot.Client
	clock        utils.Clock
	weekStartDay time.Weekday
	booking      *BookingController

	mu         sync.Mutex
	window     WeekWindow
	filter     preferences.CategoryFilter
	events     []Event
	loading    bool
	loadError  string
	generation uint64
}

// NewView creates a view showing the week containing the clock's current
// instant, with the filter in the "not yet known" state. When a bus is given,
// the view subscribes to preference snapshots and applies them as they arrive.
func NewView(slots timeslot.Client, clock utils.Clock, weekStartDay time.Weekday, bus *event_bus.EventBus) *View {
	view := &View{
		slots:        slots,
		clock:        clock,
		weekStartDay: weekStartDay,
		window:       WindowForDate(clock.Now(), weekStartDay),
		filter:       preferences.UnknownFilter(),
	}
	view.booking = NewBookingController(slots, func(ctx context.Context) {
		if err := view.Synchronize(ctx); err != nil {
			log.Errorf("re-synchronization after mutation failed: %v", err)
		}
	})

	if bus != nil {
		event_bus.SubscribeTyped[event_bus.PreferencesUpdated](
			bus,
			event_bus.EventPreferencesUpdated,
			func(e event_bus.EventT[event_bus.PreferencesUpdated]) error {
				return view.ApplyFilter(e.Context(), preferences.NewCategoryFilter(e.Data.CategoryIds))
			},
		)
	}

	return view
}

// ApplyFilter reconciles a new filter snapshot from the preference editor.
// Snapshots whose canonical key matches the current one are ignored, so
// re-applying an identical filter never causes a redundant fetch.
func (v *View) ApplyFilter(ctx context.Context, filter preferences.CategoryFilter) error {
	v.mu.Lock()
	if filter.Key() == v.filter.Key() {
		v.mu.Unlock()
		log.Debugf("filter unchanged (key %q), skipping synchronization", filter.Key())
		return nil
	}
	v.filter = filter
	v.mu.Unlock()

	v.booking.clearMessages()
	return v.Synchronize(ctx)
}

// Navigate shifts the visible week by one in the given direction and
// synchronizes the new window.
func (v *View) Navigate(ctx context.Context, command NavigationCommand) error {
	v.mu.Lock()
	switch command {
	case NavigatePrevious:
		v.window = v.window.Previous()
	case NavigateNext:
		v.window = v.window.Next()
	default:
		v.mu.Unlock()
		return fmt.Errorf("unknown navigation command %q", command)
	}
	v.mu.Unlock()

	v.booking.clearMessages()
	return v.Synchronize(ctx)
}

// Today returns the view to the week containing the clock's current instant.
func (v *View) Today(ctx context.Context) error {
	return v.JumpTo(ctx, v.clock.Now())
}

// JumpTo shows the week containing the given instant.
func (v *View) JumpTo(ctx context.Context, date time.Time) error {
	v.mu.Lock()
	v.window = WindowForDate(date, v.weekStartDay)
	v.mu.Unlock()

	v.booking.clearMessages()
	return v.Synchronize(ctx)
}

// Window returns the currently visible week.
func (v *View) Window() WeekWindow {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.window
}

// Filter returns the active filter snapshot.
func (v *View) Filter() preferences.CategoryFilter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// Events returns the event list of the most recently completed
// synchronization.
func (v *View) Events() []Event {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Event(nil), v.events...)
}

// Status aggregates the view's loading and load-error state with the booking
// controller's messages.
func (v *View) Status() Status {
	v.mu.Lock()
	loading := v.loading
	loadError := v.loadError
	v.mu.Unlock()

	status := Status{Loading: loading, Error: loadError}
	if status.Error == "" {
		status.Error = v.booking.ErrorMessage()
	}
	status.Success = v.booking.SuccessMessage()
	return status
}

// Booking exposes the action controller for the confirmation surfaces.
func (v *View) Booking() *BookingController {
	return v.booking
}

// SelectForBooking opens the booking confirmation for the event with the
// given id, which must be part of the current week's list.
func (v *View) SelectForBooking(eventId int) error {
	event, err := v.findEvent(eventId)
	if err != nil {
		return err
	}
	return v.booking.SelectForBooking(event)
}

// SelectForUnsubscribe opens the unsubscribe confirmation for the event with
// the given id.
func (v *View) SelectForUnsubscribe(eventId int) error {
	event, err := v.findEvent(eventId)
	if err != nil {
		return err
	}
	return v.booking.SelectForUnsubscribe(event)
}

func (v *View) findEvent(eventId int) (Event, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, event := range v.events {
		if event.Id == eventId {
			return event, nil
		}
	}
	return Event{}, ErrEventNotFound
}
