package calendar

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Synchronize fetches the slot inventory for the current window and filter
// and replaces the event list with the transformed result. While the filter
// is still unknown the call is deferred without issuing a request.
//
// Every invocation bumps a generation counter captured before the fetch; a
// result is applied only when its generation is still the latest at
// resolution time. A stale response from a superseded window or filter is
// discarded instead of overwriting the newer state.
func (v *View) Synchronize(ctx context.Context) error {
	v.mu.Lock()
	if !v.filter.Known() {
		v.mu.Unlock()
		log.Debug("synchronization deferred: waiting for initial category filter")
		return nil
	}
	v.generation++
	generation := v.generation
	window := v.window
	categoryIds := v.filter.Ids()
	v.loading = true
	v.loadError = ""
	v.mu.Unlock()

	log.Debugf("synchronizing week %s with filter %v", window, categoryIds)
	slots, err := v.slots.FetchForWeek(ctx, window.Start, categoryIds)

	v.mu.Lock()
	defer v.mu.Unlock()

	if generation != v.generation {
		log.Debugf("discarding stale synchronization result for week %s", window)
		return nil
	}
	v.loading = false

	if err != nil {
		v.events = nil
		v.loadError = "Failed to load time slots."
		return err
	}

	events := make([]Event, 0, len(slots))
	for _, slot := range slots {
		events = append(events, eventFromSlot(slot))
	}
	v.events = events
	return nil
}
