package calendar

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/slotbook/slotbook/pkg/api"
	"github.com/slotbook/slotbook/pkg/timeslot"
	log "github.com/sirupsen/logrus"
)

var ErrNoPendingAction = fmt.Errorf("no pending action to confirm")
var ErrActionInProgress = fmt.Errorf("another action is already in progress")

// ActionKind distinguishes the two mutation gestures.
type ActionKind string

const (
	ActionBook   ActionKind = "book"
	ActionUnbook ActionKind = "unbook"
)

type actionState int

const (
	stateIdle actionState = iota
	stateConfirming
	stateMutating
)

// PendingAction is the single in-progress gesture awaiting confirmation or a
// server response.
type PendingAction struct {
	Event Event
	Kind  ActionKind
}

// BookingController drives the confirm/cancel life-cycle for booking and
// unbooking. It moves through Idle, Confirming, and Mutating; a failed
// mutation returns to Confirming with the pending action intact so the user
// can retry or cancel. At most one mutation request is outstanding at any
// time, and a re-synchronization is requested only after a successful one.
type BookingController struct {
	slots  timeslot.Client
	resync func(ctx context.Context)

	mu         sync.Mutex
	state      actionState
	pending    PendingAction
	errMessage string
	success    string
}

func NewBookingController(slots timeslot.Client, resync func(ctx context.Context)) *BookingController {
	return &BookingController{slots: slots, resync: resync}
}

// SelectForBooking opens the booking confirmation for the given event. It is
// rejected while a mutation is in flight.
func (c *BookingController) SelectForBooking(event Event) error {
	return c.selectAction(event, ActionBook)
}

// SelectForUnsubscribe opens the unsubscribe confirmation for the given event.
func (c *BookingController) SelectForUnsubscribe(event Event) error {
	return c.selectAction(event, ActionUnbook)
}

func (c *BookingController) selectAction(event Event, kind ActionKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == stateMutating {
		return ErrActionInProgress
	}
	c.state = stateConfirming
	c.pending = PendingAction{Event: event, Kind: kind}
	c.errMessage = ""
	c.success = ""
	log.Debugf("selected slot %d for %s", event.Id, kind)
	return nil
}

// Cancel discards the pending action without any network effect.
func (c *BookingController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != stateConfirming {
		return
	}
	c.state = stateIdle
	c.pending = PendingAction{}
	c.errMessage = ""
}

// Confirm issues the mutation for the pending action. It is valid only from
// the confirming state; a repeated call while the request is outstanding is a
// no-op. On success the pending action is cleared and the current week is
// re-synchronized; on failure the confirmation stays open with the server's
// detail message so the user can retry or cancel.
func (c *BookingController) Confirm(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case stateMutating:
		// Single-in-flight invariant: the first confirm is still outstanding.
		c.mu.Unlock()
		return nil
	case stateIdle:
		c.mu.Unlock()
		return ErrNoPendingAction
	}
	pending := c.pending
	c.state = stateMutating
	c.errMessage = ""
	c.success = ""
	c.mu.Unlock()

	err := c.mutate(ctx, pending)

	c.mu.Lock()
	if err != nil {
		c.state = stateConfirming
		c.errMessage = failureMessage(err, pending.Kind)
		c.mu.Unlock()
		log.Errorf("%s failed for slot %d: %v", pending.Kind, pending.Event.Id, err)
		return err
	}

	c.state = stateIdle
	c.pending = PendingAction{}
	c.success = successMessage(pending)
	c.mu.Unlock()

	if c.resync != nil {
		c.resync(ctx)
	}
	return nil
}

func (c *BookingController) mutate(ctx context.Context, pending PendingAction) error {
	if pending.Kind == ActionUnbook {
		return c.slots.Unbook(ctx, pending.Event.Id)
	}
	return c.slots.Book(ctx, pending.Event.Id)
}

func successMessage(pending PendingAction) string {
	verb := "booked"
	if pending.Kind == ActionUnbook {
		verb = "unsubscribed"
	}
	return fmt.Sprintf("Successfully %s: %s – %s", verb,
		pending.Event.Start.Format("Jan 2, 2006 15:04"), pending.Event.End.Format("15:04"))
}

func failureMessage(err error, kind ActionKind) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if kind == ActionUnbook {
		return "Unsubscribe failed."
	}
	return "Booking failed."
}

// Pending returns the current pending action, if any.
func (c *BookingController) Pending() (PendingAction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending, c.state != stateIdle
}

// Confirming reports whether a confirmation surface is currently open.
func (c *BookingController) Confirming() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == stateConfirming
}

// Mutating reports whether a mutation request is outstanding.
func (c *BookingController) Mutating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == stateMutating
}

// ErrorMessage returns the failure message shown in the confirmation surface.
func (c *BookingController) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMessage
}

// SuccessMessage returns the message recorded by the last successful action.
func (c *BookingController) SuccessMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.success
}

func (c *BookingController) clearMessages() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errMessage = ""
	c.success = ""
}
