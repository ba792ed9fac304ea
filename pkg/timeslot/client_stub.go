package timeslot

import (
	"context"
	"sync"
	"time"
)

// StubClient is an in-memory Client implementation for tests. Each call is
// recorded; responses can be fixed values or, when a gate channel is set,
// delivered only when the test releases the call.
type StubClient struct {
	mu sync.Mutex

	Slots    []TimeSlot
	FetchErr error
	BookErr  error

	// BookGate, when set, blocks Book and Unbook until the channel is closed.
	BookGate chan struct{}

	fetchCalls  []FetchCall
	bookCalls   []int
	unbookCalls []int

	gated bool
	gates chan *FetchCall
}

type FetchCall struct {
	StartDate   time.Time
	CategoryIds []int
	release     chan fetchResult
}

type fetchResult struct {
	slots []TimeSlot
	err   error
}

func NewStubClient() *StubClient {
	return &StubClient{}
}

// Gate switches the stub into gated mode: FetchForWeek blocks until the test
// releases the call through the channel returned by Calls().
func (s *StubClient) Gate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gated = true
	s.gates = make(chan *FetchCall, 16)
}

// Calls returns the channel on which gated fetch calls are announced.
func (s *StubClient) Calls() <-chan *FetchCall {
	return s.gates
}

// Release completes a gated fetch call with the given result.
func (c *FetchCall) Release(slots []TimeSlot, err error) {
	c.release <- fetchResult{slots: slots, err: err}
}

func (s *StubClient) FetchForWeek(ctx context.Context, startDate time.Time, categoryIds []int) ([]TimeSlot, error) {
	s.mu.Lock()
	call := FetchCall{StartDate: startDate, CategoryIds: append([]int(nil), categoryIds...)}
	s.fetchCalls = append(s.fetchCalls, call)
	gated := s.gated
	slots := append([]TimeSlot(nil), s.Slots...)
	err := s.FetchErr
	s.mu.Unlock()

	if !gated {
		return slots, err
	}

	call.release = make(chan fetchResult, 1)
	s.gates <- &call
	select {
	case result := <-call.release:
		return result.slots, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *StubClient) Book(ctx context.Context, slotId int) error {
	s.mu.Lock()
	s.bookCalls = append(s.bookCalls, slotId)
	gate := s.BookGate
	err := s.BookErr
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return err
}

func (s *StubClient) Unbook(ctx context.Context, slotId int) error {
	s.mu.Lock()
	s.unbookCalls = append(s.unbookCalls, slotId)
	gate := s.BookGate
	err := s.BookErr
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return err
}

func (s *StubClient) FetchCalls() []FetchCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]FetchCall(nil), s.fetchCalls...)
}

func (s *StubClient) BookCalls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.bookCalls...)
}

func (s *StubClient) UnbookCalls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.unbookCalls...)
}
