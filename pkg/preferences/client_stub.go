package preferences

import (
	"context"
	"sync"
)

// StubClient is an in-memory Client implementation for tests.
type StubClient struct {
	mu          sync.Mutex
	CategoryIds []int
	GetErr      error
	UpdateErr   error
	updateCalls [][]int
}

func NewStubClient(categoryIds []int) *StubClient {
	return &StubClient{CategoryIds: categoryIds}
}

func (s *StubClient) GetPreferences(ctx context.Context) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return Preferences{}, s.GetErr
	}
	return Preferences{InterestedCategoryIds: append([]int(nil), s.CategoryIds...)}, nil
}

func (s *StubClient) UpdatePreferences(ctx context.Context, categoryIds []int) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UpdateErr != nil {
		return Preferences{}, s.UpdateErr
	}
	s.CategoryIds = append([]int(nil), categoryIds...)
	s.updateCalls = append(s.updateCalls, append([]int(nil), categoryIds...))
	return Preferences{InterestedCategoryIds: append([]int(nil), s.CategoryIds...)}, nil
}

func (s *StubClient) UpdateCalls() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]int(nil), s.updateCalls...)
}
