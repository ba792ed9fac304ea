package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slotbook/slotbook/internal/event_bus"
	"github.com/slotbook/slotbook/pkg/api"
	log "github.com/sirupsen/logrus"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session owns the backend credential. Login and logout rebind the token on
// the shared api.Client and announce the change on the event bus.
type Session struct {
	rest *api.Client
	bus  *event_bus.EventBus
}

func NewSession(rest *api.Client, bus *event_bus.EventBus) *Session {
	return &Session{rest: rest, bus: bus}
}

// Login exchanges the credentials for a session token and installs it on the
// request context.
func (s *Session) Login(ctx context.Context, credentials Credentials) error {
	payload, err := s.rest.Post(ctx, "/auth/login", credentials)
	if err != nil {
		log.Errorf("Login failed for user %s: %v", credentials.Username, err)
		return fmt.Errorf("login failed: %w", err)
	}

	var response struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(payload, &response); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	if response.Token == "" {
		return fmt.Errorf("login response did not contain a token")
	}

	s.rest.SetToken(response.Token)
	s.announce(ctx, true)
	return nil
}

// Logout invalidates the session on the server and clears the local token.
// The token is cleared even when the server call fails.
func (s *Session) Logout(ctx context.Context) error {
	_, err := s.rest.Post(ctx, "/auth/logout", nil)
	s.rest.ClearToken()
	s.announce(ctx, false)
	if err != nil {
		log.Warnf("Logout request failed, local session cleared anyway: %v", err)
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

func (s *Session) announce(ctx context.Context, authenticated bool) {
	if s.bus == nil {
		return
	}
	event := event_bus.NewEvent(ctx, event_bus.EventSessionChanged, event_bus.SessionChanged{Authenticated: authenticated})
	if err := s.bus.Publish(event); err != nil {
		log.Errorf("failed to publish session change: %v", err)
	}
}
