package preferences

import (
	"context"
	"fmt"

	"github.com/slotbook/slotbook/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// Bridge is the preference editor's side of the calendar contract: it loads
// and updates the user's interested categories and publishes every new
// snapshot on the event bus. Consumers subscribe to EventPreferencesUpdated
// and never fetch preferences themselves.
type Bridge struct {
	client Client
	bus    *event_bus.EventBus
}

func NewBridge(client Client, bus *event_bus.EventBus) *Bridge {
	return &Bridge{client: client, bus: bus}
}

// Refresh loads the current preferences from the backend and publishes the
// resulting filter snapshot.
func (b *Bridge) Refresh(ctx context.Context) (CategoryFilter, error) {
	preferences, err := b.client.GetPreferences(ctx)
	if err != nil {
		return UnknownFilter(), fmt.Errorf("failed to refresh preferences: %w", err)
	}
	filter := NewCategoryFilter(preferences.InterestedCategoryIds)
	b.publish(ctx, filter)
	return filter, nil
}

// Update stores a new set of interested categories and publishes the snapshot
// confirmed by the backend.
func (b *Bridge) Update(ctx context.Context, categoryIds []int) (CategoryFilter, error) {
	preferences, err := b.client.UpdatePreferences(ctx, categoryIds)
	if err != nil {
		return UnknownFilter(), fmt.Errorf("failed to update preferences: %w", err)
	}
	filter := NewCategoryFilter(preferences.InterestedCategoryIds)
	b.publish(ctx, filter)
	return filter, nil
}

func (b *Bridge) publish(ctx context.Context, filter CategoryFilter) {
	if b.bus == nil {
		return
	}
	event := event_bus.NewEvent(ctx, event_bus.EventPreferencesUpdated,
		event_bus.PreferencesUpdated{CategoryIds: filter.Ids()})
	if err := b.bus.Publish(event); err != nil {
		log.Errorf("failed to publish preferences update: %v", err)
	}
}
