package preferences

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slotbook/slotbook/pkg/api"
)

type Preferences struct {
	InterestedCategoryIds []int `json:"interested_category_ids"`
}

type Client interface {
	GetPreferences(ctx context.Context) (Preferences, error)
	UpdatePreferences(ctx context.Context, categoryIds []int) (Preferences, error)
}

type ClientImpl struct {
	rest *api.Client
}

func NewClient(rest *api.Client) *ClientImpl {
	return &ClientImpl{rest: rest}
}

func (c *ClientImpl) GetPreferences(ctx context.Context) (Preferences, error) {
	payload, err := c.rest.Get(ctx, "/user/preferences", nil)
	if err != nil {
		return Preferences{}, fmt.Errorf("failed to fetch preferences: %w", err)
	}
	var preferences Preferences
	if err := json.Unmarshal(payload, &preferences); err != nil {
		return Preferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return preferences, nil
}

func (c *ClientImpl) UpdatePreferences(ctx context.Context, categoryIds []int) (Preferences, error) {
	payload, err := c.rest.Put(ctx, "/user/preferences", Preferences{InterestedCategoryIds: categoryIds})
	if err != nil {
		return Preferences{}, fmt.Errorf("failed to update preferences: %w", err)
	}
	var preferences Preferences
	if err := json.Unmarshal(payload, &preferences); err != nil {
		return Preferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return preferences, nil
}
