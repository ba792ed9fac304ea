package category

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slotbook/slotbook/pkg/api"
)

type Category struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type Client interface {
	ListCategories(ctx context.Context) ([]Category, error)
}

type ClientImpl struct {
	rest *api.Client
}

func NewClient(rest *api.Client) *ClientImpl {
	return &ClientImpl{rest: rest}
}

func (c *ClientImpl) ListCategories(ctx context.Context) ([]Category, error) {
	payload, err := c.rest.Get(ctx, "/categories", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	var categories []Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}
