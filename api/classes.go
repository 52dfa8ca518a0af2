package api

import (
	"context"
	"fmt"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
)

// CreateClass registers a new class for the authenticated teacher.
func (c *Client) CreateClass(ctx context.Context, nc state.NewClass) (state.Class, error) {
	var cls state.Class
	if err := c.post(ctx, "/classes", nc, &cls); err != nil {
		return state.Class{}, err
	}
	return cls, nil
}

// Classes lists the authenticated teacher's classes in server order.
func (c *Client) Classes(ctx context.Context) ([]state.Class, error) {
	var list []state.Class
	if err := c.get(ctx, "/classes", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Class fetches a single class by id.
func (c *Client) Class(ctx context.Context, classID string) (state.Class, error) {
	var cls state.Class
	if err := c.get(ctx, fmt.Sprintf("/classes/%s", classID), &cls); err != nil {
		return state.Class{}, err
	}
	return cls, nil
}

// UpdateClass replaces a class's details.
func (c *Client) UpdateClass(ctx context.Context, classID string, nc state.NewClass) (state.Class, error) {
	var cls state.Class
	if err := c.put(ctx, fmt.Sprintf("/classes/%s", classID), nc, &cls); err != nil {
		return state.Class{}, err
	}
	return cls, nil
}

// DeleteClass removes a class and everything scoped to it server-side.
func (c *Client) DeleteClass(ctx context.Context, classID string) error {
	return c.delete(ctx, fmt.Sprintf("/classes/%s", classID))
}
