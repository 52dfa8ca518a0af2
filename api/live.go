package api

import (
	"context"
	"fmt"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
)

// StartLiveSession begins a live attentiveness capture for a class.
func (c *Client) StartLiveSession(ctx context.Context, classID string) (state.LiveSession, error) {
	var ls state.LiveSession
	if err := c.post(ctx, fmt.Sprintf("/classes/%s/live-session/start", classID), nil, &ls); err != nil {
		return state.LiveSession{}, err
	}
	return ls, nil
}

// StopLiveSession ends a live capture.
func (c *Client) StopLiveSession(ctx context.Context, classID, sessionID string) error {
	return c.post(ctx, fmt.Sprintf("/classes/%s/live-session/%s/stop", classID, sessionID), nil, nil)
}

// LiveSessionStatus polls a live capture's state.
func (c *Client) LiveSessionStatus(ctx context.Context, classID, sessionID string) (state.LiveSession, error) {
	var ls state.LiveSession
	if err := c.get(ctx, fmt.Sprintf("/classes/%s/live-session/%s/status", classID, sessionID), &ls); err != nil {
		return state.LiveSession{}, err
	}
	return ls, nil
}
