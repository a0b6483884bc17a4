package winja

import (
	"context"
	"fmt"
	"time"
)

// PushNotification is an announcement scheduled for or already sent to the
// mobile audience.
type PushNotification struct {
	ID          int64      `json:"id"`
	Message     string     `json:"message"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	SentAt      *time.Time `json:"sent_at"`
	Status      string     `json:"status"`
}

// PushNotificationParams carries the fields of a push notification create or
// edit.
type PushNotificationParams struct {
	Message     string     `json:"message"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

func (c *winjaClient) PushNotifications(ctx context.Context) ([]PushNotification, error) {
	resp, err := c.get(ctx, "/push-notifications")
	if err != nil {
		return nil, err
	}
	return decodeList[PushNotification](resp, "notifications")
}

func (c *winjaClient) CreatePushNotification(ctx context.Context, params PushNotificationParams) (PushNotification, error) {
	resp, err := c.postJSON(ctx, "/push-notifications", params)
	if err != nil {
		return PushNotification{}, err
	}
	return decodeObject[PushNotification](resp)
}

func (c *winjaClient) UpdatePushNotification(ctx context.Context, id int64, params PushNotificationParams) (PushNotification, error) {
	resp, err := c.putJSON(ctx, fmt.Sprintf("/push-notifications/%d", id), params)
	if err != nil {
		return PushNotification{}, err
	}
	return decodeObject[PushNotification](resp)
}

func (c *winjaClient) DeletePushNotification(ctx context.Context, id int64) error {
	return c.deleteResource(ctx, fmt.Sprintf("/push-notifications/%d", id))
}
