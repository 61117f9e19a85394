package domain

import (
	"time"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageFailedGetNotifications  = "failed to retrieve notifications"
)

type (
	NotificationResponse struct {
		ID        string    `json:"id"`
		Text      string    `json:"text"`
		IsRead    bool      `json:"is_read"`
		CreatedAt time.Time `json:"created_at"`
	}
)
