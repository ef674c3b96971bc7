package model

import (
	"encoding/json"
	"time"
)

// NotificationType identifies the event a notification reports.
type NotificationType string

const (
	NotificationTaskAssigned  NotificationType = "TASK_ASSIGNED"
	NotificationTaskCompleted NotificationType = "TASK_COMPLETED"
)

// NotificationListLimit bounds the notifications returned to a recipient.
const NotificationListLimit = 50

// Notification is a message addressed to one user.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"isRead"`
	Data      json.RawMessage  `json:"data"`
	CreatedAt time.Time        `json:"createdAt"`
}

// TaskPayload is the data attached to task notifications.
type TaskPayload struct {
	TaskID int64 `json:"taskId"`
}
