// Package notify creates in-app notifications for task events. Delivery is
// best effort: failures are logged and never reach the caller that triggered
// the event.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/stsysd/tasktrack/model"
)

// Notifier accepts a batch of notifications for delivery.
type Notifier interface {
	Notify(ctx context.Context, notifications []*model.Notification)
}

// Writer persists a batch of notifications atomically.
type Writer interface {
	CreateNotifications(ctx context.Context, notifications []*model.Notification) error
}

// StoreNotifier writes notifications through a Writer.
type StoreNotifier struct {
	w Writer
}

// NewStoreNotifier returns a Notifier backed by w.
func NewStoreNotifier(w Writer) *StoreNotifier {
	return &StoreNotifier{w: w}
}

// Notify implements Notifier.
func (n *StoreNotifier) Notify(ctx context.Context, notifications []*model.Notification) {
	if len(notifications) == 0 {
		return
	}
	if err := n.w.CreateNotifications(ctx, notifications); err != nil {
		log.Printf("Failed to create %d notification(s): %v", len(notifications), err)
	}
}

// Nop discards every notification.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(context.Context, []*model.Notification) {}

// TaskAssigned builds one TASK_ASSIGNED notification per user.
func TaskAssigned(task *model.Task, userIDs []int64, now time.Time) []*model.Notification {
	return build(task, userIDs, now,
		model.NotificationTaskAssigned,
		"Task Assigned",
		fmt.Sprintf("You have been assigned a new task: %s", task.Title))
}

// TaskCompleted builds one TASK_COMPLETED notification per admin.
func TaskCompleted(task *model.Task, adminIDs []int64, now time.Time) []*model.Notification {
	return build(task, adminIDs, now,
		model.NotificationTaskCompleted,
		"Task Completed",
		fmt.Sprintf(`Task "%s" has been completed`, task.Title))
}

func build(task *model.Task, userIDs []int64, now time.Time, typ model.NotificationType, title, message string) []*model.Notification {
	data, _ := json.Marshal(model.TaskPayload{TaskID: task.ID})
	notifications := make([]*model.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		notifications = append(notifications, &model.Notification{
			UserID:    id,
			Title:     title,
			Message:   message,
			Type:      typ,
			Data:      data,
			CreatedAt: now,
		})
	}
	return notifications
}
