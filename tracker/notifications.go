package tracker

import (
	"context"

	"github.com/stsysd/tasktrack/model"
)

// ListNotifications returns the newest notifications addressed to p.
func (s *Service) ListNotifications(ctx context.Context, p model.Principal) ([]*model.Notification, error) {
	return s.store.ListNotifications(ctx, p.ID, model.NotificationListLimit)
}

// MarkNotificationsRead marks notifications of p as read: every unread one
// when all is set, otherwise those in ids. IDs belonging to other users are
// ignored. It returns the number of notifications updated.
func (s *Service) MarkNotificationsRead(ctx context.Context, p model.Principal, ids []int64, all bool) (int, error) {
	if all {
		return s.store.MarkAllNotificationsRead(ctx, p.ID)
	}
	if len(ids) == 0 {
		return 0, model.NewValidationError("notificationIds or markAllAsRead is required")
	}
	return s.store.MarkNotificationsRead(ctx, p.ID, ids)
}
