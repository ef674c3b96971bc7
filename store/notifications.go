package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stsysd/tasktrack/db"
	"github.com/stsysd/tasktrack/model"
)

// CreateNotifications は通知をまとめて保存します。1件でも失敗した場合は全体をロールバックします。
func (s *SQLiteStore) CreateNotifications(ctx context.Context, notifications []*model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	return s.withTx(ctx, func(q *db.Queries) error {
		for _, n := range notifications {
			data := string(n.Data)
			if data == "" {
				data = "{}"
			}
			id, err := q.CreateNotification(ctx, db.CreateNotificationParams{
				UserID:    n.UserID,
				Title:     n.Title,
				Message:   n.Message,
				Type:      string(n.Type),
				IsRead:    n.IsRead,
				Data:      data,
				CreatedAt: formatTime(n.CreatedAt),
			})
			if err != nil {
				return fmt.Errorf("failed to create notification for user %d: %w", n.UserID, mapError(err))
			}
			n.ID = id
		}
		return nil
	})
}

// ListNotifications はユーザーの通知を新しい順に最大 limit 件取得します。
func (s *SQLiteStore) ListNotifications(ctx context.Context, userID int64, limit int) ([]*model.Notification, error) {
	rows, err := s.queries.ListNotificationsByUser(ctx, db.ListNotificationsByUserParams{
		UserID: userID,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*model.Notification, 0, len(rows))
	for _, row := range rows {
		createdAt, err := parseTime(row.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, &model.Notification{
			ID:        row.ID,
			UserID:    row.UserID,
			Title:     row.Title,
			Message:   row.Message,
			Type:      model.NotificationType(row.Type),
			IsRead:    row.IsRead,
			Data:      json.RawMessage(row.Data),
			CreatedAt: createdAt,
		})
	}
	return notifications, nil
}

// MarkNotificationsRead は指定された通知のうちユーザー自身のものを既読にし、更新件数を返します。
func (s *SQLiteStore) MarkNotificationsRead(ctx context.Context, userID int64, ids []int64) (int, error) {
	var total int64
	err := s.withTx(ctx, func(q *db.Queries) error {
		for _, id := range ids {
			n, err := q.MarkNotificationRead(ctx, db.MarkNotificationReadParams{ID: id, UserID: userID})
			if err != nil {
				return fmt.Errorf("failed to mark notification %d as read: %w", id, err)
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// MarkAllNotificationsRead はユーザーの未読通知をすべて既読にします。
func (s *SQLiteStore) MarkAllNotificationsRead(ctx context.Context, userID int64) (int, error) {
	n, err := s.queries.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return int(n), nil
}
