package api

import (
	"net/http"
)

// handleListNotifications は現在のユーザー宛ての通知を新しい順に返します。
func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.svc.ListNotifications(r.Context(), principal(r))
	if err != nil {
		writeServiceError(w, err, "to list notifications")
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// MarkNotificationsResponse は既読にした通知の件数です。
type MarkNotificationsResponse struct {
	Updated int `json:"updated"`
}

// handleMarkNotifications は通知を既読にします。
func (s *Server) handleMarkNotifications(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		NotificationIDs []int64 `json:"notificationIds"`
		MarkAllAsRead   bool    `json:"markAllAsRead"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		writeServiceError(w, err, "to update notifications")
		return
	}

	n, err := s.svc.MarkNotificationsRead(r.Context(), principal(r), requestBody.NotificationIDs, requestBody.MarkAllAsRead)
	if err != nil {
		writeServiceError(w, err, "to update notifications")
		return
	}
	writeJSON(w, http.StatusOK, MarkNotificationsResponse{Updated: n})
}
