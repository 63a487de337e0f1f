package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// @Summary My notifications
// @Description Newest first, with a summary of the related report.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.NotificationWithReport
// @Failure 401 {object} ResponseError
// @Router /api/notifications [get]
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	list, err := h.s.Notifications(r.Context(), caller.ID)
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, list)
}

// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UnreadCountResponse
// @Failure 401 {object} ResponseError
// @Router /api/notifications/unread-count [get]
func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	count, err := h.s.UnreadCount(r.Context(), caller.ID)
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, UnreadCountResponse{Count: count})
}

// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} entity.Notification
// @Failure 404 {object} ResponseError
// @Router /api/notifications/{id}/read [put]
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	n, err := h.s.MarkNotificationRead(r.Context(), caller.ID, chi.URLParam(r, "id"))
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, n)
}

// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Router /api/notifications/mark-all-read [put]
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	err := h.s.MarkAllNotificationsRead(r.Context(), caller.ID)
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendMessage(r.Context(), w, "All notifications marked as read")
}

// @Summary Delete notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ResponseError
// @Router /api/notifications/{id} [delete]
func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	err := h.s.DeleteNotification(r.Context(), caller.ID, chi.URLParam(r, "id"))
	if err != nil {
		sendServiceErr(r.Context(), w, err)
		return
	}

	sendMessage(r.Context(), w, "Notification deleted")
}
