package handlers

import (
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/access"
)

const (
	notificationListDefaultLimit = 50
	notificationListMaxLimit     = 200
)

func (h *Handler) ListNotifications(c *gin.Context) {
	filter := domain.NotificationFilter{Limit: notificationListDefaultLimit}

	if raw := c.Query("is_read"); raw != "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "is_read must be a boolean")
			return
		}
		filter.IsRead = &isRead
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > notificationListMaxLimit {
			h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "limit must be between 1 and 200")
			return
		}
		filter.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "offset must not be negative")
			return
		}
		filter.Offset = offset
	}

	items, err := h.services.NotificationService.List(c.Request.Context(), callerFrom(c), filter)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, items)
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	notificationID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	n, err := h.services.NotificationService.MarkRead(c.Request.Context(), callerFrom(c), notificationID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, n)
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.services.NotificationService.MarkAllRead(c.Request.Context(), callerFrom(c)); err != nil {
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteNotification(c *gin.Context) {
	notificationID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.NotificationService.Delete(c.Request.Context(), callerFrom(c), notificationID); err != nil {
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RunSweep triggers the due-date pass manually; there is no scheduler.
func (h *Handler) RunSweep(c *gin.Context) {
	if err := access.RequireRole(callerFrom(c), domain.RoleManager); err != nil {
		h.serviceError(c, err)
		return
	}

	result, err := h.services.NotificationService.Sweep(c.Request.Context(), civil.DateOf(time.Now().UTC()))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, result)
}
