package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

func (h *Handler) CreateReminder(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	reminder, err := h.services.TaskService.CreateReminder(c.Request.Context(), callerFrom(c), taskID, req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, reminder)
}

func (h *Handler) ListReminders(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	reminders, err := h.services.TaskService.ListReminders(c.Request.Context(), callerFrom(c), taskID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	if reminders == nil {
		reminders = []domain.Reminder{}
	}
	h.successResponse(c, http.StatusOK, reminders)
}

func (h *Handler) DeleteReminder(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	reminderID, ok := h.parseIDParam(c, "childID")
	if !ok {
		return
	}

	if err := h.services.TaskService.DeleteReminder(c.Request.Context(), callerFrom(c), taskID, reminderID); err != nil {
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateComment(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	comment, err := h.services.TaskService.CreateComment(c.Request.Context(), callerFrom(c), taskID, req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, comment)
}

func (h *Handler) ListComments(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.services.TaskService.ListComments(c.Request.Context(), callerFrom(c), taskID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	h.successResponse(c, http.StatusOK, comments)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := h.parseIDParam(c, "childID")
	if !ok {
		return
	}

	if err := h.services.TaskService.DeleteComment(c.Request.Context(), callerFrom(c), taskID, commentID); err != nil {
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateAttachment(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	attachment, err := h.services.TaskService.CreateAttachment(c.Request.Context(), callerFrom(c), taskID, req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, attachment)
}

func (h *Handler) ListAttachments(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	attachments, err := h.services.TaskService.ListAttachments(c.Request.Context(), callerFrom(c), taskID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	if attachments == nil {
		attachments = []domain.Attachment{}
	}
	h.successResponse(c, http.StatusOK, attachments)
}

func (h *Handler) DeleteAttachment(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	attachmentID, ok := h.parseIDParam(c, "childID")
	if !ok {
		return
	}

	if err := h.services.TaskService.DeleteAttachment(c.Request.Context(), callerFrom(c), taskID, attachmentID); err != nil {
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
