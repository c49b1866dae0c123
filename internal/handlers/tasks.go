package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

const (
	taskListDefaultLimit = 20
	taskListMaxLimit     = 100
)

func (h *Handler) ListTasks(c *gin.Context) {
	filter, ok := h.parseTaskFilter(c)
	if !ok {
		return
	}

	tasks, err := h.services.TaskService.List(c.Request.Context(), callerFrom(c), filter)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req domain.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	task, err := h.services.TaskService.Create(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, task)
}

func (h *Handler) GetTask(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.services.TaskService.Get(c.Request.Context(), callerFrom(c), taskID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, task)
}

func (h *Handler) ReplaceTask(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	task, err := h.services.TaskService.Replace(c.Request.Context(), callerFrom(c), taskID, req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	task, err := h.services.TaskService.Update(c.Request.Context(), callerFrom(c), taskID, req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.TaskService.Delete(c.Request.Context(), callerFrom(c), taskID); err != nil {
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) SetTaskStatus(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	task, err := h.services.TaskService.SetStatus(c.Request.Context(), callerFrom(c), taskID, req.Status)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, task)
}

func (h *Handler) SetTaskProgress(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.SetProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	task, err := h.services.TaskService.SetProgress(c.Request.Context(), callerFrom(c), taskID, req.Progress)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, task)
}

func (h *Handler) SetTaskAssignee(c *gin.Context) {
	taskID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.SetAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	task, err := h.services.TaskService.SetAssignee(c.Request.Context(), callerFrom(c), taskID, req.AssigneeID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, task)
}

func (h *Handler) BulkSetStatus(c *gin.Context) {
	var req domain.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	tasks, err := h.services.TaskService.BulkSetStatus(c.Request.Context(), callerFrom(c), req.TaskIDs, req.Status)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, tasks)
}

func (h *Handler) BulkDeleteTasks(c *gin.Context) {
	var req domain.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	if err := h.services.TaskService.BulkDelete(c.Request.Context(), callerFrom(c), req.TaskIDs); err != nil {
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) parseTaskFilter(c *gin.Context) (domain.TaskFilter, bool) {
	filter := domain.TaskFilter{
		Limit:  taskListDefaultLimit,
		Search: c.Query("search"),
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > taskListMaxLimit {
			h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "limit must be between 1 and 100")
			return filter, false
		}
		filter.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "offset must not be negative")
			return filter, false
		}
		filter.Offset = offset
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.Status(raw)
		if !status.IsValid() {
			h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid status filter")
			return filter, false
		}
		filter.Status = status
	}
	if raw := c.Query("priority"); raw != "" {
		priority := domain.Priority(raw)
		if !priority.IsValid() {
			h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid priority filter")
			return filter, false
		}
		filter.Priority = priority
	}
	if raw := c.Query("assignee_id"); raw != "" {
		assigneeID, err := uuid.Parse(raw)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "assignee_id must be a valid uuid")
			return filter, false
		}
		filter.AssigneeID = &assigneeID
	}

	return filter, true
}
