package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.services.DashboardService.Overview(c.Request.Context(), callerFrom(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, overview)
}

func (h *Handler) Workload(c *gin.Context) {
	workload, err := h.services.DashboardService.Workload(c.Request.Context(), callerFrom(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, workload)
}
