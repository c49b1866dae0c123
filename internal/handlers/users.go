package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Me(c *gin.Context) {
	h.successResponse(c, http.StatusOK, callerFrom(c))
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.services.UserService.List(c.Request.Context(), callerFrom(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	userID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.services.UserService.Get(c.Request.Context(), callerFrom(c), userID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, user)
}
