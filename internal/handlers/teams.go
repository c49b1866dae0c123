package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

func (h *Handler) CreateTeam(c *gin.Context) {
	var req domain.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	team, err := h.services.TeamService.Create(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, team)
}

func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.services.TeamService.List(c.Request.Context(), callerFrom(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, teams)
}

func (h *Handler) GetTeam(c *gin.Context) {
	teamID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.services.TeamService.Get(c.Request.Context(), callerFrom(c), teamID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, team)
}

func (h *Handler) AddTeamMember(c *gin.Context) {
	h.addToTeam(c, false)
}

func (h *Handler) AddTeamManager(c *gin.Context) {
	h.addToTeam(c, true)
}

func (h *Handler) addToTeam(c *gin.Context, asManager bool) {
	teamID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.TeamMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	var (
		team *domain.Team
		err  error
	)
	if asManager {
		team, err = h.services.TeamService.AddManager(c.Request.Context(), callerFrom(c), teamID, req.UserID)
	} else {
		team, err = h.services.TeamService.AddMember(c.Request.Context(), callerFrom(c), teamID, req.UserID)
	}
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, team)
}
