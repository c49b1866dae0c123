package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *slog.Logger
}

func NewHandler(services *service.Services, logger *slog.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestLogger())
	router.Use(h.rateLimiter())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(config))

	router.GET("/health", h.Health)

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	protected := api.Group("", h.authRequired())

	users := protected.Group("/users")
	{
		users.GET("/me", h.Me)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
	}

	teams := protected.Group("/teams")
	{
		teams.POST("", h.CreateTeam)
		teams.GET("", h.ListTeams)
		teams.GET("/:id", h.GetTeam)
		teams.POST("/:id/members", h.AddTeamMember)
		teams.POST("/:id/managers", h.AddTeamManager)
	}

	tasks := protected.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.POST("/bulk/status", h.BulkSetStatus)
		tasks.POST("/bulk/delete", h.BulkDeleteTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.ReplaceTask)
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
		tasks.PATCH("/:id/status", h.SetTaskStatus)
		tasks.PATCH("/:id/progress", h.SetTaskProgress)
		tasks.PATCH("/:id/assignee", h.SetTaskAssignee)

		tasks.POST("/:id/reminders", h.CreateReminder)
		tasks.GET("/:id/reminders", h.ListReminders)
		tasks.DELETE("/:id/reminders/:childID", h.DeleteReminder)
		tasks.POST("/:id/comments", h.CreateComment)
		tasks.GET("/:id/comments", h.ListComments)
		tasks.DELETE("/:id/comments/:childID", h.DeleteComment)
		tasks.POST("/:id/attachments", h.CreateAttachment)
		tasks.GET("/:id/attachments", h.ListAttachments)
		tasks.DELETE("/:id/attachments/:childID", h.DeleteAttachment)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.PATCH("/read-all", h.MarkAllNotificationsRead)
		notifications.PATCH("/:id/read", h.MarkNotificationRead)
		notifications.DELETE("/:id", h.DeleteNotification)
		notifications.POST("/sweep", h.RunSweep)
	}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/overview", h.Overview)
		dashboard.GET("/workload", h.Workload)
	}

	return router
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) errorResponse(c *gin.Context, status int, code, message string) {
	h.logger.Error("handler error", "code", code, "message", message, "status", status)
	c.JSON(status, domain.ErrorResponse{
		Error: domain.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func (h *Handler) successResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// serviceError maps domain sentinels onto the HTTP error taxonomy:
// unauthenticated, forbidden, not-found and validation failures stay
// distinguishable by status and code.
func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		h.errorResponse(c, http.StatusUnauthorized, "UNAUTHENTICATED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		h.errorResponse(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		h.errorResponse(c, http.StatusConflict, "EMAIL_TAKEN", err.Error())
	case errors.Is(err, domain.ErrTeamExists):
		h.errorResponse(c, http.StatusConflict, "TEAM_EXISTS", err.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrReminderNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrAttachmentNotFound):
		h.errorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		h.errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
