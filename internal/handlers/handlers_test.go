package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/repository"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/auth"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/notification"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/task"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/team"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/user"
	"github.com/SanujaKob/Task-Management-Application-3/pkg/memstore"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewUserRepository()
	teamRepo := repository.NewTeamRepository()
	taskRepo := repository.NewTaskRepository()
	notifRepo := repository.NewNotificationRepository()
	tokenRepo := repository.NewTokenRepository()
	txManager := memstore.NewTxManager()
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))

	notifService := notification.NewService(notifRepo, taskRepo, txManager, lg)
	services := &service.Services{
		AuthService:         auth.NewService(userRepo, tokenRepo, txManager, lg),
		UserService:         user.NewService(userRepo, lg),
		TeamService:         team.NewService(teamRepo, userRepo, txManager, lg),
		TaskService:         task.NewService(taskRepo, teamRepo, repository.NewReminderRepository(), repository.NewCommentRepository(), repository.NewAttachmentRepository(), notifService, txManager, lg),
		NotificationService: notifService,
		DashboardService:    service.NewDashboardService(taskRepo, teamRepo, userRepo, lg),
	}

	return NewHandler(services, lg).InitRoutes()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, email string, role domain.Role) (string, domain.User) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    email,
		"name":     "Test User",
		"password": "pw",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp domain.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthIsOpen(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(t, w))

	w = doJSON(t, router, http.MethodGet, "/api/v1/tasks", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginFlow(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "flow@example.com", domain.RoleUser)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "flow@example.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "flow@example.com",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTaskLifecycle(t *testing.T) {
	router := newTestRouter(t)
	ownerToken, _ := registerUser(t, router, "owner@example.com", domain.RoleUser)
	strangerToken, _ := registerUser(t, router, "stranger@example.com", domain.RoleUser)

	w := doJSON(t, router, http.MethodPost, "/api/v1/tasks", ownerToken, gin.H{
		"title":    "ship feature",
		"priority": "high",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created domain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	taskPath := "/api/v1/tasks/" + created.ID.String()

	w = doJSON(t, router, http.MethodGet, taskPath, ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Existing but invisible: forbidden, not missing.
	w = doJSON(t, router, http.MethodGet, taskPath, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w))

	w = doJSON(t, router, http.MethodGet, "/api/v1/tasks/00000000-0000-0000-0000-000000000001", ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPatch, taskPath+"/progress", ownerToken, gin.H{"progress": 101})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))

	w = doJSON(t, router, http.MethodDelete, taskPath, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodDelete, taskPath, ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, taskPath, ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTasksInvalidFilter(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "filters@example.com", domain.RoleUser)

	w := doJSON(t, router, http.MethodGet, "/api/v1/tasks?status=bogus", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/tasks?limit=500", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignmentNotification(t *testing.T) {
	router := newTestRouter(t)
	creatorToken, _ := registerUser(t, router, "creator@example.com", domain.RoleUser)
	assigneeToken, assignee := registerUser(t, router, "assignee@example.com", domain.RoleUser)

	w := doJSON(t, router, http.MethodPost, "/api/v1/tasks", creatorToken, gin.H{
		"title":       "review PR",
		"assignee_id": assignee.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/notifications", assigneeToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []domain.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, domain.NotifTaskAssigned, items[0].Type)
	assert.False(t, items[0].IsRead)

	readPath := "/api/v1/notifications/" + items[0].ID.String() + "/read"
	w = doJSON(t, router, http.MethodPatch, readPath, assigneeToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Idempotent re-read.
	w = doJSON(t, router, http.MethodPatch, readPath, assigneeToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSweepGuard(t *testing.T) {
	router := newTestRouter(t)
	userToken, _ := registerUser(t, router, "plain@example.com", domain.RoleUser)
	adminToken, _ := registerUser(t, router, "boss@example.com", domain.RoleAdmin)

	w := doJSON(t, router, http.MethodPost, "/api/v1/notifications/sweep", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/notifications/sweep", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTeamEndpointsAdminOnly(t *testing.T) {
	router := newTestRouter(t)
	userToken, _ := registerUser(t, router, "pleb@example.com", domain.RoleUser)
	adminToken, _ := registerUser(t, router, "root@example.com", domain.RoleAdmin)

	w := doJSON(t, router, http.MethodPost, "/api/v1/teams", userToken, gin.H{"name": "denied"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/teams", adminToken, gin.H{"name": "allowed"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/teams", adminToken, gin.H{"name": "allowed"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "TEAM_EXISTS", errorCode(t, w))
}

func TestDashboardEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "dash@example.com", domain.RoleUser)

	w := doJSON(t, router, http.MethodPost, "/api/v1/tasks", token, gin.H{"title": "one"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/overview", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var overview domain.OverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, 1, overview.TotalTasks)

	w = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/workload", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var workload domain.WorkloadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &workload))
	assert.Equal(t, 1, workload.Unassigned)
}

func TestMalformedIDParam(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "ids@example.com", domain.RoleUser)

	w := doJSON(t, router, http.MethodGet, "/api/v1/tasks/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, w))
}
