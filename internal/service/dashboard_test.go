package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/repository"
)

func newDashboardFixture() (*DashboardService, *repository.TaskRepository, *repository.UserRepository) {
	taskRepo := repository.NewTaskRepository()
	teamRepo := repository.NewTeamRepository()
	userRepo := repository.NewUserRepository()
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDashboardService(taskRepo, teamRepo, userRepo, lg), taskRepo, userRepo
}

func TestOverviewCounts(t *testing.T) {
	svc, taskRepo, _ := newDashboardFixture()
	ctx := context.Background()
	admin := domain.User{ID: uuid.New(), Role: domain.RoleAdmin}

	overdueDate := civil.DateOf(time.Now().UTC()).AddDays(-2)
	tasks := []domain.Task{
		{ID: uuid.New(), Title: "a", Status: domain.StatusCompleted, Priority: domain.PriorityHigh, CreatorID: admin.ID},
		{ID: uuid.New(), Title: "b", Status: domain.StatusInProgress, Priority: domain.PriorityHigh, CreatorID: admin.ID, DueDate: &overdueDate},
		{ID: uuid.New(), Title: "c", Status: domain.StatusNotStarted, Priority: domain.PriorityLow, CreatorID: admin.ID},
	}
	for _, task := range tasks {
		require.NoError(t, taskRepo.Create(ctx, task))
	}

	overview, err := svc.Overview(ctx, admin)
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalTasks)
	assert.Equal(t, 1, overview.ByStatus[domain.StatusCompleted])
	assert.Equal(t, 2, overview.ByPriority[domain.PriorityHigh])
	assert.Equal(t, 1, overview.OverdueTasks)
	assert.InDelta(t, 1.0/3.0, overview.CompletionRate, 1e-9)
}

func TestOverviewScopedByVisibility(t *testing.T) {
	svc, taskRepo, _ := newDashboardFixture()
	ctx := context.Background()
	caller := domain.User{ID: uuid.New(), Role: domain.RoleUser}

	require.NoError(t, taskRepo.Create(ctx, domain.Task{ID: uuid.New(), Title: "mine", Status: domain.StatusNotStarted, Priority: domain.PriorityMedium, CreatorID: caller.ID}))
	require.NoError(t, taskRepo.Create(ctx, domain.Task{ID: uuid.New(), Title: "foreign", Status: domain.StatusNotStarted, Priority: domain.PriorityMedium, CreatorID: uuid.New()}))

	overview, err := svc.Overview(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.TotalTasks)
}

func TestWorkloadGroupsByAssignee(t *testing.T) {
	svc, taskRepo, userRepo := newDashboardFixture()
	ctx := context.Background()
	admin := domain.User{ID: uuid.New(), Role: domain.RoleAdmin}

	worker := domain.User{ID: uuid.New(), Name: "Worker", Role: domain.RoleUser}
	require.NoError(t, userRepo.Create(ctx, worker))

	tasks := []domain.Task{
		{ID: uuid.New(), Title: "a", Status: domain.StatusInProgress, AssigneeID: &worker.ID, CreatorID: admin.ID},
		{ID: uuid.New(), Title: "b", Status: domain.StatusNotStarted, AssigneeID: &worker.ID, CreatorID: admin.ID},
		{ID: uuid.New(), Title: "done", Status: domain.StatusCompleted, AssigneeID: &worker.ID, CreatorID: admin.ID},
		{ID: uuid.New(), Title: "nobody", Status: domain.StatusNotStarted, CreatorID: admin.ID},
	}
	for _, task := range tasks {
		require.NoError(t, taskRepo.Create(ctx, task))
	}

	workload, err := svc.Workload(ctx, admin)
	require.NoError(t, err)

	require.Len(t, workload.Assignees, 1)
	assert.Equal(t, worker.ID.String(), workload.Assignees[0].AssigneeID)
	assert.Equal(t, "Worker", workload.Assignees[0].Name)
	assert.Equal(t, 2, workload.Assignees[0].OpenTasks, "completed tasks are excluded")
	assert.Equal(t, 1, workload.Unassigned)
}
