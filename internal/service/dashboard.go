package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/visibility"
)

type DashboardTaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
}

type DashboardTeamRepository interface {
	List(ctx context.Context) ([]domain.Team, error)
}

type DashboardUserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// DashboardService aggregates over the caller-visible task set only; two
// callers with different scopes see different numbers.
type DashboardService struct {
	taskRepo DashboardTaskRepository
	teamRepo DashboardTeamRepository
	userRepo DashboardUserRepository
	lg       *slog.Logger
}

func NewDashboardService(taskRepo DashboardTaskRepository,
	teamRepo DashboardTeamRepository,
	userRepo DashboardUserRepository,
	lg *slog.Logger) *DashboardService {
	return &DashboardService{
		taskRepo: taskRepo,
		teamRepo: teamRepo,
		userRepo: userRepo,
		lg:       lg,
	}
}

func (s *DashboardService) Overview(ctx context.Context, caller domain.User) (*domain.OverviewResponse, error) {
	visible, err := s.visibleTasks(ctx, caller)
	if err != nil {
		return nil, err
	}

	overview := &domain.OverviewResponse{
		TotalTasks: len(visible),
		ByStatus:   make(map[domain.Status]int),
		ByPriority: make(map[domain.Priority]int),
	}

	today := civil.DateOf(time.Now().UTC())
	completed := 0
	for _, task := range visible {
		overview.ByStatus[task.Status]++
		overview.ByPriority[task.Priority]++
		if task.Status == domain.StatusCompleted {
			completed++
		} else if task.DueDate != nil && task.DueDate.Before(today) {
			overview.OverdueTasks++
		}
	}
	if len(visible) > 0 {
		overview.CompletionRate = float64(completed) / float64(len(visible))
	}

	return overview, nil
}

func (s *DashboardService) Workload(ctx context.Context, caller domain.User) (*domain.WorkloadResponse, error) {
	visible, err := s.visibleTasks(ctx, caller)
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int)
	workload := &domain.WorkloadResponse{Assignees: []domain.AssigneeWorkload{}}
	for _, task := range visible {
		if task.Status == domain.StatusCompleted {
			continue
		}
		if task.AssigneeID == nil {
			workload.Unassigned++
			continue
		}
		counts[*task.AssigneeID]++
	}

	for assigneeID, open := range counts {
		entry := domain.AssigneeWorkload{
			AssigneeID: assigneeID.String(),
			OpenTasks:  open,
		}
		if user, err := s.userRepo.GetByID(ctx, assigneeID); err == nil {
			entry.Name = user.Name
		}
		workload.Assignees = append(workload.Assignees, entry)
	}
	sort.Slice(workload.Assignees, func(i, j int) bool {
		if workload.Assignees[i].OpenTasks != workload.Assignees[j].OpenTasks {
			return workload.Assignees[i].OpenTasks > workload.Assignees[j].OpenTasks
		}
		return workload.Assignees[i].AssigneeID < workload.Assignees[j].AssigneeID
	})

	return workload, nil
}

func (s *DashboardService) visibleTasks(ctx context.Context, caller domain.User) ([]domain.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return visibility.VisibleTasks(caller, tasks, teams), nil
}
