package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/repository"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/access"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/visibility"
	"github.com/SanujaKob/Task-Management-Application-3/pkg/memstore"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) error
	GetByID(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, taskID uuid.UUID) error
	List(ctx context.Context) ([]domain.Task, error)
}

type TeamRepository interface {
	List(ctx context.Context) ([]domain.Team, error)
}

// Notifier is the slice of the notification service the task service
// triggers on caller-visible mutations.
type Notifier interface {
	TaskAssigned(ctx context.Context, task domain.Task, assignee uuid.UUID) error
	TaskUpdated(ctx context.Context, task domain.Task, message string) error
}

type Service struct {
	taskRepo       TaskRepository
	teamRepo       TeamRepository
	reminderRepo   ReminderRepository
	commentRepo    CommentRepository
	attachmentRepo AttachmentRepository
	notifier       Notifier
	txManager      memstore.TransactionManagerInterface
	lg             *slog.Logger
}

func NewService(taskRepo TaskRepository,
	teamRepo TeamRepository,
	reminderRepo ReminderRepository,
	commentRepo CommentRepository,
	attachmentRepo AttachmentRepository,
	notifier Notifier,
	txManager memstore.TransactionManagerInterface,
	lg *slog.Logger) *Service {
	return &Service{
		taskRepo:       taskRepo,
		teamRepo:       teamRepo,
		reminderRepo:   reminderRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		notifier:       notifier,
		txManager:      txManager,
		lg:             lg,
	}
}

// List returns the caller-visible tasks, filtered and paginated.
func (s *Service) List(ctx context.Context, caller domain.User, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	visible := visibility.VisibleTasks(caller, tasks, teams)
	visible = applyFilter(visible, filter)

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].CreatedAt.Before(visible[j].CreatedAt)
	})

	return paginate(visible, filter.Offset, filter.Limit), nil
}

func (s *Service) Create(ctx context.Context, caller domain.User, req domain.CreateTaskRequest) (*domain.Task, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		Progress:    req.Progress,
		DueDate:     req.DueDate,
		AssigneeID:  req.AssigneeID,
		TeamID:      req.TeamID,
		CreatorID:   caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.taskRepo.Create(txCtx, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		if task.AssigneeID != nil {
			if err := s.notifier.TaskAssigned(txCtx, task, *task.AssigneeID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("creator_id", caller.ID.String()))
	return &task, nil
}

// Get fetches a single task. A task outside the caller's visibility scope
// yields forbidden even though it exists; an unknown id yields not found.
func (s *Service) Get(ctx context.Context, caller domain.User, taskID uuid.UUID) (*domain.Task, error) {
	return s.getVisible(ctx, caller, taskID)
}

// Replace swaps out every editable field (PUT semantics).
func (s *Service) Replace(ctx context.Context, caller domain.User, taskID uuid.UUID, req domain.CreateTaskRequest) (*domain.Task, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Task
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.getForMutation(txCtx, caller, taskID)
		if err != nil {
			return err
		}

		task := domain.Task{
			ID:          existing.ID,
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			Status:      req.Status,
			Progress:    req.Progress,
			DueDate:     req.DueDate,
			AssigneeID:  req.AssigneeID,
			TeamID:      req.TeamID,
			CreatorID:   existing.CreatorID,
			CreatedAt:   existing.CreatedAt,
			UpdatedAt:   time.Now().UTC(),
		}
		if err := s.taskRepo.Update(txCtx, task); err != nil {
			return fmt.Errorf("failed to replace task: %w", err)
		}
		updated = &task

		return s.notifier.TaskUpdated(txCtx, task, fmt.Sprintf("task %q was updated", task.Title))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Update applies only the provided fields (PATCH semantics).
func (s *Service) Update(ctx context.Context, caller domain.User, taskID uuid.UUID, req domain.UpdateTaskRequest) (*domain.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Task
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.getForMutation(txCtx, caller, taskID)
		if err != nil {
			return err
		}

		task := *existing
		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = req.Description
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		if req.Status != nil {
			task.Status = *req.Status
		}
		if req.Progress != nil {
			task.Progress = *req.Progress
		}
		if req.DueDate != nil {
			task.DueDate = req.DueDate
		}
		if req.AssigneeID != nil {
			task.AssigneeID = req.AssigneeID
		}
		if req.TeamID != nil {
			task.TeamID = req.TeamID
		}
		task.UpdatedAt = time.Now().UTC()

		if err := s.taskRepo.Update(txCtx, task); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		updated = &task

		return s.notifier.TaskUpdated(txCtx, task, fmt.Sprintf("task %q was updated", task.Title))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a task together with its reminders, comments and
// attachments.
func (s *Service) Delete(ctx context.Context, caller domain.User, taskID uuid.UUID) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getForMutation(txCtx, caller, taskID); err != nil {
			return err
		}
		return s.deleteWithChildren(txCtx, taskID)
	})
	if err != nil {
		return err
	}

	s.lg.Info("task deleted", slog.String("task_id", taskID.String()))
	return nil
}

func (s *Service) SetStatus(ctx context.Context, caller domain.User, taskID uuid.UUID, status domain.Status) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, status)
	}

	var updated *domain.Task
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.getForMutation(txCtx, caller, taskID)
		if err != nil {
			return err
		}

		task := *existing
		task.Status = status
		task.UpdatedAt = time.Now().UTC()
		if err := s.taskRepo.Update(txCtx, task); err != nil {
			return fmt.Errorf("failed to set task status: %w", err)
		}
		updated = &task

		return s.notifier.TaskUpdated(txCtx, task, fmt.Sprintf("task %q status changed to %s", task.Title, status))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) SetProgress(ctx context.Context, caller domain.User, taskID uuid.UUID, progress int) (*domain.Task, error) {
	if err := domain.ValidateProgress(progress); err != nil {
		return nil, err
	}

	var updated *domain.Task
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.getForMutation(txCtx, caller, taskID)
		if err != nil {
			return err
		}

		task := *existing
		task.Progress = progress
		task.UpdatedAt = time.Now().UTC()
		if err := s.taskRepo.Update(txCtx, task); err != nil {
			return fmt.Errorf("failed to set task progress: %w", err)
		}
		updated = &task

		return s.notifier.TaskUpdated(txCtx, task, fmt.Sprintf("task %q progress changed to %d%%", task.Title, progress))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) SetAssignee(ctx context.Context, caller domain.User, taskID uuid.UUID, assigneeID *uuid.UUID) (*domain.Task, error) {
	var updated *domain.Task
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.getForMutation(txCtx, caller, taskID)
		if err != nil {
			return err
		}

		task := *existing
		task.AssigneeID = assigneeID
		task.UpdatedAt = time.Now().UTC()
		if err := s.taskRepo.Update(txCtx, task); err != nil {
			return fmt.Errorf("failed to set task assignee: %w", err)
		}
		updated = &task

		if assigneeID != nil {
			return s.notifier.TaskAssigned(txCtx, task, *assigneeID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// BulkSetStatus updates the given tasks, silently skipping ids that are
// unknown or that the caller may not mutate, and returns the tasks it
// changed.
func (s *Service) BulkSetStatus(ctx context.Context, caller domain.User, taskIDs []uuid.UUID, status domain.Status) ([]domain.Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, status)
	}

	updated := make([]domain.Task, 0, len(taskIDs))
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, taskID := range taskIDs {
			existing, err := s.getForMutation(txCtx, caller, taskID)
			if err != nil {
				if errors.Is(err, domain.ErrTaskNotFound) || errors.Is(err, domain.ErrForbidden) {
					continue
				}
				return err
			}

			task := *existing
			task.Status = status
			task.UpdatedAt = time.Now().UTC()
			if err := s.taskRepo.Update(txCtx, task); err != nil {
				return fmt.Errorf("failed to set task status: %w", err)
			}
			if err := s.notifier.TaskUpdated(txCtx, task, fmt.Sprintf("task %q status changed to %s", task.Title, status)); err != nil {
				return err
			}
			updated = append(updated, task)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("bulk status update completed",
		slog.Int("requested", len(taskIDs)),
		slog.Int("updated", len(updated)))
	return updated, nil
}

// BulkDelete removes the given tasks and their children, silently skipping
// unknown or denied ids.
func (s *Service) BulkDelete(ctx context.Context, caller domain.User, taskIDs []uuid.UUID) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, taskID := range taskIDs {
			if _, err := s.getForMutation(txCtx, caller, taskID); err != nil {
				if errors.Is(err, domain.ErrTaskNotFound) || errors.Is(err, domain.ErrForbidden) {
					continue
				}
				return err
			}
			if err := s.deleteWithChildren(txCtx, taskID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) deleteWithChildren(ctx context.Context, taskID uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if err := s.reminderRepo.DeleteByTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task reminders: %w", err)
	}
	if err := s.commentRepo.DeleteByTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task comments: %w", err)
	}
	if err := s.attachmentRepo.DeleteByTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task attachments: %w", err)
	}
	return nil
}

// getVisible applies the read gate: not found for unknown ids, forbidden for
// tasks outside the caller's visibility scope.
func (s *Service) getVisible(ctx context.Context, caller domain.User, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if !visibility.CanView(caller, *task, teams) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

// getForMutation applies the mutate guard. Visibility is deliberately not
// consulted here: managers hold blanket mutate rights on tasks regardless
// of team scoping.
func (s *Service) getForMutation(ctx context.Context, caller domain.User, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if err := access.RequireMutate(caller, task.CreatorID); err != nil {
		return nil, err
	}
	return task, nil
}

func applyFilter(tasks []domain.Task, filter domain.TaskFilter) []domain.Task {
	res := make([]domain.Task, 0, len(tasks))
	search := strings.ToLower(filter.Search)
	for _, task := range tasks {
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && task.Priority != filter.Priority {
			continue
		}
		if filter.AssigneeID != nil && (task.AssigneeID == nil || *task.AssigneeID != *filter.AssigneeID) {
			continue
		}
		if search != "" && !matchesSearch(task, search) {
			continue
		}
		res = append(res, task)
	}
	return res
}

func matchesSearch(task domain.Task, search string) bool {
	if strings.Contains(strings.ToLower(task.Title), search) {
		return true
	}
	return task.Description != nil && strings.Contains(strings.ToLower(*task.Description), search)
}

func paginate(tasks []domain.Task, offset, limit int) []domain.Task {
	if offset >= len(tasks) {
		return []domain.Task{}
	}
	tasks = tasks[offset:]
	if limit > 0 && limit < len(tasks) {
		tasks = tasks[:limit]
	}
	return tasks
}
