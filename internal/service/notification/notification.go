package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/repository"
	"github.com/SanujaKob/Task-Management-Application-3/pkg/memstore"
)

type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	Update(ctx context.Context, n domain.Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Notification, error)
}

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
}

type Service struct {
	notifRepo NotificationRepository
	taskRepo  TaskRepository
	txManager memstore.TransactionManagerInterface
	lg        *slog.Logger
}

func NewService(notifRepo NotificationRepository,
	taskRepo TaskRepository,
	txManager memstore.TransactionManagerInterface,
	lg *slog.Logger) *Service {
	return &Service{
		notifRepo: notifRepo,
		taskRepo:  taskRepo,
		txManager: txManager,
		lg:        lg,
	}
}

// Notify appends a notification record. It never validates the recipient;
// a nil recipient marks a broadcast.
func (s *Service) Notify(ctx context.Context, typ domain.NotificationType, taskID *uuid.UUID, message string, recipient *uuid.UUID) (*domain.Notification, error) {
	n := domain.Notification{
		ID:          uuid.New(),
		Type:        typ,
		TaskID:      taskID,
		Message:     message,
		IsRead:      false,
		RecipientID: recipient,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.notifRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to store notification: %w", err)
	}

	s.lg.Info("notification created",
		slog.String("type", string(typ)),
		slog.Bool("broadcast", recipient == nil))
	return &n, nil
}

// TaskAssigned emits a TASK_ASSIGNED notification addressed to the assignee.
func (s *Service) TaskAssigned(ctx context.Context, task domain.Task, assignee uuid.UUID) error {
	message := fmt.Sprintf("you were assigned task %q", task.Title)
	_, err := s.Notify(ctx, domain.NotifTaskAssigned, &task.ID, message, &assignee)
	return err
}

// TaskUpdated emits a broadcast TASK_UPDATED notification.
func (s *Service) TaskUpdated(ctx context.Context, task domain.Task, message string) error {
	_, err := s.Notify(ctx, domain.NotifTaskUpdated, &task.ID, message, nil)
	return err
}

// Sweep walks every task with a due date and emits TASK_OVERDUE for dates in
// the past and TASK_DUE_SOON for dates falling today or tomorrow. Exactly
// one notification per qualifying task per invocation; repeated sweeps
// re-emit duplicates — there is no watermark.
func (s *Service) Sweep(ctx context.Context, today civil.Date) (*domain.SweepResult, error) {
	var result domain.SweepResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		tasks, err := s.taskRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		tomorrow := today.AddDays(1)
		for _, task := range tasks {
			if task.DueDate == nil {
				continue
			}
			switch {
			case task.DueDate.Before(today):
				message := fmt.Sprintf("task %q is overdue (due %s)", task.Title, task.DueDate)
				if _, err := s.Notify(txCtx, domain.NotifTaskOverdue, &task.ID, message, task.AssigneeID); err != nil {
					return err
				}
				result.Overdue++
			case *task.DueDate == today || *task.DueDate == tomorrow:
				message := fmt.Sprintf("task %q is due soon (due %s)", task.Title, task.DueDate)
				if _, err := s.Notify(txCtx, domain.NotifTaskDueSoon, &task.ID, message, task.AssigneeID); err != nil {
					return err
				}
				result.DueSoon++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("due date sweep completed",
		slog.Int("overdue", result.Overdue),
		slog.Int("due_soon", result.DueSoon))
	return &result, nil
}

// List returns the caller's notifications: admins see everything, everyone
// else sees broadcasts plus notifications addressed to them.
func (s *Service) List(ctx context.Context, caller domain.User, filter domain.NotificationFilter) ([]domain.Notification, error) {
	all, err := s.notifRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	items := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if !visibleTo(caller, n) {
			continue
		}
		if filter.IsRead != nil && n.IsRead != *filter.IsRead {
			continue
		}
		items = append(items, n)
	}

	// Map iteration order is random; newest-first keeps pagination stable.
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return paginate(items, filter.Offset, filter.Limit), nil
}

// MarkRead flips the read flag. Marking an already-read notification is a
// no-op, not an error.
func (s *Service) MarkRead(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.Notification, error) {
	var marked *domain.Notification

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		n, err := s.getScoped(txCtx, caller, id)
		if err != nil {
			return err
		}
		if !n.IsRead {
			n.IsRead = true
			if err := s.notifRepo.Update(txCtx, *n); err != nil {
				return fmt.Errorf("failed to mark notification read: %w", err)
			}
		}
		marked = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return marked, nil
}

// MarkAllRead marks every notification in the caller's scope as read.
func (s *Service) MarkAllRead(ctx context.Context, caller domain.User) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		all, err := s.notifRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list notifications: %w", err)
		}
		for _, n := range all {
			if !visibleTo(caller, n) || n.IsRead {
				continue
			}
			n.IsRead = true
			if err := s.notifRepo.Update(txCtx, n); err != nil {
				return fmt.Errorf("failed to mark notification read: %w", err)
			}
		}
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, caller domain.User, id uuid.UUID) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getScoped(txCtx, caller, id); err != nil {
			return err
		}
		if err := s.notifRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete notification: %w", err)
		}
		return nil
	})
}

// getScoped fetches a notification and hides it behind not-found when it is
// outside the caller's scope.
func (s *Service) getScoped(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.Notification, error) {
	n, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	if !visibleTo(caller, *n) {
		return nil, domain.ErrNotificationNotFound
	}
	return n, nil
}

func visibleTo(caller domain.User, n domain.Notification) bool {
	if caller.Role == domain.RoleAdmin {
		return true
	}
	return n.RecipientID == nil || *n.RecipientID == caller.ID
}

func paginate(items []domain.Notification, offset, limit int) []domain.Notification {
	if offset >= len(items) {
		return []domain.Notification{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
