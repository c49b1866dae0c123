package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/repository"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/access"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder domain.Reminder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTask(ctx context.Context, taskID uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTask(ctx context.Context, taskID uuid.UUID) error
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment domain.Attachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTask(ctx context.Context, taskID uuid.UUID) error
}

// Child records are reachable only through a task the caller can see, so
// every operation below runs the parent through the visibility gate first.
// A child whose parent linkage does not match the URL is reported as not
// found, indistinguishable from an absent id.

func (s *Service) CreateReminder(ctx context.Context, caller domain.User, taskID uuid.UUID, req domain.CreateReminderRequest) (*domain.Reminder, error) {
	var reminder domain.Reminder
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getVisible(txCtx, caller, taskID); err != nil {
			return err
		}
		reminder = domain.Reminder{
			ID:        uuid.New(),
			TaskID:    taskID,
			RemindAt:  req.RemindAt,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.reminderRepo.Create(txCtx, reminder); err != nil {
			return fmt.Errorf("failed to create reminder: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("reminder created",
		slog.String("task_id", taskID.String()),
		slog.Time("remind_at", reminder.RemindAt))
	return &reminder, nil
}

func (s *Service) ListReminders(ctx context.Context, caller domain.User, taskID uuid.UUID) ([]domain.Reminder, error) {
	if _, err := s.getVisible(ctx, caller, taskID); err != nil {
		return nil, err
	}
	reminders, err := s.reminderRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].RemindAt.Before(reminders[j].RemindAt)
	})
	return reminders, nil
}

func (s *Service) DeleteReminder(ctx context.Context, caller domain.User, taskID, reminderID uuid.UUID) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getVisible(txCtx, caller, taskID); err != nil {
			return err
		}
		reminder, err := s.reminderRepo.GetByID(txCtx, reminderID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.ErrReminderNotFound
			}
			return fmt.Errorf("failed to get reminder: %w", err)
		}
		if reminder.TaskID != taskID {
			return domain.ErrReminderNotFound
		}
		if err := s.reminderRepo.Delete(txCtx, reminderID); err != nil {
			return fmt.Errorf("failed to delete reminder: %w", err)
		}
		return nil
	})
}

func (s *Service) CreateComment(ctx context.Context, caller domain.User, taskID uuid.UUID, req domain.CreateCommentRequest) (*domain.Comment, error) {
	var comment domain.Comment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getVisible(txCtx, caller, taskID); err != nil {
			return err
		}
		comment = domain.Comment{
			ID:        uuid.New(),
			TaskID:    taskID,
			AuthorID:  caller.ID,
			Body:      req.Body,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.commentRepo.Create(txCtx, comment); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *Service) ListComments(ctx context.Context, caller domain.User, taskID uuid.UUID) ([]domain.Comment, error) {
	if _, err := s.getVisible(ctx, caller, taskID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

// DeleteComment allows the comment's author to remove it; otherwise the
// caller must pass the task mutate guard.
func (s *Service) DeleteComment(ctx context.Context, caller domain.User, taskID, commentID uuid.UUID) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		task, err := s.getVisible(txCtx, caller, taskID)
		if err != nil {
			return err
		}
		comment, err := s.commentRepo.GetByID(txCtx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.ErrCommentNotFound
			}
			return fmt.Errorf("failed to get comment: %w", err)
		}
		if comment.TaskID != taskID {
			return domain.ErrCommentNotFound
		}
		if comment.AuthorID != caller.ID {
			if err := access.RequireMutate(caller, task.CreatorID); err != nil {
				return err
			}
		}
		if err := s.commentRepo.Delete(txCtx, commentID); err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}
		return nil
	})
}

func (s *Service) CreateAttachment(ctx context.Context, caller domain.User, taskID uuid.UUID, req domain.CreateAttachmentRequest) (*domain.Attachment, error) {
	var attachment domain.Attachment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getVisible(txCtx, caller, taskID); err != nil {
			return err
		}
		attachment = domain.Attachment{
			ID:          uuid.New(),
			TaskID:      taskID,
			FileName:    req.FileName,
			ContentType: req.ContentType,
			SizeBytes:   req.SizeBytes,
			UploadedBy:  caller.ID,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.attachmentRepo.Create(txCtx, attachment); err != nil {
			return fmt.Errorf("failed to create attachment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (s *Service) ListAttachments(ctx context.Context, caller domain.User, taskID uuid.UUID) ([]domain.Attachment, error) {
	if _, err := s.getVisible(ctx, caller, taskID); err != nil {
		return nil, err
	}
	attachments, err := s.attachmentRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	sort.Slice(attachments, func(i, j int) bool {
		return attachments[i].CreatedAt.Before(attachments[j].CreatedAt)
	})
	return attachments, nil
}

func (s *Service) DeleteAttachment(ctx context.Context, caller domain.User, taskID, attachmentID uuid.UUID) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getVisible(txCtx, caller, taskID); err != nil {
			return err
		}
		attachment, err := s.attachmentRepo.GetByID(txCtx, attachmentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.ErrAttachmentNotFound
			}
			return fmt.Errorf("failed to get attachment: %w", err)
		}
		if attachment.TaskID != taskID {
			return domain.ErrAttachmentNotFound
		}
		if err := s.attachmentRepo.Delete(txCtx, attachmentID); err != nil {
			return fmt.Errorf("failed to delete attachment: %w", err)
		}
		return nil
	})
}
