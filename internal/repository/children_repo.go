package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

// Repositories for task child records. All three share the same shape:
// keyed by child id, with listing and bulk deletion by parent task.

type ReminderRepository struct {
	mu        sync.RWMutex
	reminders map[uuid.UUID]domain.Reminder
}

func NewReminderRepository() *ReminderRepository {
	return &ReminderRepository{reminders: make(map[uuid.UUID]domain.Reminder)}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder domain.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminders[reminder.ID] = reminder
	return nil
}

func (r *ReminderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reminder, ok := r.reminders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &reminder, nil
}

func (r *ReminderRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []domain.Reminder
	for _, reminder := range r.reminders {
		if reminder.TaskID == taskID {
			items = append(items, reminder)
		}
	}
	return items, nil
}

func (r *ReminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reminders[id]; !ok {
		return ErrNotFound
	}
	delete(r.reminders, id)
	return nil
}

func (r *ReminderRepository) DeleteByTask(ctx context.Context, taskID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, reminder := range r.reminders {
		if reminder.TaskID == taskID {
			delete(r.reminders, id)
		}
	}
	return nil
}

type CommentRepository struct {
	mu       sync.RWMutex
	comments map[uuid.UUID]domain.Comment
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[uuid.UUID]domain.Comment)}
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[comment.ID] = comment
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	comment, ok := r.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &comment, nil
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []domain.Comment
	for _, comment := range r.comments {
		if comment.TaskID == taskID {
			items = append(items, comment)
		}
	}
	return items, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *CommentRepository) DeleteByTask(ctx context.Context, taskID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, comment := range r.comments {
		if comment.TaskID == taskID {
			delete(r.comments, id)
		}
	}
	return nil
}

type AttachmentRepository struct {
	mu          sync.RWMutex
	attachments map[uuid.UUID]domain.Attachment
}

func NewAttachmentRepository() *AttachmentRepository {
	return &AttachmentRepository{attachments: make(map[uuid.UUID]domain.Attachment)}
}

func (r *AttachmentRepository) Create(ctx context.Context, attachment domain.Attachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attachments[attachment.ID] = attachment
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attachment, ok := r.attachments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &attachment, nil
}

func (r *AttachmentRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Attachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []domain.Attachment
	for _, attachment := range r.attachments {
		if attachment.TaskID == taskID {
			items = append(items, attachment)
		}
	}
	return items, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.attachments[id]; !ok {
		return ErrNotFound
	}
	delete(r.attachments, id)
	return nil
}

func (r *AttachmentRepository) DeleteByTask(ctx context.Context, taskID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, attachment := range r.attachments {
		if attachment.TaskID == taskID {
			delete(r.attachments, id)
		}
	}
	return nil
}
