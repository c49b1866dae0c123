package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	default:
		return false
	}
}

const (
	titleMaxLength = 200
	ProgressMin    = 0
	ProgressMax    = 100
)

type Task struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Priority    Priority    `json:"priority"`
	Status      Status      `json:"status"`
	Progress    int         `json:"progress"`
	DueDate     *civil.Date `json:"due_date"`
	AssigneeID  *uuid.UUID  `json:"assignee_id"`
	TeamID      *uuid.UUID  `json:"team_id"`
	CreatorID   uuid.UUID   `json:"creator_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateTaskRequest carries all editable fields; it doubles as the payload
// for full replacement (PUT).
type CreateTaskRequest struct {
	Title       string      `json:"title" binding:"required"`
	Description *string     `json:"description"`
	Priority    Priority    `json:"priority"`
	Status      Status      `json:"status"`
	Progress    int         `json:"progress"`
	DueDate     *civil.Date `json:"due_date"`
	AssigneeID  *uuid.UUID  `json:"assignee_id"`
	TeamID      *uuid.UUID  `json:"team_id"`
}

func (r *CreateTaskRequest) ApplyDefaults() {
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if r.Status == "" {
		r.Status = StatusNotStarted
	}
}

func (r *CreateTaskRequest) Validate() error {
	if err := ValidateTitle(r.Title); err != nil {
		return err
	}
	if !r.Priority.IsValid() {
		return fmt.Errorf("%w: invalid priority %q", ErrValidation, r.Priority)
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, r.Status)
	}
	return ValidateProgress(r.Progress)
}

// UpdateTaskRequest is the PATCH payload: only non-nil fields are applied.
type UpdateTaskRequest struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Priority    *Priority   `json:"priority"`
	Status      *Status     `json:"status"`
	Progress    *int        `json:"progress"`
	DueDate     *civil.Date `json:"due_date"`
	AssigneeID  *uuid.UUID  `json:"assignee_id"`
	TeamID      *uuid.UUID  `json:"team_id"`
}

func (r *UpdateTaskRequest) Validate() error {
	if r.Title != nil {
		if err := ValidateTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Priority != nil && !r.Priority.IsValid() {
		return fmt.Errorf("%w: invalid priority %q", ErrValidation, *r.Priority)
	}
	if r.Status != nil && !r.Status.IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, *r.Status)
	}
	if r.Progress != nil {
		return ValidateProgress(*r.Progress)
	}
	return nil
}

func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if len(title) > titleMaxLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrValidation, titleMaxLength)
	}
	return nil
}

func ValidateProgress(progress int) error {
	if progress < ProgressMin || progress > ProgressMax {
		return fmt.Errorf("%w: progress must be between %d and %d", ErrValidation, ProgressMin, ProgressMax)
	}
	return nil
}

type SetStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

type SetProgressRequest struct {
	Progress int `json:"progress"`
}

type SetAssigneeRequest struct {
	AssigneeID *uuid.UUID `json:"assignee_id"`
}

type BulkStatusRequest struct {
	TaskIDs []uuid.UUID `json:"task_ids" binding:"required"`
	Status  Status      `json:"status" binding:"required"`
}

type BulkDeleteRequest struct {
	TaskIDs []uuid.UUID `json:"task_ids" binding:"required"`
}

// TaskFilter narrows a task listing; zero values mean "no constraint".
type TaskFilter struct {
	Status     Status
	Priority   Priority
	AssigneeID *uuid.UUID
	Search     string
	Limit      int
	Offset     int
}
