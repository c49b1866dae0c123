package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifTaskAssigned NotificationType = "TASK_ASSIGNED"
	NotifTaskDueSoon  NotificationType = "TASK_DUE_SOON"
	NotifTaskOverdue  NotificationType = "TASK_OVERDUE"
	NotifTaskUpdated  NotificationType = "TASK_UPDATED"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotifTaskAssigned, NotifTaskDueSoon, NotifTaskOverdue, NotifTaskUpdated:
		return true
	default:
		return false
	}
}

// A nil RecipientID marks a broadcast notification, visible to every
// non-admin caller. RecipientID is never reassigned once set.
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	Type        NotificationType `json:"type"`
	TaskID      *uuid.UUID       `json:"task_id"`
	Message     string           `json:"message"`
	IsRead      bool             `json:"is_read"`
	RecipientID *uuid.UUID       `json:"recipient_id"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NotificationFilter narrows a notification listing.
type NotificationFilter struct {
	IsRead *bool
	Limit  int
	Offset int
}

// SweepResult reports how many due-date notifications a sweep emitted.
type SweepResult struct {
	Overdue int `json:"overdue"`
	DueSoon int `json:"due_soon"`
}
