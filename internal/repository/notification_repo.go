package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

type NotificationRepository struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID]domain.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{notifications: make(map[uuid.UUID]domain.Notification)}
}

func (r *NotificationRepository) Create(ctx context.Context, n domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[n.ID] = n
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (r *NotificationRepository) Update(ctx context.Context, n domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notifications[n.ID]; !ok {
		return ErrNotFound
	}
	r.notifications[n.ID] = n
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notifications[id]; !ok {
		return ErrNotFound
	}
	delete(r.notifications, id)
	return nil
}

func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]domain.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		items = append(items, n)
	}
	return items, nil
}
