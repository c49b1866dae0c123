package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/repository"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/access"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type Service struct {
	userRepo UserRepository
	lg       *slog.Logger
}

func NewService(userRepo UserRepository, lg *slog.Logger) *Service {
	return &Service{userRepo: userRepo, lg: lg}
}

// List is an administrative endpoint.
func (s *Service) List(ctx context.Context, caller domain.User) ([]domain.User, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (s *Service) Get(ctx context.Context, caller domain.User, userID uuid.UUID) (*domain.User, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
