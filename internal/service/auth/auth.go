package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/repository"
	"github.com/SanujaKob/Task-Management-Application-3/pkg/memstore"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type TokenRepository interface {
	Save(ctx context.Context, token string, userID uuid.UUID) error
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

// Service issues and resolves opaque bearer tokens. Tokens are plaintext
// strings mapped 1:1 to a user id, with no expiry; passwords are stored and
// compared in plaintext.
type Service struct {
	userRepo  UserRepository
	tokenRepo TokenRepository
	txManager memstore.TransactionManagerInterface
	lg        *slog.Logger
}

func NewService(userRepo UserRepository,
	tokenRepo TokenRepository,
	txManager memstore.TransactionManagerInterface,
	lg *slog.Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		txManager: txManager,
		lg:        lg,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	if req.Role == "" {
		req.Role = domain.RoleUser
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role %q", domain.ErrValidation, req.Role)
	}

	user := domain.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Name:      req.Name,
		Role:      req.Role,
		TeamIDs:   []uuid.UUID{},
		Password:  req.Password,
		CreatedAt: time.Now().UTC(),
	}
	token := uuid.NewString()

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.userRepo.GetByEmail(txCtx, req.Email); err == nil {
			return domain.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		if err := s.userRepo.Create(txCtx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := s.tokenRepo.Save(txCtx, token, user.ID); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))
	return &domain.AuthResponse{Token: token, User: user}, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Password != req.Password {
		return nil, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.tokenRepo.Save(ctx, token, user.ID); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	s.lg.Info("user logged in", slog.String("user_id", user.ID.String()))
	return &domain.AuthResponse{Token: token, User: *user}, nil
}

// ResolveToken turns a bearer token into the caller identity consumed by
// every access check downstream.
func (s *Service) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokenRepo.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
