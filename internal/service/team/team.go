package team

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
	"github.com/SanujaKob/Task-Management-Application-3/pkg/memstore"
)

type TeamRepository interface {
	Create(ctx context.Context, team domain.Team) error
	GetByID(ctx context.Context, teamID uuid.UUID) (*domain.Team, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, team domain.Team) error
	List(ctx context.Context) ([]domain.Team, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user domain.User) error
}

type Service struct {
	teamRepo  TeamRepository
	userRepo  UserRepository
	txManager memstore.TransactionManagerInterface
	lg        *slog.Logger
}

func NewService(teamRepo TeamRepository,
	userRepo UserRepository,
	txManager memstore.TransactionManagerInterface,
	lg *slog.Logger) *Service {
	return &Service{
		teamRepo:  teamRepo,
		userRepo:  userRepo,
		txManager: txManager,
		lg:        lg,
	}
}

// Create is admin-only. Every referenced manager and member must exist; the
// team id is appended to each referenced user's team list.
func (s *Service) Create(ctx context.Context, caller domain.User, req domain.CreateTeamRequest) (*domain.Team, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	team := domain.Team{
		ID:         uuid.New(),
		Name:       req.Name,
		ManagerIDs: req.ManagerIDs,
		MemberIDs:  req.MemberIDs,
		CreatedAt:  time.Now().UTC(),
	}
	if team.ManagerIDs == nil {
		team.ManagerIDs = []uuid.UUID{}
	}
	if team.MemberIDs == nil {
		team.MemberIDs = []uuid.UUID{}
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		exists, err := s.teamRepo.ExistsByName(txCtx, req.Name)
		if err != nil {
			return fmt.Errorf("failed to check team name: %w", err)
		}
		if exists {
			return domain.ErrTeamExists
		}

		for _, userID := range append(append([]uuid.UUID{}, team.ManagerIDs...), team.MemberIDs...) {
			if err := s.linkUser(txCtx, userID, team.ID); err != nil {
				return err
			}
		}

		if err := s.teamRepo.Create(txCtx, team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("team created",
		slog.String("team_id", team.ID.String()),
		slog.Int("managers", len(team.ManagerIDs)),
		slog.Int("members", len(team.MemberIDs)))
	return &team, nil
}

func (s *Service) Get(ctx context.Context, caller domain.User, teamID uuid.UUID) (*domain.Team, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.getTeam(ctx, teamID)
}

func (s *Service) List(ctx context.Context, caller domain.User) ([]domain.Team, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].CreatedAt.Before(teams[j].CreatedAt)
	})
	return teams, nil
}

// AddMember appends a user to the team's member list. Adding an existing
// member is a no-op.
func (s *Service) AddMember(ctx context.Context, caller domain.User, teamID, userID uuid.UUID) (*domain.Team, error) {
	return s.addToTeam(ctx, caller, teamID, userID, false)
}

// AddManager appends a user to the team's manager list. Managers are not
// implicitly members.
func (s *Service) AddManager(ctx context.Context, caller domain.User, teamID, userID uuid.UUID) (*domain.Team, error) {
	return s.addToTeam(ctx, caller, teamID, userID, true)
}

func (s *Service) addToTeam(ctx context.Context, caller domain.User, teamID, userID uuid.UUID, asManager bool) (*domain.Team, error) {
	if err := access.RequireAdmin(caller); err != nil {
		return nil, err
	}

	var updated *domain.Team
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		team, err := s.getTeam(txCtx, teamID)
		if err != nil {
			return err
		}
		if err := s.linkUser(txCtx, userID, teamID); err != nil {
			return err
		}

		if asManager {
			if !team.HasManager(userID) {
				team.ManagerIDs = append(team.ManagerIDs, userID)
			}
		} else {
			if !team.HasMember(userID) {
				team.MemberIDs = append(team.MemberIDs, userID)
			}
		}
		if err := s.teamRepo.Update(txCtx, *team); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		updated = team
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("team membership updated",
		slog.String("team_id", teamID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("manager", asManager))
	return updated, nil
}

func (s *Service) getTeam(ctx context.Context, teamID uuid.UUID) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// linkUser records the team on the user side, verifying the user exists.
func (s *Service) linkUser(ctx context.Context, userID, teamID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	for _, id := range user.TeamIDs {
		if id == teamID {
			return nil
		}
	}
	user.TeamIDs = append(user.TeamIDs, teamID)
	if err := s.userRepo.Update(ctx, *user); err != nil {
		return fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return nil
}
