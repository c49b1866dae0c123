package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[uuid.UUID]domain.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{teams: make(map[uuid.UUID]domain.Team)}
}

func (r *TeamRepository) Create(ctx context.Context, team domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[team.ID] = team
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID uuid.UUID) (*domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	team, ok := r.teams[teamID]
	if !ok {
		return nil, ErrNotFound
	}
	return &team, nil
}

func (r *TeamRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, team := range r.teams {
		if strings.EqualFold(team.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *TeamRepository) Update(ctx context.Context, team domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[team.ID]; !ok {
		return ErrNotFound
	}
	r.teams[team.ID] = team
	return nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	teams := make([]domain.Team, 0, len(r.teams))
	for _, team := range r.teams {
		teams = append(teams, team)
	}
	return teams, nil
}
