package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

func TestCanMutate(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name     string
		role     domain.Role
		callerID uuid.UUID
		want     bool
	}{
		{"admin mutates anything", domain.RoleAdmin, other, true},
		{"manager mutates anything regardless of ownership", domain.RoleManager, other, true},
		{"user mutates own resource", domain.RoleUser, owner, true},
		{"user denied on foreign resource", domain.RoleUser, other, false},
		{"unknown role falls back to owner-only", domain.Role("intern"), other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := domain.User{ID: tt.callerID, Role: tt.role}
			assert.Equal(t, tt.want, CanMutate(caller, owner))
		})
	}
}

func TestRequireMutate(t *testing.T) {
	owner := uuid.New()
	caller := domain.User{ID: uuid.New(), Role: domain.RoleUser}

	err := RequireMutate(caller, owner)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.NoError(t, RequireMutate(caller, caller.ID))
}

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, RequireAdmin(domain.User{Role: domain.RoleAdmin}))
	assert.ErrorIs(t, RequireAdmin(domain.User{Role: domain.RoleManager}), domain.ErrForbidden)
	assert.ErrorIs(t, RequireAdmin(domain.User{Role: domain.RoleUser}), domain.ErrForbidden)
}

func TestRequireRole(t *testing.T) {
	// Admin is an implicit superset of every required role.
	assert.NoError(t, RequireRole(domain.User{Role: domain.RoleAdmin}, domain.RoleManager))
	assert.NoError(t, RequireRole(domain.User{Role: domain.RoleManager}, domain.RoleManager))
	assert.ErrorIs(t, RequireRole(domain.User{Role: domain.RoleUser}, domain.RoleManager), domain.ErrForbidden)
}
