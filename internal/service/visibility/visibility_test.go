package visibility

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

func makeTask(creator uuid.UUID, assignee, team *uuid.UUID) domain.Task {
	return domain.Task{
		ID:         uuid.New(),
		Title:      "t",
		CreatorID:  creator,
		AssigneeID: assignee,
		TeamID:     team,
	}
}

func taskIDs(tasks []domain.Task) map[uuid.UUID]bool {
	ids := make(map[uuid.UUID]bool, len(tasks))
	for _, t := range tasks {
		ids[t.ID] = true
	}
	return ids
}

func TestVisibleTasksUserRole(t *testing.T) {
	caller := domain.User{ID: uuid.New(), Role: domain.RoleUser}
	other := uuid.New()

	assigned := makeTask(other, &caller.ID, nil)
	created := makeTask(caller.ID, nil, nil)
	foreign := makeTask(other, &other, nil)

	visible := VisibleTasks(caller, []domain.Task{assigned, created, foreign}, nil)
	ids := taskIDs(visible)

	require.Len(t, visible, 2)
	assert.True(t, ids[assigned.ID])
	assert.True(t, ids[created.ID])
	assert.False(t, ids[foreign.ID])
}

func TestVisibleTasksManagerRole(t *testing.T) {
	manager := domain.User{ID: uuid.New(), Role: domain.RoleManager}
	other := uuid.New()

	managedTeam := domain.Team{ID: uuid.New(), Name: "managed", ManagerIDs: []uuid.UUID{manager.ID}}
	memberTeam := domain.Team{ID: uuid.New(), Name: "member-only", MemberIDs: []uuid.UUID{manager.ID}}
	teams := []domain.Team{managedTeam, memberTeam}

	inManaged := makeTask(other, nil, &managedTeam.ID)
	inMemberOnly := makeTask(other, nil, &memberTeam.ID)
	assigned := makeTask(other, &manager.ID, nil)
	created := makeTask(manager.ID, nil, nil)
	unrelated := makeTask(other, &other, nil)

	visible := VisibleTasks(manager, []domain.Task{inManaged, inMemberOnly, assigned, created, unrelated}, teams)
	ids := taskIDs(visible)

	assert.True(t, ids[inManaged.ID], "task of a managed team must be visible")
	assert.False(t, ids[inMemberOnly.ID], "membership alone must not grant visibility")
	assert.True(t, ids[assigned.ID])
	assert.True(t, ids[created.ID])
	assert.False(t, ids[unrelated.ID])
}

func TestVisibleTasksAdminSeesEverything(t *testing.T) {
	admin := domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
	other := uuid.New()
	teamID := uuid.New()

	tasks := []domain.Task{
		makeTask(other, nil, nil),
		makeTask(other, &other, &teamID),
		makeTask(admin.ID, nil, nil),
	}

	visible := VisibleTasks(admin, tasks, nil)
	assert.Len(t, visible, len(tasks))
}

func TestCanView(t *testing.T) {
	caller := domain.User{ID: uuid.New(), Role: domain.RoleUser}
	other := uuid.New()

	assert.True(t, CanView(caller, makeTask(caller.ID, nil, nil), nil))
	assert.True(t, CanView(caller, makeTask(other, &caller.ID, nil), nil))
	assert.False(t, CanView(caller, makeTask(other, nil, nil), nil))
}

func TestUnknownRoleGetsLowestScope(t *testing.T) {
	caller := domain.User{ID: uuid.New(), Role: domain.Role("superuser")}
	other := uuid.New()
	teamID := uuid.New()
	teams := []domain.Team{{ID: teamID, ManagerIDs: []uuid.UUID{caller.ID}}}

	// Even as a team manager, an unrecognized role only sees own tasks.
	assert.False(t, CanView(caller, makeTask(other, nil, &teamID), teams))
	assert.True(t, CanView(caller, makeTask(caller.ID, nil, nil), teams))
}
