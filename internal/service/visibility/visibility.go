// Package visibility scopes which tasks a caller may see or target by id.
// Visibility is a pure three-way dispatch on the caller's role; rules are
// never combined across roles, and membership of a team grants nothing —
// only managing it does.
package visibility

import (
	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

type rule func(caller domain.User, task domain.Task, managed map[uuid.UUID]struct{}) bool

var rules = map[domain.Role]rule{
	domain.RoleAdmin: func(domain.User, domain.Task, map[uuid.UUID]struct{}) bool {
		return true
	},
	domain.RoleManager: func(caller domain.User, task domain.Task, managed map[uuid.UUID]struct{}) bool {
		if task.TeamID != nil {
			if _, ok := managed[*task.TeamID]; ok {
				return true
			}
		}
		return ownsOrAssigned(caller, task)
	},
	domain.RoleUser: func(caller domain.User, task domain.Task, _ map[uuid.UUID]struct{}) bool {
		return ownsOrAssigned(caller, task)
	},
}

func ownsOrAssigned(caller domain.User, task domain.Task) bool {
	if task.AssigneeID != nil && *task.AssigneeID == caller.ID {
		return true
	}
	return task.CreatorID == caller.ID
}

// VisibleTasks returns the subset of tasks the caller may read or act on.
// It is evaluated fresh on every call; task and team state is mutable
// between requests, so nothing here may be cached.
func VisibleTasks(caller domain.User, tasks []domain.Task, teams []domain.Team) []domain.Task {
	managed := managedTeamIDs(caller, teams)
	decide := ruleFor(caller.Role)

	visible := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if decide(caller, task, managed) {
			visible = append(visible, task)
		}
	}
	return visible
}

// CanView gates single-task reads: an existing task outside the caller's
// scope is forbidden, not missing.
func CanView(caller domain.User, task domain.Task, teams []domain.Team) bool {
	return ruleFor(caller.Role)(caller, task, managedTeamIDs(caller, teams))
}

func ruleFor(role domain.Role) rule {
	if r, ok := rules[role]; ok {
		return r
	}
	// Unknown roles get the lowest scope.
	return rules[domain.RoleUser]
}

func managedTeamIDs(caller domain.User, teams []domain.Team) map[uuid.UUID]struct{} {
	managed := make(map[uuid.UUID]struct{})
	for _, team := range teams {
		if team.HasManager(caller.ID) {
			managed[team.ID] = struct{}{}
		}
	}
	return managed
}
