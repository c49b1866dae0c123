// Package access holds the allow/deny rules applied before any mutation.
// The role precedence lives in one table per decision so it can be reviewed
// in a single place: admin overrides everything; manager overrides ownership
// for mutation (deliberately permissive, matching the observed behavior of
// earlier drafts); a plain user may only mutate what they own.
package access

import (
	"github.com/google/uuid"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

type mutatePolicy int

const (
	allowAlways mutatePolicy = iota
	allowOwnerOnly
)

var mutateRules = map[domain.Role]mutatePolicy{
	domain.RoleAdmin:   allowAlways,
	domain.RoleManager: allowAlways,
	domain.RoleUser:    allowOwnerOnly,
}

// CanMutate reports whether caller may modify a resource owned by
// resourceOwner. Unknown roles fall through to the owner-only rule.
func CanMutate(caller domain.User, resourceOwner uuid.UUID) bool {
	if mutateRules[caller.Role] == allowAlways {
		return true
	}
	return caller.ID == resourceOwner
}

// RequireMutate is CanMutate expressed as an error for service call sites.
func RequireMutate(caller domain.User, resourceOwner uuid.UUID) error {
	if !CanMutate(caller, resourceOwner) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireAdmin gates administrative endpoints (user and team management).
func RequireAdmin(caller domain.User) error {
	if caller.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// RequireRole allows a caller holding exactly the required role; admin is an
// implicit superset of every role.
func RequireRole(caller domain.User, required domain.Role) error {
	if caller.Role == domain.RoleAdmin || caller.Role == required {
		return nil
	}
	return domain.ErrForbidden
}
