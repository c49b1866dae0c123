package domain

import (
	"time"

	"github.com/google/uuid"
)

// ManagerIDs and MemberIDs are independent lists: a manager of a team is not
// automatically a member of it.
type Team struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	ManagerIDs []uuid.UUID `json:"manager_ids"`
	MemberIDs  []uuid.UUID `json:"member_ids"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (t *Team) HasManager(userID uuid.UUID) bool {
	for _, id := range t.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (t *Team) HasMember(userID uuid.UUID) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

type CreateTeamRequest struct {
	Name       string      `json:"name" binding:"required"`
	ManagerIDs []uuid.UUID `json:"manager_ids"`
	MemberIDs  []uuid.UUID `json:"member_ids"`
}

type TeamMembershipRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}
