package domain

import "errors"

var (
	ErrUnauthenticated      = errors.New("missing or invalid token")
	ErrForbidden            = errors.New("access denied")
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("resource not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrReminderNotFound     = errors.New("reminder not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrAttachmentNotFound   = errors.New("attachment not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrTeamExists           = errors.New("team name already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
