package service

import (
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/auth"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/notification"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/task"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/team"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/user"
)

type Services struct {
	AuthService         *auth.Service
	UserService         *user.Service
	TeamService         *team.Service
	TaskService         *task.Service
	NotificationService *notification.Service
	DashboardService    *DashboardService
}
