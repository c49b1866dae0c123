package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/handlers"
	"github.com/SanujaKob/Task-Management-Application-3/internal/repository"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/auth"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/notification"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/task"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/team"
	"github.com/SanujaKob/Task-Management-Application-3/internal/service/user"
	"github.com/SanujaKob/Task-Management-Application-3/pkg/memstore"
	"github.com/SanujaKob/Task-Management-Application-3/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not found: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	userRepo := repository.NewUserRepository()
	teamRepo := repository.NewTeamRepository()
	taskRepo := repository.NewTaskRepository()
	notifRepo := repository.NewNotificationRepository()
	reminderRepo := repository.NewReminderRepository()
	commentRepo := repository.NewCommentRepository()
	attachmentRepo := repository.NewAttachmentRepository()
	tokenRepo := repository.NewTokenRepository()

	txManager := memstore.NewTxManager()

	notifService := notification.NewService(notifRepo, taskRepo, txManager, logger)
	services := &service.Services{
		AuthService:         auth.NewService(userRepo, tokenRepo, txManager, logger),
		UserService:         user.NewService(userRepo, logger),
		TeamService:         team.NewService(teamRepo, userRepo, txManager, logger),
		TaskService:         task.NewService(taskRepo, teamRepo, reminderRepo, commentRepo, attachmentRepo, notifService, txManager, logger),
		NotificationService: notifService,
		DashboardService:    service.NewDashboardService(taskRepo, teamRepo, userRepo, logger),
	}

	seedState(userRepo, tokenRepo, taskRepo, logger)

	handlers := handlers.NewHandler(services, logger)

	srv := new(server.Server)
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.Run(serverPort(), handlers.InitRoutes()); err != nil {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logger.Info("shutting down gracefully")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("error occured on server shutting down", slog.Any("error", err))
		}
		logger.Info("server stopped gracefully")
	case err := <-serverErrors:
		logger.Error("error occured while running server", slog.Any("error", err))
		os.Exit(1)
	}
}

func serverPort() string {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		return port
	}
	return "8080"
}

// seedState creates the initial admin user and, optionally, one sample task.
// All state is in-memory and discarded at shutdown.
func seedState(userRepo *repository.UserRepository,
	tokenRepo *repository.TokenRepository,
	taskRepo *repository.TaskRepository,
	logger *slog.Logger) {
	ctx := context.Background()

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	admin := domain.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      "Administrator",
		Role:      domain.RoleAdmin,
		TeamIDs:   []uuid.UUID{},
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		logger.Error("failed to seed admin user", slog.Any("error", err))
		os.Exit(1)
	}

	token := uuid.NewString()
	if err := tokenRepo.Save(ctx, token, admin.ID); err != nil {
		logger.Error("failed to seed admin token", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seeded admin user",
		slog.String("email", admin.Email),
		slog.String("token", token))

	if os.Getenv("SEED_SAMPLE_DATA") != "true" {
		return
	}

	now := time.Now().UTC()
	description := "Initial project kickoff with stakeholders"
	sample := domain.Task{
		ID:          uuid.New(),
		Title:       "Kickoff meeting",
		Description: &description,
		Priority:    domain.PriorityHigh,
		Status:      domain.StatusInProgress,
		Progress:    25,
		CreatorID:   admin.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := taskRepo.Create(ctx, sample); err != nil {
		logger.Error("failed to seed sample task", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seeded sample task", slog.String("task_id", sample.ID.String()))
}
