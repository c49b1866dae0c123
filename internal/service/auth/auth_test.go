package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
	"github.com/SanujaKob/Task-Management-Application-3/internal/repository"
	"github.com/SanujaKob/Task-Management-Application-3/pkg/memstore"
)

func newTestService() *Service {
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repository.NewUserRepository(), repository.NewTokenRepository(), memstore.NewTxManager(), lg)
}

func TestRegisterAndResolve(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, domain.RoleUser, resp.User.Role, "role defaults to user")

	caller, err := svc.ResolveToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, caller.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req := domain.RegisterRequest{Email: "dup@example.com", Name: "A", Password: "x"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "r@example.com",
		Name:     "R",
		Password: "x",
		Role:     "root",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    "bob@example.com",
		Name:     "Bob",
		Password: "hunter2",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, domain.LoginRequest{Email: "bob@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "bob@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestResolveUnknownToken(t *testing.T) {
	svc := newTestService()

	_, err := svc.ResolveToken(context.Background(), "bogus")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
