package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// TokenRepository maps opaque bearer tokens to user ids. Tokens never
// expire.
type TokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]uuid.UUID
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{tokens: make(map[string]uuid.UUID)}
}

func (r *TokenRepository) Save(ctx context.Context, token string, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = userID
	return nil
}

func (r *TokenRepository) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.tokens[token]
	if !ok {
		return uuid.Nil, ErrNotFound
	}
	return userID, nil
}
