package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenRepository stores refresh tokens in Redis. Each token maps to
// the owning user id and expires via the key TTL, so no cleanup job is needed.
type RefreshTokenRepository interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	FindUserID(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

var ErrTokenNotFound = errors.New("refresh token not found or expired")

type refreshTokenRepository struct {
	client *redis.Client
}

func NewRefreshTokenRepository(client *redis.Client) RefreshTokenRepository {
	return &refreshTokenRepository{client: client}
}

func tokenKey(token string) string {
	return fmt.Sprintf("refresh:%s", token)
}

func (r *refreshTokenRepository) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, tokenKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) FindUserID(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("find refresh token: %w", err)
	}
	return userID, nil
}

func (r *refreshTokenRepository) Revoke(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, tokenKey(token)).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}
