// File: services/account/stores.go
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/funabab/ilivercare-app/utils"

	"github.com/go-redis/redis/v8"
)

// VerificationStore holds pending email verification tokens.
type VerificationStore interface {
	// Save associates a one-time token with an account id.
	Save(ctx context.Context, token, accountID string, ttl time.Duration) error
	// Resolve returns the account id for a token, or "" when the token is
	// unknown or expired. The token stays stored.
	Resolve(ctx context.Context, token string) (string, error)
	// Delete removes a token once the account has been verified.
	Delete(ctx context.Context, token string) error
}

// AuthTokenStore caches issued token hashes for the auth middleware.
type AuthTokenStore interface {
	Store(ctx context.Context, accountID, tokenHash string, ttl time.Duration) error
}

type redisVerificationStore struct {
	client *redis.Client
}

// NewRedisVerificationStore returns a VerificationStore backed by the token
// cache Redis database.
func NewRedisVerificationStore(client *redis.Client) VerificationStore {
	return &redisVerificationStore{client: client}
}

func (s *redisVerificationStore) Save(ctx context.Context, token, accountID string, ttl time.Duration) error {
	key := utils.VerifyTokenPrefix + token
	if err := s.client.Set(ctx, key, accountID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save verification token: %w", err)
	}
	return nil
}

func (s *redisVerificationStore) Resolve(ctx context.Context, token string) (string, error) {
	key := utils.VerifyTokenPrefix + token
	accountID, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve verification token: %w", err)
	}
	return accountID, nil
}

func (s *redisVerificationStore) Delete(ctx context.Context, token string) error {
	key := utils.VerifyTokenPrefix + token
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete verification token: %w", err)
	}
	return nil
}

type redisAuthTokenStore struct {
	client *redis.Client
}

// NewRedisAuthTokenStore returns an AuthTokenStore backed by the auth cache
// Redis database, keyed the way the auth middleware reads it.
func NewRedisAuthTokenStore(client *redis.Client) AuthTokenStore {
	return &redisAuthTokenStore{client: client}
}

func (s *redisAuthTokenStore) Store(ctx context.Context, accountID, tokenHash string, ttl time.Duration) error {
	key := utils.AuthCachePrefix + accountID
	if err := s.client.Set(ctx, key, tokenHash, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache auth token: %w", err)
	}
	return nil
}
