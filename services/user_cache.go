package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"studybuddy/models"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=./user_cache.go -destination=./mocks/user_cache.mock.go -package=svcmocks UserCache

// ErrCacheMiss is returned by a UserCache when it holds no entry.
var ErrCacheMiss = errors.New("cache miss")

type UserCache interface {
	Get(ctx context.Context, id uint) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type RedisUserCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisUserCache(client *redis.Client, ttl time.Duration) *RedisUserCache {
	return &RedisUserCache{client: client, ttl: ttl}
}

// cachedUser leaves the password hash out of the cache.
type cachedUser struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func userKey(id uint) string {
	return "user:" + strconv.FormatUint(uint64(id), 10)
}

func (c *RedisUserCache) Get(ctx context.Context, id uint) (*models.User, error) {
	data, err := c.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read from Redis: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(data, &cu); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached user: %w", err)
	}
	return &models.User{
		ID:        cu.ID,
		Username:  cu.Username,
		Email:     cu.Email,
		CreatedAt: cu.CreatedAt,
		UpdatedAt: cu.UpdatedAt,
	}, nil
}

func (c *RedisUserCache) Set(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := c.client.Set(ctx, userKey(user.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store in Redis: %w", err)
	}
	return nil
}

func (c *RedisUserCache) Delete(ctx context.Context, id uint) error {
	return c.client.Del(ctx, userKey(id)).Err()
}
