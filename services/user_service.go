package services

import (
	"context"
	"errors"

	"studybuddy/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	db    *gorm.DB
	cache UserCache
}

func NewUserService(db *gorm.DB, cache UserCache) *UserService {
	return &UserService{db: db, cache: cache}
}

// FindByID always asks the database, so authentication never trusts a cached
// copy of a deleted account. A stale cache entry is evicted on a miss.
func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		s.evict(ctx, id)
	}
	return user, err
}

// Profile reads through the cache. Cache failures are logged and fall back
// to the database.
func (s *UserService) Profile(ctx context.Context, id uint) (*models.User, error) {
	if s.cache != nil {
		user, err := s.cache.Get(ctx, id)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			zap.L().Warn("user cache read failed", zap.Uint("user_id", id), zap.Error(err))
		}
	}

	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			zap.L().Warn("user cache write failed", zap.Uint("user_id", id), zap.Error(err))
		}
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

func (s *UserService) load(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *UserService) evict(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		zap.L().Warn("user cache eviction failed", zap.Uint("user_id", id), zap.Error(err))
	}
}
