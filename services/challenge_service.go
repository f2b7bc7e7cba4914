package services

import (
	"context"

	"studybuddy/models"

	"gorm.io/gorm"
)

type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

type CreateChallengeRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Subject     string  `json:"subject" binding:"required,max=100"`
	Description *string `json:"description"`
	DailyTime   int     `json:"daily_time" binding:"required,min=1"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	PhotoURL    *string `json:"photo_url" binding:"omitempty,max=255"`
}

// UpdateChallengeRequest only touches the fields that are present.
type UpdateChallengeRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Subject     *string `json:"subject" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	DailyTime   *int    `json:"daily_time" binding:"omitempty,min=1"`
	Duration    *int    `json:"duration" binding:"omitempty,min=1"`
	PhotoURL    *string `json:"photo_url" binding:"omitempty,max=255"`
}

func (s *ChallengeService) CreateChallenge(ctx context.Context, userID uint, req *CreateChallengeRequest) (*models.Challenge, error) {
	challenge := models.Challenge{
		UserID:      userID,
		Name:        req.Name,
		Subject:     req.Subject,
		Description: req.Description,
		DailyTime:   req.DailyTime,
		Duration:    req.Duration,
		PhotoURL:    req.PhotoURL,
	}
	if err := s.db.WithContext(ctx).Create(&challenge).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (s *ChallengeService) GetUserChallenges(ctx context.Context, userID uint) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&challenges).Error
	return challenges, err
}

func (s *ChallengeService) GetChallengeByID(ctx context.Context, challengeID, userID uint) (*models.Challenge, error) {
	return findOwned[models.Challenge](s.db.WithContext(ctx), userID, challengeID)
}

func (s *ChallengeService) UpdateChallenge(ctx context.Context, challengeID, userID uint, req *UpdateChallengeRequest) (*models.Challenge, error) {
	challenge, err := s.GetChallengeByID(ctx, challengeID, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Subject != nil {
		updates["subject"] = *req.Subject
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DailyTime != nil {
		updates["daily_time"] = *req.DailyTime
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if len(updates) == 0 {
		return challenge, nil
	}

	if err := s.db.WithContext(ctx).Model(challenge).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetChallengeByID(ctx, challengeID, userID)
}

func (s *ChallengeService) DeleteChallenge(ctx context.Context, challengeID, userID uint) error {
	challenge, err := s.GetChallengeByID(ctx, challengeID, userID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(challenge).Error
}
