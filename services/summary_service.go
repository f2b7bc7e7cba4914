package services

import (
	"context"
	"strings"

	"studybuddy/models"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"
)

type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

type CreateSummaryRequest struct {
	ChallengeID *uint             `json:"challenge_id" binding:"omitempty,min=1"`
	StudyDate   string            `json:"study_date" binding:"required"`
	StudyTime   int               `json:"study_time" binding:"required,min=1"`
	Difficulty  models.Difficulty `json:"difficulty" binding:"required"`
	SummaryText string            `json:"summary_text" binding:"required"`
	PhotoURL    *string           `json:"photo_url" binding:"omitempty,max=255"`
	Objectives  []string          `json:"objectives" binding:"omitempty,dive,required,max=255"`
}

func (s *SummaryService) CreateSummary(ctx context.Context, userID uint, req *CreateSummaryRequest) (*models.Summary, error) {
	studyDate, err := models.ParseDate(strings.TrimSpace(req.StudyDate))
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !req.Difficulty.Valid() {
		return nil, ErrInvalidInput
	}

	db := s.db.WithContext(ctx)
	if req.ChallengeID != nil {
		if _, err := findOwned[models.Challenge](db, userID, *req.ChallengeID); err != nil {
			return nil, err
		}
	}

	var count int64
	if err := db.Model(&models.Summary{}).
		Where("user_id = ? AND study_date = ?", userID, studyDate).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSummaryExists
	}

	summary := models.Summary{
		UserID:      userID,
		ChallengeID: req.ChallengeID,
		StudyDate:   studyDate,
		StudyTime:   req.StudyTime,
		Difficulty:  req.Difficulty,
		SummaryText: req.SummaryText,
		PhotoURL:    req.PhotoURL,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Objectives").Create(&summary).Error; err != nil {
			return err
		}
		if len(req.Objectives) == 0 {
			return nil
		}
		objectives := slice.Map(req.Objectives, func(_ int, text string) models.SummaryObjective {
			return models.SummaryObjective{SummaryID: summary.ID, ObjectiveText: text}
		})
		if err := tx.Create(&objectives).Error; err != nil {
			return err
		}
		summary.Objectives = objectives
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSummaryExists
		}
		return nil, err
	}

	if summary.Objectives == nil {
		summary.Objectives = []models.SummaryObjective{}
	}
	return &summary, nil
}

func (s *SummaryService) GetUserSummaries(ctx context.Context, userID uint) ([]models.Summary, error) {
	var summaries []models.Summary
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Preload("Objectives", func(db *gorm.DB) *gorm.DB {
			return db.Order("summary_objectives.id")
		}).
		Order("study_date DESC").
		Find(&summaries).Error
	return summaries, err
}

func (s *SummaryService) GetSummaryByID(ctx context.Context, summaryID, userID uint) (*models.Summary, error) {
	db := s.db.WithContext(ctx).Preload("Objectives", func(db *gorm.DB) *gorm.DB {
		return db.Order("summary_objectives.id")
	})
	return findOwned[models.Summary](db, userID, summaryID)
}

// DeleteSummary removes the summary; objectives, questions and results go with it.
func (s *SummaryService) DeleteSummary(ctx context.Context, summaryID, userID uint) error {
	summary, err := findOwned[models.Summary](s.db.WithContext(ctx), userID, summaryID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(summary).Error
}
