package services

import (
	"context"

	"studybuddy/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type CreateQuestionRequest struct {
	SummaryID     uint              `json:"summary_id" binding:"required"`
	Text          string            `json:"text" binding:"required"`
	Options       map[string]string `json:"options" binding:"required,min=2,max=5"`
	CorrectAnswer string            `json:"correct_answer" binding:"required,len=1"`
}

func (r *CreateQuestionRequest) validate() error {
	for key, label := range r.Options {
		if !models.IsAnswerKey(key) || label == "" {
			return ErrInvalidQuestion
		}
	}
	if _, ok := r.Options[r.CorrectAnswer]; !ok {
		return ErrInvalidQuestion
	}
	return nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, userID uint, req *CreateQuestionRequest) (*models.Question, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	if _, err := findOwned[models.Summary](db, userID, req.SummaryID); err != nil {
		return nil, err
	}

	question := models.Question{
		SummaryID:     req.SummaryID,
		Text:          req.Text,
		Options:       datatypes.NewJSONType(req.Options),
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := db.Omit("Summary").Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) GetSummaryQuestions(ctx context.Context, summaryID, userID uint) ([]models.Question, error) {
	db := s.db.WithContext(ctx)
	if _, err := findOwned[models.Summary](db, userID, summaryID); err != nil {
		return nil, err
	}

	var questions []models.Question
	err := db.Where("summary_id = ?", summaryID).Order("id").Find(&questions).Error
	return questions, err
}

func (s *QuestionService) GetQuestionByID(ctx context.Context, questionID, userID uint) (*models.Question, error) {
	return findOwned[models.Question](s.db.WithContext(ctx).Joins("Summary"), userID, questionID)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, questionID, userID uint) error {
	question, err := s.GetQuestionByID(ctx, questionID, userID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Question{}, question.ID).Error
}
