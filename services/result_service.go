package services

import (
	"context"
	"errors"

	"studybuddy/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type resultMetrics struct {
	submissions *prometheus.CounterVec
	scores      prometheus.Histogram
}

func newResultMetrics(reg prometheus.Registerer) *resultMetrics {
	factory := promauto.With(reg)
	return &resultMetrics{
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studybuddy_submissions_total",
				Help: "Test submissions by outcome",
			},
			[]string{"outcome"},
		),
		scores: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "studybuddy_submission_score",
				Help:    "Scores of stored test results",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
	}
}

//go:generate mockgen -source=./result_service.go -destination=./mocks/result_notifier.mock.go -package=svcmocks ResultNotifier

// ResultNotifier is told about every stored result.
type ResultNotifier interface {
	NotifyResult(result *models.TestResult)
}

type ResultService struct {
	db       *gorm.DB
	notifier ResultNotifier
	metrics  *resultMetrics
	logger   *zap.Logger
}

// NewResultService registers the submission metrics on reg.
func NewResultService(db *gorm.DB, notifier ResultNotifier, reg prometheus.Registerer, logger *zap.Logger) *ResultService {
	return &ResultService{
		db:       db,
		notifier: notifier,
		metrics:  newResultMetrics(reg),
		logger:   logger,
	}
}

type SubmitAnswersRequest struct {
	SummaryID uint              `json:"summary_id" binding:"required"`
	Answers   map[string]string `json:"answers" binding:"required"`
	TimeSpent *int              `json:"time_spent" binding:"omitempty,min=0"`
}

// Submit scores the answers against the summary's questions and stores the
// result and its answers in one transaction. Identical submissions are not
// deduplicated.
func (s *ResultService) Submit(ctx context.Context, userID uint, req *SubmitAnswersRequest) (*models.TestResult, error) {
	db := s.db.WithContext(ctx)
	if _, err := findOwned[models.Summary](db, userID, req.SummaryID); err != nil {
		return nil, err
	}

	var questions []models.Question
	if err := db.Where("summary_id = ?", req.SummaryID).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}

	card, err := ScoreAnswers(questions, req.Answers)
	if err != nil {
		s.metrics.submissions.WithLabelValues("rejected").Inc()
		return nil, err
	}

	result := models.TestResult{
		UserID:       userID,
		SummaryID:    req.SummaryID,
		Score:        card.Score,
		CorrectCount: card.CorrectCount,
		TotalCount:   card.TotalCount,
		TimeSpent:    req.TimeSpent,
	}
	answers := card.Answers

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Answers").Create(&result).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].TestResultID = result.ID
		}
		return tx.Omit("Question").Create(&answers).Error
	})
	if err != nil {
		s.metrics.submissions.WithLabelValues("failed").Inc()
		s.logger.Error("failed to store test result",
			zap.Uint("user_id", userID),
			zap.Uint("summary_id", req.SummaryID),
			zap.Error(err))
		return nil, err
	}
	result.Answers = answers

	s.metrics.submissions.WithLabelValues("stored").Inc()
	s.metrics.scores.Observe(float64(result.Score))

	if s.notifier != nil {
		s.notifier.NotifyResult(&result)
	}
	return &result, nil
}

func (s *ResultService) GetResultByID(ctx context.Context, resultID, userID uint) (*models.TestResult, error) {
	return findOwned[models.TestResult](s.preloadAnswers(ctx), userID, resultID)
}

func (s *ResultService) GetSummaryResults(ctx context.Context, summaryID, userID uint) ([]models.TestResult, error) {
	if _, err := findOwned[models.Summary](s.db.WithContext(ctx), userID, summaryID); err != nil {
		return nil, err
	}

	var results []models.TestResult
	err := s.preloadAnswers(ctx).
		Where("summary_id = ? AND user_id = ?", summaryID, userID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

func (s *ResultService) GetUserResults(ctx context.Context, userID uint) ([]models.TestResult, error) {
	var results []models.TestResult
	err := s.preloadAnswers(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

func (s *ResultService) preloadAnswers(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("answers.id")
	})
}

// IsInputError reports whether err came from the caller's submission rather than the store.
func IsInputError(err error) bool {
	var missing *MissingAnswerError
	var invalid *InvalidAnswerError
	return errors.Is(err, ErrNoQuestions) || errors.As(err, &missing) || errors.As(err, &invalid)
}
