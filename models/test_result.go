package models

import "time"

// TestResult is written once, together with its answers, and never updated.
type TestResult struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	SummaryID    uint      `json:"summary_id" gorm:"not null;index"`
	Score        int       `json:"score" gorm:"not null"` // 0-100
	CorrectCount int       `json:"correct_count" gorm:"not null"`
	TotalCount   int       `json:"total_count" gorm:"not null"`
	TimeSpent    *int      `json:"time_spent"` // minutes
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Answers []Answer `json:"answers" gorm:"foreignKey:TestResultID;constraint:OnDelete:CASCADE"`
}

func (r TestResult) OwnerID() uint { return r.UserID }

type Answer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TestResultID uint      `json:"test_result_id" gorm:"not null;uniqueIndex:uq_test_question"`
	QuestionID   uint      `json:"question_id" gorm:"not null;uniqueIndex:uq_test_question"`
	UserAnswer   string    `json:"user_answer" gorm:"size:1;not null"`
	IsCorrect    bool      `json:"is_correct" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Question Question `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
