package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Fácil"
	DifficultyMedium Difficulty = "Médio"
	DifficultyHard   Difficulty = "Difícil"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Summary is one day's study log. A user has at most one per calendar day.
type Summary struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:uq_user_study_date"`
	ChallengeID *uint      `json:"challenge_id" gorm:"index"`
	StudyDate   Date       `json:"study_date" gorm:"type:date;not null;uniqueIndex:uq_user_study_date"`
	StudyTime   int        `json:"study_time" gorm:"not null"` // minutes
	Difficulty  Difficulty `json:"difficulty" gorm:"size:16;not null"`
	SummaryText string     `json:"summary_text" gorm:"type:text;not null"`
	PhotoURL    *string    `json:"photo_url" gorm:"size:255"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relationships
	Objectives []SummaryObjective `json:"objectives" gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE"`
	Questions  []Question         `json:"-" gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE"`
	Results    []TestResult       `json:"-" gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE"`
}

func (s Summary) OwnerID() uint { return s.UserID }

type SummaryObjective struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	SummaryID     uint      `json:"-" gorm:"not null;index"`
	ObjectiveText string    `json:"objective_text" gorm:"size:255;not null"`
	CreatedAt     time.Time `json:"-"`
}
