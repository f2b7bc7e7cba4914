package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnswerKeys is the alphabet option keys and correct answers are drawn from.
var AnswerKeys = []string{"a", "b", "c", "d", "e"}

func IsAnswerKey(k string) bool {
	for _, key := range AnswerKeys {
		if k == key {
			return true
		}
	}
	return false
}

type Question struct {
	ID            uint                                  `json:"id" gorm:"primaryKey"`
	SummaryID     uint                                  `json:"summary_id" gorm:"not null;index"`
	Text          string                                `json:"text" gorm:"type:text;not null"`
	Options       datatypes.JSONType[map[string]string] `json:"options" gorm:"not null"`
	CorrectAnswer string                                `json:"correct_answer" gorm:"size:1;not null"`
	CreatedAt     time.Time                             `json:"created_at"`

	// Relationships
	Summary Summary `json:"-"`
}

// OwnerID reports the owner of the parent summary; the summary must be loaded.
func (q Question) OwnerID() uint { return q.Summary.UserID }
