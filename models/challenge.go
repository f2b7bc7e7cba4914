package models

import "time"

type Challenge struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Subject     string    `json:"subject" gorm:"size:100;not null"`
	Description *string   `json:"description"`
	DailyTime   int       `json:"daily_time" gorm:"not null"` // minutes
	Duration    int       `json:"duration" gorm:"not null"`   // days
	PhotoURL    *string   `json:"photo_url" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Summaries []Summary `json:"-" gorm:"foreignKey:ChallengeID;constraint:OnDelete:SET NULL"`
}

func (c Challenge) OwnerID() uint { return c.UserID }
