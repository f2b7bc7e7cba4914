package models

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Challenges []Challenge  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Summaries  []Summary    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Results    []TestResult `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
