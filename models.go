package main

import (
	"time"

	"gorm.io/datatypes"
)

// --- User ---

type User struct {
	ID               string `gorm:"primaryKey;size:36"`
	Email            string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	Name             string `gorm:"not null"`
	SubscriptionTier string `gorm:"size:16;not null;default:FREE"`
	Points           int    `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// --- Questions ---

const (
	TypeSingle   = "SINGLE"
	TypeMultiple = "MULTIPLE"
)

// AnswerOption is one selectable choice; ids are short keys ("a".."d")
// unique within their question.
type AnswerOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Question struct {
	ID             string                            `gorm:"primaryKey;size:36"`
	Content        string                            `gorm:"not null"`
	Type           string                            `gorm:"size:16;not null"` // SINGLE | MULTIPLE
	Category       string                            `gorm:"index;not null"`
	Difficulty     string                            `gorm:"size:16;not null"` // EASY | MEDIUM | HARD
	AllAnswers     datatypes.JSONSlice[AnswerOption] `gorm:"not null"`
	CorrectAnswers datatypes.JSONSlice[string]       `gorm:"not null"`
	Explanation    string                            `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// --- Answer log ---

// UserAnswer is append-only: one row per submission, never updated.
type UserAnswer struct {
	ID              string                      `gorm:"primaryKey;size:36"`
	UserID          string                      `gorm:"index;size:36;not null"`
	QuestionID      string                      `gorm:"size:36;not null"`
	SelectedAnswers datatypes.JSONSlice[string] `gorm:"not null"`
	IsCorrect       bool                        `gorm:"not null"`
	PointsEarned    int                         `gorm:"not null"`
	TimeSpent       int                         `gorm:"not null"` // seconds
	CreatedAt       time.Time                   `gorm:"index"`
}
