package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionModel mirrors the 'questions' table. Tags are stored as a jsonb
// column through GORM's JSON serializer so their order is preserved.
type QuestionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Tags        []string  `gorm:"type:jsonb;serializer:json"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DatePosted  time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "questions"
}
