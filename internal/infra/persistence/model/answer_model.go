package model

import (
	"time"

	"github.com/google/uuid"
)

// AnswerModel mirrors the 'answers' table. QuestionID is deliberately a plain
// uuid column without a foreign key constraint: answers may outlive their
// question and may reference a question that never existed.
type AnswerModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Body       string    `gorm:"type:text;not null"`
	DatePosted time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AnswerModel) TableName() string {
	return "answers"
}
