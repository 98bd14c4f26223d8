package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"qna/internal/domain/entity"
)

// ErrAnswerNotFound is returned when an answer record is not found.
var ErrAnswerNotFound = errors.New("answer not found")

// AnswerRepository defines the standard operations for answer persistence.
type AnswerRepository interface {
	// Create persists a new answer and fills in the generated ID and DatePosted.
	// The referenced question is not checked for existence.
	Create(ctx context.Context, answer *entity.Answer) error

	// ListByQuestion returns a window of answers for one question, ordered by
	// DatePosted then ID.
	ListByQuestion(ctx context.Context, questionID uuid.UUID, offset, limit int) ([]*entity.Answer, error)

	// FindByID retrieves a single answer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error)

	// Update overwrites the answer body of an existing answer.
	Update(ctx context.Context, answer *entity.Answer) error

	// Delete removes an answer by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
