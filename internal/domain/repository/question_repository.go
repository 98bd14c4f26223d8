package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"qna/internal/domain/entity"
)

// ErrQuestionNotFound is returned when a question record is not found.
var ErrQuestionNotFound = errors.New("question not found")

// QuestionRepository defines the standard operations for question persistence.
type QuestionRepository interface {
	// Create persists a new question and fills in the generated ID and DatePosted.
	Create(ctx context.Context, question *entity.Question) error

	// List returns a window of questions ordered by DatePosted then ID.
	// offset and limit follow the usual skip/limit semantics.
	List(ctx context.Context, offset, limit int) ([]*entity.Question, error)

	// FindByID retrieves a single question by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error)

	// Update overwrites the mutable fields (title, description, tags) of an
	// existing question. AuthorID and DatePosted are never touched.
	Update(ctx context.Context, question *entity.Question) error

	// Delete removes a question by ID. Answers referencing it are left in place.
	Delete(ctx context.Context, id uuid.UUID) error
}
