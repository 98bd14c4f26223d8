package usecase

import (
	"context"

	"github.com/google/uuid"

	"qna/internal/domain/entity"
)

// CreateQuestionInput defines the data required to post a new question.
type CreateQuestionInput struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// UpdateQuestionInput defines the data for rewriting a question's mutable
// fields. Tags replace the stored list wholesale.
type UpdateQuestionInput struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// QuestionUsecase defines the interface for question operations. The acting
// user is always the identity decoded from the request token, never a value
// supplied in the request body.
type QuestionUsecase interface {
	// Create posts a new question authored by the acting user.
	Create(ctx context.Context, actorID uuid.UUID, input *CreateQuestionInput) (*entity.Question, error)

	// List returns the page-th window of size limit over all questions.
	List(ctx context.Context, page, limit int) ([]*entity.Question, error)

	// GetByID returns one question or ErrQuestionNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Question, error)

	// Update rewrites title/description/tags after the ownership check.
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateQuestionInput) (*entity.Question, error)

	// Delete removes the question after the ownership check. Its answers
	// are left untouched.
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
