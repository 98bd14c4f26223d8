package usecase

import (
	"context"

	"github.com/google/uuid"

	"qna/internal/domain/entity"
)

// CreateAnswerInput defines the data required to post an answer.
type CreateAnswerInput struct {
	Body string `json:"answerBody" validate:"required"`
}

// UpdateAnswerInput defines the data for rewriting an answer body.
type UpdateAnswerInput struct {
	Body string `json:"answerBody" validate:"required"`
}

// AnswerUsecase defines the interface for answer operations. Like questions,
// the acting user comes from the verified token identity.
type AnswerUsecase interface {
	// Create posts an answer to a question. The question reference is not
	// checked for existence: an orphaned answer is not an error.
	Create(ctx context.Context, actorID, questionID uuid.UUID, input *CreateAnswerInput) (*entity.Answer, error)

	// ListByQuestion returns the page-th window of size limit over one
	// question's answers.
	ListByQuestion(ctx context.Context, questionID uuid.UUID, page, limit int) ([]*entity.Answer, error)

	// GetByID returns one answer or ErrAnswerNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error)

	// Update rewrites the answer body after the ownership check.
	Update(ctx context.Context, actorID, id uuid.UUID, input *UpdateAnswerInput) (*entity.Answer, error)

	// Delete removes the answer after the ownership check.
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
