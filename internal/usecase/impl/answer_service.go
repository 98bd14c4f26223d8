package impl

import (
	"context"
	"log/slog"

	deliverycontext "qna/internal/delivery/context"
	"qna/internal/domain/entity"
	domainerrors "qna/internal/domain/errors"
	"qna/internal/domain/repository"
	"qna/internal/domain/service"
	"qna/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// answerService implements the AnswerUsecase interface.
type answerService struct {
	answerRepo repository.AnswerRepository
	logger     *slog.Logger
}

// AnswerServiceParams holds dependencies for answerService, injected by Fx.
type AnswerServiceParams struct {
	fx.In

	AnswerRepo repository.AnswerRepository
	Logger     *slog.Logger
}

// NewAnswerService is the constructor for answerService.
func NewAnswerService(params AnswerServiceParams) usecase.AnswerUsecase {
	return &answerService{
		answerRepo: params.AnswerRepo,
		logger:     params.Logger,
	}
}

func (srv *answerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create posts an answer to a question. The question reference is stored
// without an existence check: orphaned answers are tolerated by design.
func (srv *answerService) Create(ctx context.Context, actorID, questionID uuid.UUID, input *usecase.CreateAnswerInput) (*entity.Answer, error) {
	answer := &entity.Answer{
		QuestionID: questionID,
		AuthorID:   actorID,
		Body:       input.Body,
	}

	if err := srv.answerRepo.Create(ctx, answer); err != nil {
		return nil, errors.Wrap(err, "failed to create answer")
	}

	srv.log(ctx).Debug("Answer created", slog.Any("answerID", answer.ID), slog.Any("questionID", questionID))

	return answer, nil
}

// ListByQuestion returns the requested page over one question's answers.
func (srv *answerService) ListByQuestion(ctx context.Context, questionID uuid.UUID, page, limit int) ([]*entity.Answer, error) {
	offset := (page - 1) * limit

	answers, err := srv.answerRepo.ListByQuestion(ctx, questionID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list answers")
	}

	return answers, nil
}

// GetByID returns one answer by ID.
func (srv *answerService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error) {
	answer, err := srv.answerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAnswerNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAnswerNotFound)
		}

		return nil, errors.Wrap(err, "failed to get answer")
	}

	return answer, nil
}

// Update rewrites the answer body after the ownership check.
func (srv *answerService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateAnswerInput) (*entity.Answer, error) {
	answer, err := srv.answerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAnswerNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAnswerNotFound)
		}

		return nil, errors.Wrap(err, "failed to load answer for update")
	}

	if !service.IsOwner(answer.AuthorID, actorID) {
		srv.log(ctx).Warn("Answer update rejected: ownership mismatch",
			slog.Any("answerID", id), slog.Any("actorID", actorID))

		return nil, errors.WithStack(domainerrors.ErrOwnershipViolation)
	}

	answer.Body = input.Body

	if err := srv.answerRepo.Update(ctx, answer); err != nil {
		if errors.Is(err, repository.ErrAnswerNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAnswerNotFound)
		}

		return nil, errors.Wrap(err, "failed to update answer")
	}

	return answer, nil
}

// Delete removes an answer after the ownership check.
func (srv *answerService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	answer, err := srv.answerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAnswerNotFound) {
			return errors.WithStack(domainerrors.ErrAnswerNotFound)
		}

		return errors.Wrap(err, "failed to load answer for delete")
	}

	if !service.IsOwner(answer.AuthorID, actorID) {
		srv.log(ctx).Warn("Answer delete rejected: ownership mismatch",
			slog.Any("answerID", id), slog.Any("actorID", actorID))

		return errors.WithStack(domainerrors.ErrOwnershipViolation)
	}

	if err := srv.answerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAnswerNotFound) {
			return errors.WithStack(domainerrors.ErrAnswerNotFound)
		}

		return errors.Wrap(err, "failed to delete answer")
	}

	srv.log(ctx).Debug("Answer deleted", slog.Any("answerID", id))

	return nil
}
