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

// questionService implements the QuestionUsecase interface.
type questionService struct {
	questionRepo repository.QuestionRepository
	logger       *slog.Logger
}

// QuestionServiceParams holds dependencies for questionService, injected by Fx.
type QuestionServiceParams struct {
	fx.In

	QuestionRepo repository.QuestionRepository
	Logger       *slog.Logger
}

// NewQuestionService is the constructor for questionService.
func NewQuestionService(params QuestionServiceParams) usecase.QuestionUsecase {
	return &questionService{
		questionRepo: params.QuestionRepo,
		logger:       params.Logger,
	}
}

func (srv *questionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create posts a new question authored by the acting user.
func (srv *questionService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.CreateQuestionInput) (*entity.Question, error) {
	question := &entity.Question{
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		AuthorID:    actorID,
	}

	if err := srv.questionRepo.Create(ctx, question); err != nil {
		return nil, errors.Wrap(err, "failed to create question")
	}

	srv.log(ctx).Debug("Question created", slog.Any("questionID", question.ID), slog.Any("authorID", actorID))

	return question, nil
}

// List returns the requested page over all questions.
func (srv *questionService) List(ctx context.Context, page, limit int) ([]*entity.Question, error) {
	offset := (page - 1) * limit

	questions, err := srv.questionRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	return questions, nil
}

// GetByID returns one question by ID.
func (srv *questionService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrQuestionNotFound)
		}

		return nil, errors.Wrap(err, "failed to get question")
	}

	return question, nil
}

// Update rewrites the mutable fields of a question after checking that the
// acting user is its author. Not-found is checked before ownership so the
// two failures stay distinguishable.
func (srv *questionService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateQuestionInput) (*entity.Question, error) {
	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrQuestionNotFound)
		}

		return nil, errors.Wrap(err, "failed to load question for update")
	}

	if !service.IsOwner(question.AuthorID, actorID) {
		srv.log(ctx).Warn("Question update rejected: ownership mismatch",
			slog.Any("questionID", id), slog.Any("actorID", actorID))

		return nil, errors.WithStack(domainerrors.ErrOwnershipViolation)
	}

	question.Title = input.Title
	question.Description = input.Description
	question.Tags = input.Tags

	if err := srv.questionRepo.Update(ctx, question); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrQuestionNotFound)
		}

		return nil, errors.Wrap(err, "failed to update question")
	}

	return question, nil
}

// Delete removes a question after the ownership check. Answers referencing
// the question are deliberately left in place.
func (srv *questionService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return errors.WithStack(domainerrors.ErrQuestionNotFound)
		}

		return errors.Wrap(err, "failed to load question for delete")
	}

	if !service.IsOwner(question.AuthorID, actorID) {
		srv.log(ctx).Warn("Question delete rejected: ownership mismatch",
			slog.Any("questionID", id), slog.Any("actorID", actorID))

		return errors.WithStack(domainerrors.ErrOwnershipViolation)
	}

	if err := srv.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return errors.WithStack(domainerrors.ErrQuestionNotFound)
		}

		return errors.Wrap(err, "failed to delete question")
	}

	srv.log(ctx).Debug("Question deleted", slog.Any("questionID", id))

	return nil
}
