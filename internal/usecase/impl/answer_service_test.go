package impl

import (
	"context"
	"testing"

	domainerrors "qna/internal/domain/errors"
	"qna/internal/domain/entity"
	"qna/internal/domain/repository"
	mockrepo "qna/internal/mocks/repository"
	"qna/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnswerService(t *testing.T) (usecase.AnswerUsecase, *mockrepo.MockAnswerRepository) {
	t.Helper()

	answerRepo := mockrepo.NewMockAnswerRepository(t)
	svc := NewAnswerService(AnswerServiceParams{
		AnswerRepo: answerRepo,
		Logger:     testLogger(),
	})

	return svc, answerRepo
}

// Answers can be posted against any question ID without an existence check,
// so posting to a deleted question still succeeds.
func TestAnswerService_Create(t *testing.T) {
	t.Parallel()

	svc, answerRepo := newAnswerService(t)

	actorID := uuid.New()
	questionID := uuid.New()
	answerRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *entity.Answer) bool {
		return a.QuestionID == questionID && a.AuthorID == actorID && a.Body == "Use channels."
	})).Return(nil).Once()

	answer, err := svc.Create(context.Background(), actorID, questionID, &usecase.CreateAnswerInput{
		Body: "Use channels.",
	})
	require.NoError(t, err)
	assert.Equal(t, questionID, answer.QuestionID)
	assert.Equal(t, actorID, answer.AuthorID)
}

func TestAnswerService_ListByQuestion_PageToOffset(t *testing.T) {
	t.Parallel()

	svc, answerRepo := newAnswerService(t)

	questionID := uuid.New()
	answerRepo.EXPECT().ListByQuestion(mock.Anything, questionID, 5, 5).
		Return([]*entity.Answer{}, nil).Once()

	_, err := svc.ListByQuestion(context.Background(), questionID, 2, 5)
	require.NoError(t, err)
}

func TestAnswerService_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	svc, answerRepo := newAnswerService(t)

	id := uuid.New()
	answerRepo.EXPECT().FindByID(mock.Anything, id).
		Return(nil, repository.ErrAnswerNotFound).Once()

	answer, err := svc.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.Nil(t, answer)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrAnswerNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestAnswerService_Update(t *testing.T) {
	t.Parallel()

	svc, answerRepo := newAnswerService(t)

	actorID := uuid.New()
	id := uuid.New()
	answerRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Answer{
		ID:       id,
		AuthorID: actorID,
		Body:     "old body",
	}, nil).Once()
	answerRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(a *entity.Answer) bool {
		return a.ID == id && a.Body == "new body"
	})).Return(nil).Once()

	answer, err := svc.Update(context.Background(), actorID, id, &usecase.UpdateAnswerInput{
		Body: "new body",
	})
	require.NoError(t, err)
	assert.Equal(t, "new body", answer.Body)
}

func TestAnswerService_Update_NotOwner(t *testing.T) {
	t.Parallel()

	svc, answerRepo := newAnswerService(t)

	id := uuid.New()
	answerRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Answer{
		ID:       id,
		AuthorID: uuid.New(),
	}, nil).Once()

	answer, err := svc.Update(context.Background(), uuid.New(), id, &usecase.UpdateAnswerInput{
		Body: "hijacked",
	})
	require.Error(t, err)
	assert.Nil(t, answer)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrOwnershipViolation.ErrorCode(), appErr.ErrorCode())
}

func TestAnswerService_Delete(t *testing.T) {
	t.Parallel()

	svc, answerRepo := newAnswerService(t)

	actorID := uuid.New()
	id := uuid.New()
	answerRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Answer{
		ID:       id,
		AuthorID: actorID,
	}, nil).Once()
	answerRepo.EXPECT().Delete(mock.Anything, id).Return(nil).Once()

	require.NoError(t, svc.Delete(context.Background(), actorID, id))
}

func TestAnswerService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	svc, answerRepo := newAnswerService(t)

	id := uuid.New()
	answerRepo.EXPECT().FindByID(mock.Anything, id).
		Return(nil, repository.ErrAnswerNotFound).Once()

	err := svc.Delete(context.Background(), uuid.New(), id)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrAnswerNotFound.ErrorCode(), appErr.ErrorCode())
}
