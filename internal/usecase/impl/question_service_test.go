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

func newQuestionService(t *testing.T) (usecase.QuestionUsecase, *mockrepo.MockQuestionRepository) {
	t.Helper()

	questionRepo := mockrepo.NewMockQuestionRepository(t)
	svc := NewQuestionService(QuestionServiceParams{
		QuestionRepo: questionRepo,
		Logger:       testLogger(),
	})

	return svc, questionRepo
}

func TestQuestionService_Create(t *testing.T) {
	t.Parallel()

	svc, questionRepo := newQuestionService(t)

	actorID := uuid.New()
	questionRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(q *entity.Question) bool {
		return q.Title == "How do goroutines work?" && q.AuthorID == actorID
	})).Return(nil).Once()

	question, err := svc.Create(context.Background(), actorID, &usecase.CreateQuestionInput{
		Title:       "How do goroutines work?",
		Description: "Looking for a mental model of the scheduler.",
		Tags:        []string{"go", "concurrency"},
	})
	require.NoError(t, err)
	assert.Equal(t, actorID, question.AuthorID)
	assert.Equal(t, []string{"go", "concurrency"}, question.Tags)
}

func TestQuestionService_List_PageToOffset(t *testing.T) {
	t.Parallel()

	svc, questionRepo := newQuestionService(t)

	// page 3 with limit 5 starts at offset 10
	questionRepo.EXPECT().List(mock.Anything, 10, 5).
		Return([]*entity.Question{}, nil).Once()

	_, err := svc.List(context.Background(), 3, 5)
	require.NoError(t, err)
}

func TestQuestionService_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	svc, questionRepo := newQuestionService(t)

	id := uuid.New()
	questionRepo.EXPECT().FindByID(mock.Anything, id).
		Return(nil, repository.ErrQuestionNotFound).Once()

	question, err := svc.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.Nil(t, question)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrQuestionNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestQuestionService_Update(t *testing.T) {
	t.Parallel()

	svc, questionRepo := newQuestionService(t)

	actorID := uuid.New()
	id := uuid.New()
	questionRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Question{
		ID:       id,
		Title:    "old title",
		AuthorID: actorID,
	}, nil).Once()
	questionRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(q *entity.Question) bool {
		return q.ID == id && q.Title == "new title"
	})).Return(nil).Once()

	question, err := svc.Update(context.Background(), actorID, id, &usecase.UpdateQuestionInput{
		Title:       "new title",
		Description: "new description",
		Tags:        []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", question.Title)
}

func TestQuestionService_Update_NotOwner(t *testing.T) {
	t.Parallel()

	svc, questionRepo := newQuestionService(t)

	id := uuid.New()
	questionRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Question{
		ID:       id,
		AuthorID: uuid.New(),
	}, nil).Once()

	question, err := svc.Update(context.Background(), uuid.New(), id, &usecase.UpdateQuestionInput{
		Title: "hijacked",
	})
	require.Error(t, err)
	assert.Nil(t, question)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrOwnershipViolation.ErrorCode(), appErr.ErrorCode())
}

func TestQuestionService_Update_NotFound(t *testing.T) {
	t.Parallel()

	svc, questionRepo := newQuestionService(t)

	id := uuid.New()
	questionRepo.EXPECT().FindByID(mock.Anything, id).
		Return(nil, repository.ErrQuestionNotFound).Once()

	_, err := svc.Update(context.Background(), uuid.New(), id, &usecase.UpdateQuestionInput{
		Title: "anything",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrQuestionNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestQuestionService_Delete(t *testing.T) {
	t.Parallel()

	svc, questionRepo := newQuestionService(t)

	actorID := uuid.New()
	id := uuid.New()
	questionRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Question{
		ID:       id,
		AuthorID: actorID,
	}, nil).Once()
	questionRepo.EXPECT().Delete(mock.Anything, id).Return(nil).Once()

	require.NoError(t, svc.Delete(context.Background(), actorID, id))
}

func TestQuestionService_Delete_NotOwner(t *testing.T) {
	t.Parallel()

	svc, questionRepo := newQuestionService(t)

	id := uuid.New()
	questionRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Question{
		ID:       id,
		AuthorID: uuid.New(),
	}, nil).Once()

	err := svc.Delete(context.Background(), uuid.New(), id)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrOwnershipViolation.ErrorCode(), appErr.ErrorCode())
}
