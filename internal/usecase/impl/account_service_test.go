package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "qna/internal/domain/errors"
	"qna/internal/domain/entity"
	"qna/internal/domain/repository"
	mockrepo "qna/internal/mocks/repository"
	mocksvc "qna/internal/mocks/service"
	"qna/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAccountService(t *testing.T) (usecase.AccountUsecase, *mockrepo.MockUserRepository, *mocksvc.MockPasswordHasher, *mocksvc.MockTokenService) {
	t.Helper()

	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mocksvc.NewMockPasswordHasher(t)
	tokenService := mocksvc.NewMockTokenService(t)

	svc := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       testLogger(),
	})

	return svc, userRepo, hasher, tokenService
}

func TestAccountService_Register(t *testing.T) {
	t.Parallel()

	svc, userRepo, hasher, _ := newAccountService(t)

	hasher.EXPECT().Hash("s3cret").Return("$2a$10$hash", nil).Once()
	userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "alice" && u.PasswordHash == "$2a$10$hash"
	})).Return(nil).Once()

	err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, userRepo, hasher, _ := newAccountService(t)

	hasher.EXPECT().Hash("s3cret").Return("$2a$10$hash", nil).Once()
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateUsername).Once()

	err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Password: "s3cret",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrUsernameTaken.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, domainerrors.ErrUsernameTaken.HTTPCode(), appErr.HTTPCode())
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	t.Parallel()

	svc, _, hasher, _ := newAccountService(t)

	hasher.EXPECT().Hash("s3cret").Return("", errors.New("cost out of range")).Once()

	err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Password: "s3cret",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrPasswordHashFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_Login(t *testing.T) {
	t.Parallel()

	svc, userRepo, hasher, tokenService := newAccountService(t)

	userID := uuid.New()
	userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(&entity.User{
		ID:           userID,
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
	}, nil).Once()
	hasher.EXPECT().Check("s3cret", "$2a$10$hash").Return(true).Once()
	tokenService.EXPECT().Issue(userID).Return("signed.jwt.token", nil).Once()

	out, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, userRepo, _, _ := newAccountService(t)

	userRepo.EXPECT().FindByUsername(mock.Anything, "ghost").
		Return(nil, repository.ErrUserNotFound).Once()

	out, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "ghost",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, userRepo, hasher, _ := newAccountService(t)

	userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(&entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
	}, nil).Once()
	hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false).Once()

	out, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_Login_TokenIssueFailure(t *testing.T) {
	t.Parallel()

	svc, userRepo, hasher, tokenService := newAccountService(t)

	userID := uuid.New()
	userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(&entity.User{
		ID:           userID,
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
	}, nil).Once()
	hasher.EXPECT().Check("s3cret", "$2a$10$hash").Return(true).Once()
	tokenService.EXPECT().Issue(userID).Return("", errors.New("signing failed")).Once()

	out, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "s3cret",
	})
	require.Error(t, err)
	assert.Nil(t, out)
}
