package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "qna/internal/domain/errors"
	"qna/internal/domain/service"
	mocksvc "qna/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuth(t *testing.T, tokenSvc service.TokenService, authHeader string) (echo.Context, bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)

	return c, nextCalled, err
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	tokenSvc := mocksvc.NewMockTokenService(t)

	_, nextCalled, err := invokeAuth(t, tokenSvc, "")
	require.Error(t, err)
	assert.False(t, nextCalled)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	tokenSvc := mocksvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("garbage").Return(nil, errors.New("failed to parse token structure")).Once()

	_, nextCalled, err := invokeAuth(t, tokenSvc, "garbage")
	require.Error(t, err)
	assert.False(t, nextCalled)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

// The raw header value is the token. No Bearer prefix required.
func TestAuthMiddleware_RawToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tokenSvc := mocksvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("signed.jwt.token").Return(&service.Claims{UserID: userID}, nil).Once()

	c, nextCalled, err := invokeAuth(t, tokenSvc, "signed.jwt.token")
	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
}

// A Bearer prefix is tolerated and stripped before validation.
func TestAuthMiddleware_BearerPrefix(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tokenSvc := mocksvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("signed.jwt.token").Return(&service.Claims{UserID: userID}, nil).Once()

	c, nextCalled, err := invokeAuth(t, tokenSvc, "Bearer signed.jwt.token")
	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
}
