package middleware

import (
	"strings"

	domainerrors "qna/internal/domain/errors"
	"qna/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUserID is the echo context key under which the authenticated
// user's UUID is stored for handlers.
const ContextKeyUserID = "userID"

// AuthMiddleware guards routes behind token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the identity token carried in the Authorization
// header. The raw header value is the token; a "Bearer " prefix is tolerated
// and stripped. The verified user ID is the sole source of the acting
// identity for downstream handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return errors.WithStack(domainerrors.ErrInvalidToken)
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}
