// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"qna/internal/delivery/http/middleware"
	domainerrors "qna/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// actorID returns the authenticated user's UUID placed on the context by the
// auth middleware. A missing or mistyped value means the route was not guarded.
func actorID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return id, nil
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " path parameter"))
	}

	return id, nil
}

// pagination reads the page and limit query parameters. Missing, non-numeric
// or non-positive values fall back to the defaults instead of erroring.
func pagination(c echo.Context) (page, limit int) {
	return queryInt(c, "page", defaultPage), queryInt(c, "limit", defaultLimit)
}

func queryInt(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
