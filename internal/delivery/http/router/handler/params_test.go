package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "qna/internal/domain/errors"
	"qna/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(t *testing.T, rawQuery string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/questions?"+rawQuery, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults when missing", query: "", wantPage: 1, wantLimit: 5},
		{name: "explicit values", query: "page=3&limit=10", wantPage: 3, wantLimit: 10},
		{name: "non-numeric falls back", query: "page=abc&limit=xyz", wantPage: 1, wantLimit: 5},
		{name: "zero falls back", query: "page=0&limit=0", wantPage: 1, wantLimit: 5},
		{name: "negative falls back", query: "page=-2&limit=-1", wantPage: 1, wantLimit: 5},
		{name: "mixed", query: "page=2&limit=oops", wantPage: 2, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, limit := pagination(contextWithQuery(t, tt.query))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPathID(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	want := uuid.New()
	c.SetParamNames("id")
	c.SetParamValues(want.String())

	got, err := pathID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPathID_Invalid(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	_, err := pathID(c, "id")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestActorID(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Unauthenticated context carries no user ID
	_, err := actorID(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	want := uuid.New()
	c.Set(middleware.ContextKeyUserID, want)

	got, err := actorID(c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
