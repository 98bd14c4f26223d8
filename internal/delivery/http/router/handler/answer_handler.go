package handler

import (
	"log/slog"
	"net/http"

	"qna/internal/delivery/http/response"
	"qna/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnswerHandler holds dependencies for answer-related handlers.
type AnswerHandler struct {
	uc     usecase.AnswerUsecase
	logger *slog.Logger
}

// NewAnswerHandler is the constructor for AnswerHandler, injected by Fx.
func NewAnswerHandler(uc usecase.AnswerUsecase, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles posting an answer to a question.
func (h *AnswerHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	questionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.CreateAnswerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid answer input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	answer, err := h.uc.Create(c.Request().Context(), actor, questionID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, answer, "Answer created")
}

// ListByQuestion handles the paginated answer listing for one question.
func (h *AnswerHandler) ListByQuestion(c echo.Context) error {
	questionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	page, limit := pagination(c)

	answers, err := h.uc.ListByQuestion(c.Request().Context(), questionID, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, answers, "")
}

// GetByID handles fetching one answer.
func (h *AnswerHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	answer, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, answer, "")
}

// Update handles rewriting an answer's body.
func (h *AnswerHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateAnswerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid answer input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	answer, err := h.uc.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, answer, "Answer updated")
}

// Delete handles removing an answer.
func (h *AnswerHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
