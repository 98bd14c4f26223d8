package handler

import (
	"log/slog"
	"net/http"

	"qna/internal/delivery/http/response"
	"qna/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuestionHandler holds dependencies for question-related handlers.
type QuestionHandler struct {
	uc     usecase.QuestionUsecase
	logger *slog.Logger
}

// NewQuestionHandler is the constructor for QuestionHandler, injected by Fx.
func NewQuestionHandler(uc usecase.QuestionUsecase, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles posting a new question.
func (h *QuestionHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateQuestionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	question, err := h.uc.Create(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, question, "Question created")
}

// List handles the paginated question listing.
func (h *QuestionHandler) List(c echo.Context) error {
	page, limit := pagination(c)

	questions, err := h.uc.List(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, questions, "")
}

// GetByID handles fetching one question.
func (h *QuestionHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	question, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, question, "")
}

// Update handles rewriting a question's mutable fields.
func (h *QuestionHandler) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateQuestionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	question, err := h.uc.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, question, "Question updated")
}

// Delete handles removing a question.
func (h *QuestionHandler) Delete(c echo.Context) error {
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
