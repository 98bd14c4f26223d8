// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"qna/internal/delivery/http/middleware"
	"qna/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	QuestionHandler *handler.QuestionHandler
	AnswerHandler   *handler.AnswerHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	questionHandler *handler.QuestionHandler
	answerHandler   *handler.AnswerHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		questionHandler: params.QuestionHandler,
		answerHandler:   params.AnswerHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Public account routes
		api.POST("/register", r.accountHandler.Register)
		api.POST("/login", r.accountHandler.Login)
	}

	// Everything below requires a valid identity token
	questionGroup := api.Group("/questions")
	questionGroup.Use(r.authMiddleware.Authenticate)
	{
		questionGroup.POST("", r.questionHandler.Create)
		questionGroup.GET("", r.questionHandler.List)
		questionGroup.GET("/:id", r.questionHandler.GetByID)
		questionGroup.PUT("/:id", r.questionHandler.Update)
		questionGroup.DELETE("/:id", r.questionHandler.Delete)

		questionGroup.POST("/:id/answers", r.answerHandler.Create)
		questionGroup.GET("/:id/answers", r.answerHandler.ListByQuestion)
	}

	answerGroup := api.Group("/answers")
	answerGroup.Use(r.authMiddleware.Authenticate)
	{
		answerGroup.GET("/:id", r.answerHandler.GetByID)
		answerGroup.PUT("/:id", r.answerHandler.Update)
		answerGroup.DELETE("/:id", r.answerHandler.Delete)
	}
}
