// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"resumeapp/internal/delivery/http/middleware"
	"resumeapp/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ResumeHandler  *handler.ResumeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	resumeHandler  *handler.ResumeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		resumeHandler:  params.ResumeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Hello)
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/api/user")
	{
		userGroup.POST("/registration", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	resumeGroup := e.Group("/resume")
	resumeGroup.Use(r.authMiddleware.Authenticate)
	{
		resumeGroup.GET("", r.resumeHandler.List)
		resumeGroup.POST("", r.resumeHandler.Create)
		resumeGroup.GET("/:id", r.resumeHandler.Get)
		resumeGroup.PUT("/:id", r.resumeHandler.Update)
		resumeGroup.DELETE("/:id", r.resumeHandler.Delete)
	}
}
