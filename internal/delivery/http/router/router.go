// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rpromo/internal/delivery/http/middleware"
	"rpromo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PersonHandler   *handler.PersonHandler
	PhotoHandler    *handler.PhotoHandler
	AuthHandler     *handler.AuthHandler
	ProviderHandler *handler.ProviderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	personHandler   *handler.PersonHandler
	photoHandler    *handler.PhotoHandler
	authHandler     *handler.AuthHandler
	providerHandler *handler.ProviderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		personHandler:   params.PersonHandler,
		photoHandler:    params.PhotoHandler,
		authHandler:     params.AuthHandler,
		providerHandler: params.ProviderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Registration routes. Reads are open; writes require a session.
	peopleGroup := e.Group("/pessoas")
	{
		peopleGroup.GET("", r.personHandler.List)
		peopleGroup.GET("/stats", r.personHandler.Stats)
		peopleGroup.GET("/opcoes", r.personHandler.FilterOptions)
		peopleGroup.GET("/:id", r.personHandler.Get)
		peopleGroup.GET("/:id/fotos", r.photoHandler.ListByPerson)

		peopleGroup.POST("", r.personHandler.Create, r.authMiddleware.Authenticate)
		peopleGroup.PUT("/:id", r.personHandler.Update, r.authMiddleware.Authenticate)
		peopleGroup.DELETE("/:id", r.personHandler.Delete, r.authMiddleware.Authenticate)
		peopleGroup.PUT("/:id/status", r.personHandler.ChangeStatus, r.authMiddleware.Authenticate)
		peopleGroup.POST("/:id/fotos", r.photoHandler.Upload, r.authMiddleware.Authenticate)
	}

	// Attachment routes
	photoGroup := e.Group("/fotos")
	{
		photoGroup.GET("/:id", r.photoHandler.Get)
		photoGroup.DELETE("/:id", r.photoHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Provider selection routes
	providerGroup := e.Group("/provider")
	{
		providerGroup.GET("", r.providerHandler.State)
		providerGroup.PUT("", r.providerHandler.Switch, r.authMiddleware.Authenticate)
	}
}
