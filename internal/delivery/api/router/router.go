// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/router/handler"
	"pawtrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProviderHandler *handler.ProviderHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	providerHandler *handler.ProviderHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		providerHandler: params.ProviderHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	providers := apiV1.Group("/providers")
	{
		// Discovery is public
		providers.GET("", r.providerHandler.SearchProviders)
		providers.GET("/open", r.providerHandler.OpenProviders)
		providers.GET("/:id", r.providerHandler.GetProvider)
		providers.GET("/:id/qr", r.providerHandler.ProviderQRCode)

		// Management requires a signed-in user; provider roles are checked by the usecase
		authenticated := r.authMiddleware.Authenticate
		providers.POST("", r.providerHandler.CreateProvider, authenticated)
		providers.PUT("/:id", r.providerHandler.UpdateProvider, authenticated)
		providers.DELETE("/:id", r.providerHandler.DeleteProvider, authenticated)
		providers.POST("/:id/locations", r.providerHandler.AddLocation, authenticated)
		providers.DELETE("/:id/locations/:locationId", r.providerHandler.RemoveLocation, authenticated)
		providers.POST("/:id/phones", r.providerHandler.AddPhone, authenticated)
		providers.POST("/:id/phones/bulk", r.providerHandler.AddPhones, authenticated)
		providers.DELETE("/:id/phones/:phoneId", r.providerHandler.RemovePhone, authenticated)
		providers.POST("/:id/working-hours", r.providerHandler.AddWorkingHours, authenticated)
		providers.POST("/:id/working-hours/bulk", r.providerHandler.AddWorkingHoursBulk, authenticated)
		providers.PUT("/:id/working-hours/:workingHoursId", r.providerHandler.UpdateWorkingHours, authenticated)
		providers.DELETE("/:id/working-hours/:workingHoursId", r.providerHandler.RemoveWorkingHours, authenticated)
		providers.POST("/:id/users", r.providerHandler.AddProviderUser, authenticated)
		providers.DELETE("/:id/users/:userId", r.providerHandler.RemoveProviderUser, authenticated)
	}

	admin := apiV1.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.PUT("/providers/:id/membership", r.providerHandler.UpdateMembership)
	}
}
