// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pitstop/internal/delivery/api/middleware"
	"pitstop/internal/delivery/api/router/handler"
	"pitstop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler     *handler.AddressHandler
	DiscoveryHandler   *handler.DiscoveryHandler
	PricingHandler     *handler.PricingHandler
	WorkshopHandler    *handler.WorkshopHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler   *handler.AddressHandler
	discoveryHandler *handler.DiscoveryHandler
	pricingHandler   *handler.PricingHandler
	workshopHandler  *handler.WorkshopHandler
	identity         *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:   params.AddressHandler,
		discoveryHandler: params.DiscoveryHandler,
		pricingHandler:   params.PricingHandler,
		workshopHandler:  params.WorkshopHandler,
		identity:         params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every API v1 route requires a gateway identity
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.identity.Authenticate)

	// Customer address book
	customerGroup := apiV1.Group("/customers/me")
	customerGroup.Use(r.identity.RequireRole(entity.RoleCustomer))
	{
		customerGroup.POST("/addresses", r.addressHandler.AddCustomerAddress)
		customerGroup.GET("/addresses", r.addressHandler.ListCustomerAddresses)
		customerGroup.GET("/addresses/default", r.addressHandler.GetDefaultAddress)
		customerGroup.PUT("/addresses/default", r.addressHandler.SetDefaultAddress)
	}

	// Discovery
	discoveryGroup := apiV1.Group("/discovery")
	{
		discoveryGroup.POST("/search", r.discoveryHandler.Search, r.identity.RequireRole(entity.RoleCustomer))
		discoveryGroup.GET("/services", r.discoveryHandler.ListServices)
	}

	// Quotes are open to any role
	apiV1.POST("/pricing/quote", r.pricingHandler.Quote)

	// Workshop self-management
	workshopGroup := apiV1.Group("/workshops/me")
	workshopGroup.Use(r.identity.RequireRole(entity.RoleWorkshop))
	{
		workshopGroup.GET("/address", r.addressHandler.GetWorkshopAddress)
		workshopGroup.PUT("/address", r.addressHandler.SetWorkshopAddress)

		workshopGroup.GET("/services", r.workshopHandler.ListServiceTypes)
		workshopGroup.POST("/services", r.workshopHandler.AddServiceType)
		workshopGroup.DELETE("/services/:serviceType", r.workshopHandler.RemoveServiceType)

		workshopGroup.GET("/vehicle-type", r.workshopHandler.GetVehicleType)
		workshopGroup.PUT("/vehicle-type", r.workshopHandler.SetVehicleType)
		workshopGroup.DELETE("/vehicle-type", r.workshopHandler.ClearVehicleType)

		workshopGroup.GET("/status", r.workshopHandler.GetStatus)
		workshopGroup.POST("/open", r.workshopHandler.Open)
		workshopGroup.POST("/close", r.workshopHandler.Close)
	}

	// Pricing rule administration
	adminGroup := apiV1.Group("/admin/pricing-rules")
	adminGroup.Use(r.identity.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("", r.pricingHandler.ListPricingRules)
		adminGroup.POST("", r.pricingHandler.CreatePricingRule)
		adminGroup.GET("/lookup", r.pricingHandler.LookupPricingRule)
		adminGroup.PUT("/:id", r.pricingHandler.UpdatePricingRule)
		adminGroup.DELETE("/:id", r.pricingHandler.DeletePricingRule)
	}
}
