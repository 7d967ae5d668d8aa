// Package router contains routing setup for the HTTP delivery.
package router

import (
	"gateway/internal/delivery/http/middleware"
	"gateway/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ClientHandler  *handler.ClientHandler
	CatalogHandler *handler.CatalogHandler
	QuoterHandler  *handler.QuoterHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	clientHandler  *handler.ClientHandler
	catalogHandler *handler.CatalogHandler
	quoterHandler  *handler.QuoterHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		clientHandler:  params.ClientHandler,
		catalogHandler: params.CatalogHandler,
		quoterHandler:  params.QuoterHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Login is the only route reachable without a token.
	api.POST("/token", r.authHandler.Login)

	// Client routes, proxied to the clients backend
	clientGroup := api.Group("/clients")
	clientGroup.Use(r.authMiddleware.Authenticate)
	{
		clientGroup.GET("", r.clientHandler.SearchClients)
		clientGroup.POST("", r.clientHandler.CreateClient)
		clientGroup.GET("/:client_id", r.clientHandler.GetClient)
		clientGroup.PATCH("/:client_id", r.clientHandler.ModifyClient)
	}

	// Product routes, proxied to the catalog backend
	productGroup := api.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.catalogHandler.SearchProducts)
		productGroup.POST("", r.catalogHandler.CreateProduct)
		productGroup.GET("/:product_id", r.catalogHandler.GetProduct)
	}

	// Service routes, proxied to the catalog backend.
	// The static "description" segment must be registered before ":service_id".
	serviceGroup := api.Group("/services")
	serviceGroup.Use(r.authMiddleware.Authenticate)
	{
		serviceGroup.GET("", r.catalogHandler.SearchServices)
		serviceGroup.POST("", r.catalogHandler.CreateService)
		serviceGroup.GET("/description", r.catalogHandler.SearchServicesByDescription)
		serviceGroup.GET("/:service_id", r.catalogHandler.GetService)
		serviceGroup.PATCH("/:service_id", r.catalogHandler.ModifyService)
	}

	// Quoter routes, proxied to the quoters backend
	quoterGroup := api.Group("/quoters")
	quoterGroup.Use(r.authMiddleware.Authenticate)
	{
		quoterGroup.GET("", r.quoterHandler.SearchQuoters)
		quoterGroup.POST("", r.quoterHandler.InsertQuoter)
		quoterGroup.GET("/:quoter_id", r.quoterHandler.GetQuoter)
		quoterGroup.PATCH("/:quoter_id", r.quoterHandler.UpdateQuoter)
	}

	// Sales routes, proxied to the quoters backend
	saleGroup := api.Group("/sales")
	saleGroup.Use(r.authMiddleware.Authenticate)
	{
		saleGroup.POST("", r.quoterHandler.CreateSale)
	}
}
