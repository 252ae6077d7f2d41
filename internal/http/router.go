package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/dealdesk/dealdesk-backend/internal/http/handlers"
	httpMW "github.com/dealdesk/dealdesk-backend/internal/http/middleware"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware
	UserHandler    *httpH.UserHandler

	CompanyHandler *httpH.CompanyHandler
	ContactHandler *httpH.ContactHandler
	DealHandler    *httpH.DealHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestID())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/me", cfg.UserHandler.GetMe)
		}

		// Companies
		if cfg.CompanyHandler != nil {
			protected.POST("/companies", cfg.CompanyHandler.Create)
			protected.GET("/companies", cfg.CompanyHandler.List)
			protected.GET("/companies/:id", cfg.CompanyHandler.Get)
			protected.PATCH("/companies/:id", cfg.CompanyHandler.Update)
			protected.DELETE("/companies/:id", cfg.CompanyHandler.Delete)
		}

		// Contacts
		if cfg.ContactHandler != nil {
			protected.POST("/contacts", cfg.ContactHandler.Create)
			protected.GET("/contacts", cfg.ContactHandler.List)
			protected.GET("/contacts/:id", cfg.ContactHandler.Get)
			protected.PATCH("/contacts/:id", cfg.ContactHandler.Update)
			protected.DELETE("/contacts/:id", cfg.ContactHandler.Delete)
		}

		// Deals
		if cfg.DealHandler != nil {
			protected.POST("/deals", cfg.DealHandler.Create)
			protected.GET("/deals", cfg.DealHandler.List)
			protected.GET("/deals/:id", cfg.DealHandler.Get)
			protected.PATCH("/deals/:id", cfg.DealHandler.Update)
			protected.DELETE("/deals/:id", cfg.DealHandler.Delete)
		}
	}

	return r
}
