package app

import (
	"github.com/gin-gonic/gin"

	httpserver "github.com/dealdesk/dealdesk-backend/internal/http"
	"github.com/dealdesk/dealdesk-backend/internal/http/handlers"
	"github.com/dealdesk/dealdesk-backend/internal/http/middleware"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Company *handlers.CompanyHandler
	Contact *handlers.ContactHandler
	Deal    *handlers.DealHandler
	Health  *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:    handlers.NewAuthHandler(serviceset.Auth),
		User:    handlers.NewUserHandler(serviceset.User),
		Company: handlers.NewCompanyHandler(log, serviceset.Company),
		Contact: handlers.NewContactHandler(log, serviceset.Contact),
		Deal:    handlers.NewDealHandler(log, serviceset.Deal),
		Health:  handlers.NewHealthHandler(),
	}
}

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, serviceset.Auth),
	}
}

func wireRouter(log *logger.Logger, handlerset Handlers, mw Middleware) *gin.Engine {
	return httpserver.NewRouter(httpserver.RouterConfig{
		Log:            log,
		AuthHandler:    handlerset.Auth,
		AuthMiddleware: mw.Auth,
		UserHandler:    handlerset.User,
		CompanyHandler: handlerset.Company,
		ContactHandler: handlerset.Contact,
		DealHandler:    handlerset.Deal,
		HealthHandler:  handlerset.Health,
	})
}
