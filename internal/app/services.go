package app

import (
	"gorm.io/gorm"

	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
	"github.com/dealdesk/dealdesk-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	User    services.UserService
	Company services.CompanyService
	Contact services.ContactService
	Deal    services.DealService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:    services.NewAuthService(db, log, reposet.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		User:    services.NewUserService(db, log, reposet.User),
		Company: services.NewCompanyService(db, log, reposet.Company),
		Contact: services.NewContactService(db, log, reposet.Contact),
		Deal:    services.NewDealService(db, log, reposet.Deal),
	}
}
