package app

import (
	"gorm.io/gorm"

	"github.com/dealdesk/dealdesk-backend/internal/data/repos"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
)

type Repos struct {
	User    repos.UserRepo
	Company *repos.CompanyRepo
	Contact *repos.ContactRepo
	Deal    *repos.DealRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:    repos.NewUserRepo(db, log),
		Company: repos.NewCompanyRepo(db, log),
		Contact: repos.NewContactRepo(db, log),
		Deal:    repos.NewDealRepo(db, log),
	}
}
