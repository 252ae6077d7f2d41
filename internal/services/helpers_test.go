package services_test

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/dealdesk/dealdesk-backend/internal/data/repos"
	"github.com/dealdesk/dealdesk-backend/internal/data/repos/testutil"
	types "github.com/dealdesk/dealdesk-backend/internal/domain"
	"github.com/dealdesk/dealdesk-backend/internal/requestdata"
	"github.com/dealdesk/dealdesk-backend/internal/services"
)

func ctxFor(u *types.User) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID: u.ID,
		Role:   u.Role,
	})
}

func companySvc(tb testing.TB, tx *gorm.DB) services.CompanyService {
	log := testutil.Logger(tb)
	return services.NewCompanyService(tx, log, repos.NewCompanyRepo(tx, log))
}

func contactSvc(tb testing.TB, tx *gorm.DB) services.ContactService {
	log := testutil.Logger(tb)
	return services.NewContactService(tx, log, repos.NewContactRepo(tx, log))
}

func dealSvc(tb testing.TB, tx *gorm.DB) services.DealService {
	log := testutil.Logger(tb)
	return services.NewDealService(tx, log, repos.NewDealRepo(tx, log))
}

func authSvc(tb testing.TB, tx *gorm.DB) services.AuthService {
	log := testutil.Logger(tb)
	return services.NewAuthService(tx, log, repos.NewUserRepo(tx, log), "test-secret", time.Hour)
}

func userSvc(tb testing.TB, tx *gorm.DB) services.UserService {
	log := testutil.Logger(tb)
	return services.NewUserService(tx, log, repos.NewUserRepo(tx, log))
}

func uintsPtr(ids ...uint) *[]uint { return &ids }

func strPtr(s string) *string { return &s }
