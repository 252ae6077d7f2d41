package repos

import (
	"gorm.io/gorm"

	types "github.com/dealdesk/dealdesk-backend/internal/domain"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
)

type CompanyRepo = OwnedRepo[types.Company, *types.Company]

func NewCompanyRepo(gdb *gorm.DB, baseLog *logger.Logger) *CompanyRepo {
	return NewOwnedRepo[types.Company, *types.Company](gdb, baseLog, OwnedConfig{
		Name:        "Company",
		Preloads:    []string{"Contacts", "Deals"},
		DefaultSort: "id",
		SortFields: map[string]string{
			"id":        "id",
			"name":      "name",
			"domain":    "domain",
			"industry":  "industry",
			"createdAt": "created_at",
		},
	})
}
