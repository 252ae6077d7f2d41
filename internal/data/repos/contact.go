package repos

import (
	"gorm.io/gorm"

	types "github.com/dealdesk/dealdesk-backend/internal/domain"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
)

type ContactRepo = OwnedRepo[types.Contact, *types.Contact]

func NewContactRepo(gdb *gorm.DB, baseLog *logger.Logger) *ContactRepo {
	return NewOwnedRepo[types.Contact, *types.Contact](gdb, baseLog, OwnedConfig{
		Name:        "Contact",
		Preloads:    []string{"Companies", "Deals"},
		DefaultSort: "id",
		SortFields: map[string]string{
			"id":        "id",
			"name":      "name",
			"email":     "email",
			"phone":     "phone",
			"createdAt": "created_at",
		},
	})
}
