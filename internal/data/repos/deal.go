package repos

import (
	"gorm.io/gorm"

	types "github.com/dealdesk/dealdesk-backend/internal/domain"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
)

type DealRepo = OwnedRepo[types.Deal, *types.Deal]

func NewDealRepo(gdb *gorm.DB, baseLog *logger.Logger) *DealRepo {
	return NewOwnedRepo[types.Deal, *types.Deal](gdb, baseLog, OwnedConfig{
		Name:        "Deal",
		Preloads:    []string{"Company", "Contacts"},
		DefaultSort: "id",
		SortFields: map[string]string{
			"id":        "id",
			"title":     "title",
			"amount":    "amount",
			"stage":     "stage",
			"createdAt": "created_at",
		},
	})
}
