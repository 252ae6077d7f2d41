package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dealdesk/dealdesk-backend/internal/access"
	"github.com/dealdesk/dealdesk-backend/internal/data/repos"
	types "github.com/dealdesk/dealdesk-backend/internal/domain"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/apierr"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
)

type CompanyInput struct {
	Name       string  `json:"name" binding:"required"`
	Domain     string  `json:"domain"`
	Industry   string  `json:"industry"`
	Address    string  `json:"address"`
	ContactIDs *[]uint `json:"contactIds"`
}

// CompanyPatch is a partial update: nil fields are left untouched. A nil
// ContactIDs keeps the existing edges while an explicit empty list clears
// them.
type CompanyPatch struct {
	Name       *string `json:"name"`
	Domain     *string `json:"domain"`
	Industry   *string `json:"industry"`
	Address    *string `json:"address"`
	ContactIDs *[]uint `json:"contactIds"`
}

type CompanyService interface {
	Create(ctx context.Context, in CompanyInput) (*types.Company, error)
	List(ctx context.Context, q repos.PageQuery) (*ListResult[*types.Company], error)
	Get(ctx context.Context, id uint) (*types.Company, error)
	Update(ctx context.Context, id uint, patch CompanyPatch) (*types.Company, error)
	Delete(ctx context.Context, id uint) error
}

type companyService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo *repos.CompanyRepo
}

func NewCompanyService(gdb *gorm.DB, baseLog *logger.Logger, repo *repos.CompanyRepo) CompanyService {
	return &companyService{
		db:   gdb,
		log:  baseLog.With("service", "CompanyService"),
		repo: repo,
	}
}

func (s *companyService) Create(ctx context.Context, in CompanyInput) (*types.Company, error) {
	rd, err := guard(ctx, access.OpCreate)
	if err != nil {
		return nil, err
	}

	row := &types.Company{
		Name:     in.Name,
		Domain:   in.Domain,
		Industry: in.Industry,
		Address:  in.Address,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.Create(ctx, tx, rd.UserID, row); err != nil {
			return fmt.Errorf("create company: %w", err)
		}
		if in.ContactIDs != nil {
			return repos.ReplaceEdges(ctx, tx, repos.CompanyContacts, row.ID, *in.ContactIDs)
		}
		return nil
	}); err != nil {
		s.log.Warn("Create failed", "error", err, "user_id", rd.UserID)
		return nil, err
	}
	return s.reload(ctx, rd.UserID, row.ID)
}

func (s *companyService) List(ctx context.Context, q repos.PageQuery) (*ListResult[*types.Company], error) {
	rd, err := guard(ctx, access.OpRead)
	if err != nil {
		return nil, err
	}

	page := s.repo.NormalizePage(q)
	var (
		items []*types.Company
		total int64
	)
	// Fetch and count inside one transaction so the page and the total
	// reflect the same snapshot.
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		items, total, err = s.repo.List(ctx, tx, rd.UserID, page)
		return err
	}); err != nil {
		s.log.Warn("List failed", "error", err, "user_id", rd.UserID)
		return nil, err
	}
	return &ListResult[*types.Company]{Items: items, Total: total, Page: page.Page, Limit: page.Limit}, nil
}

func (s *companyService) Get(ctx context.Context, id uint) (*types.Company, error) {
	rd, err := guard(ctx, access.OpRead)
	if err != nil {
		return nil, err
	}
	row, err := s.repo.GetByID(ctx, nil, rd.UserID, id)
	if err != nil {
		s.log.Warn("Get failed", "error", err, "company_id", id)
		return nil, err
	}
	if row == nil {
		return nil, apierr.NotFound("company")
	}
	return row, nil
}

func (s *companyService) Update(ctx context.Context, id uint, patch CompanyPatch) (*types.Company, error) {
	rd, err := guard(ctx, access.OpUpdate)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Domain != nil {
		updates["domain"] = *patch.Domain
	}
	if patch.Industry != nil {
		updates["industry"] = *patch.Industry
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.GetByID(ctx, tx, rd.UserID, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apierr.NotFound("company")
		}
		if patch.ContactIDs != nil {
			if err := repos.ReplaceEdges(ctx, tx, repos.CompanyContacts, id, *patch.ContactIDs); err != nil {
				return err
			}
		}
		return s.repo.UpdateFields(ctx, tx, rd.UserID, id, updates)
	}); err != nil {
		s.log.Warn("Update failed", "error", err, "company_id", id)
		return nil, err
	}
	return s.reload(ctx, rd.UserID, id)
}

func (s *companyService) Delete(ctx context.Context, id uint) error {
	rd, err := guard(ctx, access.OpDelete)
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByID(ctx, nil, rd.UserID, id)
	if err != nil {
		s.log.Warn("Delete failed", "error", err, "company_id", id)
		return err
	}
	if !deleted {
		return apierr.NotFound("company")
	}
	return nil
}

func (s *companyService) reload(ctx context.Context, ownerID, id uint) (*types.Company, error) {
	row, err := s.repo.GetByID(ctx, nil, ownerID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("reload company %d: row vanished", id)
	}
	return row, nil
}
