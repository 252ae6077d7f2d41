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

type ContactInput struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	CompanyIDs *[]uint `json:"companyIds"`
}

type ContactPatch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	CompanyIDs *[]uint `json:"companyIds"`
}

type ContactService interface {
	Create(ctx context.Context, in ContactInput) (*types.Contact, error)
	List(ctx context.Context, q repos.PageQuery) (*ListResult[*types.Contact], error)
	Get(ctx context.Context, id uint) (*types.Contact, error)
	Update(ctx context.Context, id uint, patch ContactPatch) (*types.Contact, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo *repos.ContactRepo
}

func NewContactService(gdb *gorm.DB, baseLog *logger.Logger, repo *repos.ContactRepo) ContactService {
	return &contactService{
		db:   gdb,
		log:  baseLog.With("service", "ContactService"),
		repo: repo,
	}
}

func (s *contactService) Create(ctx context.Context, in ContactInput) (*types.Contact, error) {
	rd, err := guard(ctx, access.OpCreate)
	if err != nil {
		return nil, err
	}

	row := &types.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.Create(ctx, tx, rd.UserID, row); err != nil {
			return fmt.Errorf("create contact: %w", err)
		}
		if in.CompanyIDs != nil {
			return repos.ReplaceEdges(ctx, tx, repos.ContactCompanies, row.ID, *in.CompanyIDs)
		}
		return nil
	}); err != nil {
		s.log.Warn("Create failed", "error", err, "user_id", rd.UserID)
		return nil, err
	}
	return s.reload(ctx, rd.UserID, row.ID)
}

func (s *contactService) List(ctx context.Context, q repos.PageQuery) (*ListResult[*types.Contact], error) {
	rd, err := guard(ctx, access.OpRead)
	if err != nil {
		return nil, err
	}

	page := s.repo.NormalizePage(q)
	var (
		items []*types.Contact
		total int64
	)
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		items, total, err = s.repo.List(ctx, tx, rd.UserID, page)
		return err
	}); err != nil {
		s.log.Warn("List failed", "error", err, "user_id", rd.UserID)
		return nil, err
	}
	return &ListResult[*types.Contact]{Items: items, Total: total, Page: page.Page, Limit: page.Limit}, nil
}

func (s *contactService) Get(ctx context.Context, id uint) (*types.Contact, error) {
	rd, err := guard(ctx, access.OpRead)
	if err != nil {
		return nil, err
	}
	row, err := s.repo.GetByID(ctx, nil, rd.UserID, id)
	if err != nil {
		s.log.Warn("Get failed", "error", err, "contact_id", id)
		return nil, err
	}
	if row == nil {
		return nil, apierr.NotFound("contact")
	}
	return row, nil
}

func (s *contactService) Update(ctx context.Context, id uint, patch ContactPatch) (*types.Contact, error) {
	rd, err := guard(ctx, access.OpUpdate)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
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
			return apierr.NotFound("contact")
		}
		if patch.CompanyIDs != nil {
			if err := repos.ReplaceEdges(ctx, tx, repos.ContactCompanies, id, *patch.CompanyIDs); err != nil {
				return err
			}
		}
		return s.repo.UpdateFields(ctx, tx, rd.UserID, id, updates)
	}); err != nil {
		s.log.Warn("Update failed", "error", err, "contact_id", id)
		return nil, err
	}
	return s.reload(ctx, rd.UserID, id)
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	rd, err := guard(ctx, access.OpDelete)
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByID(ctx, nil, rd.UserID, id)
	if err != nil {
		s.log.Warn("Delete failed", "error", err, "contact_id", id)
		return err
	}
	if !deleted {
		return apierr.NotFound("contact")
	}
	return nil
}

func (s *contactService) reload(ctx context.Context, ownerID, id uint) (*types.Contact, error) {
	row, err := s.repo.GetByID(ctx, nil, ownerID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("reload contact %d: row vanished", id)
	}
	return row, nil
}
