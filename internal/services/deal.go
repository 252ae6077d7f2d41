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

type DealInput struct {
	Title      string      `json:"title" binding:"required"`
	Amount     *float64    `json:"amount" binding:"required"`
	Stage      types.Stage `json:"stage"`
	CompanyID  uint        `json:"companyId" binding:"required"`
	ContactIDs *[]uint     `json:"contactIds"`
}

type DealPatch struct {
	Title      *string      `json:"title"`
	Amount     *float64     `json:"amount"`
	Stage      *types.Stage `json:"stage"`
	CompanyID  *uint        `json:"companyId"`
	ContactIDs *[]uint      `json:"contactIds"`
}

type DealService interface {
	Create(ctx context.Context, in DealInput) (*types.Deal, error)
	List(ctx context.Context, q repos.PageQuery) (*ListResult[*types.Deal], error)
	Get(ctx context.Context, id uint) (*types.Deal, error)
	Update(ctx context.Context, id uint, patch DealPatch) (*types.Deal, error)
	Delete(ctx context.Context, id uint) error
}

type dealService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo *repos.DealRepo
}

func NewDealService(gdb *gorm.DB, baseLog *logger.Logger, repo *repos.DealRepo) DealService {
	return &dealService{
		db:   gdb,
		log:  baseLog.With("service", "DealService"),
		repo: repo,
	}
}

func (s *dealService) Create(ctx context.Context, in DealInput) (*types.Deal, error) {
	rd, err := guard(ctx, access.OpCreate)
	if err != nil {
		return nil, err
	}

	stage := in.Stage
	if stage == "" {
		stage = types.StageOpen
	}
	if !stage.Valid() {
		return nil, apierr.Invalid("invalid_stage", fmt.Errorf("unknown deal stage %q", in.Stage))
	}

	row := &types.Deal{
		Title:     in.Title,
		Amount:    *in.Amount,
		Stage:     stage,
		CompanyID: in.CompanyID,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkCompany(ctx, tx, in.CompanyID); err != nil {
			return err
		}
		if _, err := s.repo.Create(ctx, tx, rd.UserID, row); err != nil {
			return fmt.Errorf("create deal: %w", err)
		}
		if in.ContactIDs != nil {
			return repos.ReplaceEdges(ctx, tx, repos.DealContacts, row.ID, *in.ContactIDs)
		}
		return nil
	}); err != nil {
		s.log.Warn("Create failed", "error", err, "user_id", rd.UserID)
		return nil, err
	}
	return s.reload(ctx, rd.UserID, row.ID)
}

func (s *dealService) List(ctx context.Context, q repos.PageQuery) (*ListResult[*types.Deal], error) {
	rd, err := guard(ctx, access.OpRead)
	if err != nil {
		return nil, err
	}

	page := s.repo.NormalizePage(q)
	var (
		items []*types.Deal
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
	return &ListResult[*types.Deal]{Items: items, Total: total, Page: page.Page, Limit: page.Limit}, nil
}

func (s *dealService) Get(ctx context.Context, id uint) (*types.Deal, error) {
	rd, err := guard(ctx, access.OpRead)
	if err != nil {
		return nil, err
	}
	row, err := s.repo.GetByID(ctx, nil, rd.UserID, id)
	if err != nil {
		s.log.Warn("Get failed", "error", err, "deal_id", id)
		return nil, err
	}
	if row == nil {
		return nil, apierr.NotFound("deal")
	}
	return row, nil
}

func (s *dealService) Update(ctx context.Context, id uint, patch DealPatch) (*types.Deal, error) {
	rd, err := guard(ctx, access.OpUpdate)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.Stage != nil {
		if !patch.Stage.Valid() {
			return nil, apierr.Invalid("invalid_stage", fmt.Errorf("unknown deal stage %q", *patch.Stage))
		}
		updates["stage"] = *patch.Stage
	}
	if patch.CompanyID != nil {
		updates["company_id"] = *patch.CompanyID
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.GetByID(ctx, tx, rd.UserID, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apierr.NotFound("deal")
		}
		if patch.CompanyID != nil {
			if err := s.checkCompany(ctx, tx, *patch.CompanyID); err != nil {
				return err
			}
		}
		if patch.ContactIDs != nil {
			if err := repos.ReplaceEdges(ctx, tx, repos.DealContacts, id, *patch.ContactIDs); err != nil {
				return err
			}
		}
		return s.repo.UpdateFields(ctx, tx, rd.UserID, id, updates)
	}); err != nil {
		s.log.Warn("Update failed", "error", err, "deal_id", id)
		return nil, err
	}
	return s.reload(ctx, rd.UserID, id)
}

func (s *dealService) Delete(ctx context.Context, id uint) error {
	rd, err := guard(ctx, access.OpDelete)
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByID(ctx, nil, rd.UserID, id)
	if err != nil {
		s.log.Warn("Delete failed", "error", err, "deal_id", id)
		return err
	}
	if !deleted {
		return apierr.NotFound("deal")
	}
	return nil
}

// checkCompany enforces the required company foreign key the way the
// database would: the row must exist.
func (s *dealService) checkCompany(ctx context.Context, tx *gorm.DB, companyID uint) error {
	var n int64
	if err := tx.WithContext(ctx).Model(&types.Company{}).Where("id = ?", companyID).Count(&n).Error; err != nil {
		return fmt.Errorf("verify company: %w", err)
	}
	if n == 0 {
		return apierr.Invalid("unknown_company", fmt.Errorf("company %d does not exist", companyID))
	}
	return nil
}

func (s *dealService) reload(ctx context.Context, ownerID, id uint) (*types.Deal, error) {
	row, err := s.repo.GetByID(ctx, nil, ownerID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("reload deal %d: row vanished", id)
	}
	return row, nil
}
