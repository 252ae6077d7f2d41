package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	types "github.com/dealdesk/dealdesk-backend/internal/domain"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
)

type ownedPtr[T any] interface {
	*T
	types.Owned
}

// OwnedConfig carries the per-entity knobs: the relations to preload on
// reads and the sort allow-list for list queries.
type OwnedConfig struct {
	Name        string
	Preloads    []string
	SortFields  map[string]string
	DefaultSort string
}

// OwnedRepo is the ownership-scoped repository shared by every entity.
// Every read filters by created_by_id and every write stamps or matches it,
// so one caller can never observe or touch another caller's rows. A row
// owned by someone else is reported exactly like a missing row.
type OwnedRepo[T any, PT ownedPtr[T]] struct {
	db  *gorm.DB
	log *logger.Logger
	cfg OwnedConfig
}

func NewOwnedRepo[T any, PT ownedPtr[T]](gdb *gorm.DB, baseLog *logger.Logger, cfg OwnedConfig) *OwnedRepo[T, PT] {
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "id"
	}
	return &OwnedRepo[T, PT]{
		db:  gdb,
		log: baseLog.With("repo", cfg.Name+"Repo"),
		cfg: cfg,
	}
}

func (r *OwnedRepo[T, PT]) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *OwnedRepo[T, PT]) withPreloads(t *gorm.DB) *gorm.DB {
	for _, p := range r.cfg.Preloads {
		t = t.Preload(p)
	}
	return t
}

// NormalizePage applies the entity's sort allow-list to a raw page query.
func (r *OwnedRepo[T, PT]) NormalizePage(q PageQuery) Page {
	return NormalizePage(q, r.cfg.SortFields, r.cfg.DefaultSort)
}

// Create stamps the owner and persists the row, filling its generated id.
func (r *OwnedRepo[T, PT]) Create(ctx context.Context, tx *gorm.DB, ownerID uint, row PT) (PT, error) {
	t := r.conn(tx)
	row.SetCreatedBy(ownerID)
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// GetByID returns the row only when it exists and belongs to ownerID;
// otherwise (nil, nil).
func (r *OwnedRepo[T, PT]) GetByID(ctx context.Context, tx *gorm.DB, ownerID, id uint) (PT, error) {
	if id == 0 {
		return nil, nil
	}
	t := r.withPreloads(r.conn(tx).WithContext(ctx))
	var out []PT
	if err := t.Where("id = ? AND created_by_id = ?", id, ownerID).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// List returns one page of the owner's rows plus the total row count.
// Count and fetch run on the connection the caller passes in; services wrap
// the call in a single transaction so both reads see one snapshot.
func (r *OwnedRepo[T, PT]) List(ctx context.Context, tx *gorm.DB, ownerID uint, page Page) ([]PT, int64, error) {
	t := r.conn(tx).WithContext(ctx)

	var total int64
	if err := t.Model(new(T)).Where("created_by_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]PT, 0, page.Limit)
	if err := r.withPreloads(t).
		Where("created_by_id = ?", ownerID).
		Order(page.order()).
		Offset(page.offset()).
		Limit(page.Limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateFields applies a partial column patch to the owner's row. Callers
// check ownership first; a non-matching id is a silent no-op here.
func (r *OwnedRepo[T, PT]) UpdateFields(ctx context.Context, tx *gorm.DB, ownerID, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now().UTC()
	}
	t := r.conn(tx)
	return t.WithContext(ctx).
		Model(new(T)).
		Where("id = ? AND created_by_id = ?", id, ownerID).
		Updates(updates).Error
}

// DeleteByID hard-deletes the owner's row and reports whether a row was
// actually removed.
func (r *OwnedRepo[T, PT]) DeleteByID(ctx context.Context, tx *gorm.DB, ownerID, id uint) (bool, error) {
	t := r.conn(tx)
	res := t.WithContext(ctx).Where("id = ? AND created_by_id = ?", id, ownerID).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
