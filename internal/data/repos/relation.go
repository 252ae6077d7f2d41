package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	types "github.com/dealdesk/dealdesk-backend/internal/domain"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/apierr"
)

// Relation describes one side of a many-to-many association: the join row
// type, the column holding the record's id, and the entity the other column
// must reference.
type Relation[E any] struct {
	Name         string
	RecordColumn string
	TargetModel  interface{}
	Edge         func(recordID, targetID uint) E
}

var (
	// CompanyContacts and ContactCompanies are the two sides of the same
	// contact_companies table.
	CompanyContacts = Relation[types.ContactCompany]{
		Name:         "company contacts",
		RecordColumn: "company_id",
		TargetModel:  &types.Contact{},
		Edge: func(recordID, targetID uint) types.ContactCompany {
			return types.ContactCompany{CompanyID: recordID, ContactID: targetID}
		},
	}

	ContactCompanies = Relation[types.ContactCompany]{
		Name:         "contact companies",
		RecordColumn: "contact_id",
		TargetModel:  &types.Company{},
		Edge: func(recordID, targetID uint) types.ContactCompany {
			return types.ContactCompany{ContactID: recordID, CompanyID: targetID}
		},
	}

	DealContacts = Relation[types.DealContact]{
		Name:         "deal contacts",
		RecordColumn: "deal_id",
		TargetModel:  &types.Contact{},
		Edge: func(recordID, targetID uint) types.DealContact {
			return types.DealContact{DealID: recordID, ContactID: targetID}
		},
	}
)

// ReplaceEdges rewrites the full edge set for recordID inside the caller's
// transaction: every existing edge is deleted, then one edge per distinct
// target id is inserted. An empty target set therefore clears the relation.
// Every target id must reference an existing row; a miss fails the
// transaction so no partial rewrite is ever observable.
func ReplaceEdges[E any](ctx context.Context, tx *gorm.DB, rel Relation[E], recordID uint, targetIDs []uint) error {
	if err := tx.WithContext(ctx).
		Where(rel.RecordColumn+" = ?", recordID).
		Delete(new(E)).Error; err != nil {
		return fmt.Errorf("clear %s edges: %w", rel.Name, err)
	}

	ids := dedupeIDs(targetIDs)
	if len(ids) == 0 {
		return nil
	}

	var found int64
	if err := tx.WithContext(ctx).
		Model(rel.TargetModel).
		Where("id IN ?", ids).
		Count(&found).Error; err != nil {
		return fmt.Errorf("verify %s targets: %w", rel.Name, err)
	}
	if found != int64(len(ids)) {
		return apierr.Invalid("unknown_relation_target",
			fmt.Errorf("%s: %d of %d target ids do not exist", rel.Name, int64(len(ids))-found, len(ids)))
	}

	edges := make([]E, 0, len(ids))
	for _, id := range ids {
		edges = append(edges, rel.Edge(recordID, id))
	}
	if err := tx.WithContext(ctx).Create(&edges).Error; err != nil {
		return fmt.Errorf("insert %s edges: %w", rel.Name, err)
	}
	return nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
