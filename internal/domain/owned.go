package domain

import "time"

// OwnedModel is embedded by every record that belongs to exactly one user.
// CreatedByID is stamped once at creation and never changes afterwards.
type OwnedModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedByID uint      `gorm:"not null;index;column:created_by_id" json:"createdById"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (m *OwnedModel) PrimaryID() uint      { return m.ID }
func (m *OwnedModel) SetCreatedBy(id uint) { m.CreatedByID = id }

// Owned is satisfied by pointers to models embedding OwnedModel.
type Owned interface {
	PrimaryID() uint
	SetCreatedBy(id uint)
}
