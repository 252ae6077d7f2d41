package domain

type Stage string

const (
	StageOpen       Stage = "OPEN"
	StageInProgress Stage = "IN_PROGRESS"
	StageClosed     Stage = "CLOSED"
)

func (s Stage) Valid() bool {
	return s == StageOpen || s == StageInProgress || s == StageClosed
}

type Deal struct {
	OwnedModel
	Title     string  `gorm:"not null;column:title" json:"title"`
	Amount    float64 `gorm:"not null;column:amount" json:"amount"`
	Stage     Stage   `gorm:"type:varchar(16);not null;column:stage" json:"stage"`
	CompanyID uint    `gorm:"not null;index;column:company_id" json:"companyId"`

	Company  *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Contacts []Contact `gorm:"many2many:deal_contacts" json:"contacts,omitempty"`
}

func (Deal) TableName() string { return "deals" }
