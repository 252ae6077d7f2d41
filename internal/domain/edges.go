package domain

// Join rows carry no attributes of their own; the pair of foreign keys is
// the data.

type ContactCompany struct {
	ContactID uint `gorm:"primaryKey;autoIncrement:false;column:contact_id" json:"contactId"`
	CompanyID uint `gorm:"primaryKey;autoIncrement:false;column:company_id" json:"companyId"`
}

func (ContactCompany) TableName() string { return "contact_companies" }

type DealContact struct {
	DealID    uint `gorm:"primaryKey;autoIncrement:false;column:deal_id" json:"dealId"`
	ContactID uint `gorm:"primaryKey;autoIncrement:false;column:contact_id" json:"contactId"`
}

func (DealContact) TableName() string { return "deal_contacts" }
