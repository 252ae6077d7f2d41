package domain

type Contact struct {
	OwnedModel
	Name    string `gorm:"not null;column:name" json:"name"`
	Email   string `gorm:"column:email" json:"email,omitempty"`
	Phone   string `gorm:"column:phone" json:"phone,omitempty"`
	Address string `gorm:"column:address" json:"address,omitempty"`

	Companies []Company `gorm:"many2many:contact_companies" json:"companies,omitempty"`
	Deals     []Deal    `gorm:"many2many:deal_contacts" json:"deals,omitempty"`
}

func (Contact) TableName() string { return "contacts" }
