package domain

type Company struct {
	OwnedModel
	Name     string `gorm:"not null;column:name" json:"name"`
	Domain   string `gorm:"column:domain" json:"domain,omitempty"`
	Industry string `gorm:"column:industry" json:"industry,omitempty"`
	Address  string `gorm:"column:address" json:"address,omitempty"`

	Contacts []Contact `gorm:"many2many:contact_companies" json:"contacts,omitempty"`
	Deals    []Deal    `gorm:"foreignKey:CompanyID" json:"deals,omitempty"`
}

func (Company) TableName() string { return "companies" }
