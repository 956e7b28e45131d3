package entity

// Owner represents a pet owner registered with the clinic
type Owner struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"type:varchar(30);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(30);not null;index" json:"last_name"`
	Address   string `gorm:"type:varchar(255);not null" json:"address"`
	City      string `gorm:"type:varchar(80);not null" json:"city"`
	Telephone string `gorm:"type:varchar(20);not null" json:"telephone"`

	// Relationships
	Pets []Pet `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
}

func (Owner) TableName() string {
	return "owners"
}
