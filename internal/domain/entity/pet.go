package entity

import "time"

// Pet represents an animal under an owner's care
type Pet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(30);not null" json:"name"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birth_date"`
	TypeID    uint      `gorm:"not null;index" json:"type_id"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`

	// Relationships
	Type   PetType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	Visits []Visit `gorm:"foreignKey:PetID" json:"visits,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}
