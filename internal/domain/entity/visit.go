package entity

import "time"

// Visit records a single clinic visit for a pet. Future-dated visits are
// accepted; only pet birth dates are constrained to the past.
type Visit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PetID       uint      `gorm:"not null;index" json:"pet_id"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
}

func (Visit) TableName() string {
	return "visits"
}
