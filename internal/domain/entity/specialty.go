package entity

// Specialty is a veterinary discipline (radiology, surgery, dentistry)
type Specialty struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(80);not null" json:"name"`
}

func (Specialty) TableName() string {
	return "specialties"
}
