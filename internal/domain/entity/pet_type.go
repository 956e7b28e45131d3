package entity

// PetType is clinic reference data (cat, dog, lizard, ...)
type PetType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`
}

func (PetType) TableName() string {
	return "types"
}
