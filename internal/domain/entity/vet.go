package entity

// Vet represents a veterinarian employed by the clinic
type Vet struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"type:varchar(30);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(30);not null;index" json:"last_name"`

	// Relationships
	Specialties []Specialty `gorm:"many2many:vet_specialties" json:"specialties,omitempty"`
}

func (Vet) TableName() string {
	return "vets"
}
