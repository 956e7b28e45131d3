package repository

import (
	"go-petclinic/internal/domain/entity"

	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet) error
	FindByID(db *gorm.DB, id uint) (*entity.Pet, error)
	FindByOwnerID(db *gorm.DB, ownerID uint) ([]entity.Pet, error)
	Update(db *gorm.DB, pet *entity.Pet) error
}
