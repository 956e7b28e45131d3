package repository

import (
	"go-petclinic/internal/domain/entity"

	"gorm.io/gorm"
)

type PetTypeRepository interface {
	FindAll(db *gorm.DB) ([]entity.PetType, error)
	FindByID(db *gorm.DB, id uint) (*entity.PetType, error)
	FindByName(db *gorm.DB, name string) (*entity.PetType, error)
}
