package repository

import (
	"go-petclinic/internal/domain/entity"

	"gorm.io/gorm"
)

type VisitRepository interface {
	Create(db *gorm.DB, visit *entity.Visit) error
	FindByPetID(db *gorm.DB, petID uint) ([]entity.Visit, error)
}
