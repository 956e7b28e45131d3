package repository

import (
	"go-petclinic/internal/domain/entity"

	"gorm.io/gorm"
)

type OwnerRepository interface {
	Create(db *gorm.DB, owner *entity.Owner) error
	FindByID(db *gorm.DB, id uint) (*entity.Owner, error)
	// FindByLastNamePrefix returns one page of owners whose last name starts
	// with prefix, plus the total match count. An empty prefix matches all.
	FindByLastNamePrefix(db *gorm.DB, prefix string, limit, offset int) ([]entity.Owner, int64, error)
	Update(db *gorm.DB, owner *entity.Owner) error
}
