package repository

import (
	"go-petclinic/internal/domain/entity"

	"gorm.io/gorm"
)

type VetRepository interface {
	FindAll(db *gorm.DB) ([]entity.Vet, error)
	// FindPage returns one page of vets plus the total vet count.
	FindPage(db *gorm.DB, limit, offset int) ([]entity.Vet, int64, error)
}
