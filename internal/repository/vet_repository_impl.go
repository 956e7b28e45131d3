package repository

import (
	"go-petclinic/internal/domain/entity"
	domainRepo "go-petclinic/internal/domain/repository"

	"gorm.io/gorm"
)

type vetRepository struct{}

func NewVetRepository() domainRepo.VetRepository {
	return &vetRepository{}
}

func (r *vetRepository) FindAll(db *gorm.DB) ([]entity.Vet, error) {
	var vets []entity.Vet
	err := db.Preload("Specialties").Order("id").Find(&vets).Error
	if err != nil {
		return nil, err
	}
	return vets, nil
}

func (r *vetRepository) FindPage(db *gorm.DB, limit, offset int) ([]entity.Vet, int64, error) {
	var total int64
	if err := db.Model(&entity.Vet{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vets []entity.Vet
	err := db.Preload("Specialties").Order("id").Limit(limit).Offset(offset).Find(&vets).Error
	if err != nil {
		return nil, 0, err
	}
	return vets, total, nil
}
