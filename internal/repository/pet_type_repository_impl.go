package repository

import (
	"errors"

	"go-petclinic/internal/domain/entity"
	domainRepo "go-petclinic/internal/domain/repository"

	"gorm.io/gorm"
)

type petTypeRepository struct{}

func NewPetTypeRepository() domainRepo.PetTypeRepository {
	return &petTypeRepository{}
}

func (r *petTypeRepository) FindAll(db *gorm.DB) ([]entity.PetType, error) {
	var types []entity.PetType
	err := db.Order("name").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *petTypeRepository) FindByID(db *gorm.DB, id uint) (*entity.PetType, error) {
	var petType entity.PetType
	err := db.First(&petType, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &petType, nil
}

func (r *petTypeRepository) FindByName(db *gorm.DB, name string) (*entity.PetType, error) {
	var petType entity.PetType
	err := db.Where("name = ?", name).First(&petType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &petType, nil
}
