package repository

import (
	"errors"

	"go-petclinic/internal/domain/entity"
	domainRepo "go-petclinic/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type petRepository struct{}

func NewPetRepository() domainRepo.PetRepository {
	return &petRepository{}
}

func (r *petRepository) Create(db *gorm.DB, pet *entity.Pet) error {
	// The referenced type is clinic seed data; never write it from here.
	return db.Omit(clause.Associations).Create(pet).Error
}

func (r *petRepository) FindByID(db *gorm.DB, id uint) (*entity.Pet, error) {
	var pet entity.Pet
	err := db.Preload("Type").Preload("Visits").First(&pet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) FindByOwnerID(db *gorm.DB, ownerID uint) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Preload("Type").Where("owner_id = ?", ownerID).Order("id").Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) Update(db *gorm.DB, pet *entity.Pet) error {
	return db.Omit(clause.Associations).Save(pet).Error
}
