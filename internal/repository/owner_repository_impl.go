package repository

import (
	"errors"

	"go-petclinic/internal/domain/entity"
	domainRepo "go-petclinic/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ownerRepository struct{}

func NewOwnerRepository() domainRepo.OwnerRepository {
	return &ownerRepository{}
}

func (r *ownerRepository) Create(db *gorm.DB, owner *entity.Owner) error {
	return db.Create(owner).Error
}

func (r *ownerRepository) FindByID(db *gorm.DB, id uint) (*entity.Owner, error) {
	var owner entity.Owner
	err := db.Preload("Pets.Type").Preload("Pets.Visits").First(&owner, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindByLastNamePrefix(db *gorm.DB, prefix string, limit, offset int) ([]entity.Owner, int64, error) {
	var total int64
	query := db.Model(&entity.Owner{}).Where("last_name LIKE ?", prefix+"%")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var owners []entity.Owner
	err := db.Preload("Pets").
		Where("last_name LIKE ?", prefix+"%").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&owners).Error
	if err != nil {
		return nil, 0, err
	}
	return owners, total, nil
}

func (r *ownerRepository) Update(db *gorm.DB, owner *entity.Owner) error {
	// Pets are managed through their own repository; only owner columns change here.
	return db.Omit(clause.Associations).Save(owner).Error
}
