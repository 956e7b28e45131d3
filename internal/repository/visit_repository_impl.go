package repository

import (
	"go-petclinic/internal/domain/entity"
	domainRepo "go-petclinic/internal/domain/repository"

	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Create(db *gorm.DB, visit *entity.Visit) error {
	return db.Create(visit).Error
}

func (r *visitRepository) FindByPetID(db *gorm.DB, petID uint) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.Where("pet_id = ?", petID).Order("date").Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}
