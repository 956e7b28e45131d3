package usecase

import (
	"context"
	"time"

	"go-petclinic/internal/converter"
	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/domain/entity"
	"go-petclinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type VisitUsecase interface {
	AddVisit(ctx context.Context, ownerID, petID uint, req *dto.VisitRequest) (*dto.VisitResponse, error)
}

type visitUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	petRepo   repository.PetRepository
	visitRepo repository.VisitRepository
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRepo repository.PetRepository,
	visitRepo repository.VisitRepository,
) VisitUsecase {
	return &visitUsecase{
		db:        db,
		log:       log,
		petRepo:   petRepo,
		visitRepo: visitRepo,
	}
}

func (u *visitUsecase) AddVisit(ctx context.Context, ownerID, petID uint, req *dto.VisitRequest) (*dto.VisitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pet, err := u.petRepo.FindByID(tx, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil || pet.OwnerID != ownerID {
		return nil, ErrPetNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	visit := &entity.Visit{
		PetID:       petID,
		Date:        date,
		Description: req.Description,
	}
	if err := u.visitRepo.Create(tx, visit); err != nil {
		u.log.Warnf("Failed to create visit: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VisitToResponse(visit), nil
}
