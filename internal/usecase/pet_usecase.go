package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-petclinic/internal/converter"
	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/domain/entity"
	"go-petclinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPetNotFound      = errors.New("pet not found")
	ErrDuplicatePetName = errors.New("pet name already in use for this owner")
	ErrUnknownPetType   = errors.New("unknown pet type")
)

type PetUsecase interface {
	AddPet(ctx context.Context, ownerID uint, req *dto.PetRequest) (*dto.PetResponse, error)
	UpdatePet(ctx context.Context, ownerID, petID uint, req *dto.PetRequest) (*dto.PetResponse, error)
	// ListTypes feeds the pet form's type selector.
	ListTypes(ctx context.Context) ([]dto.PetTypeResponse, error)
}

type petUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	ownerRepo   repository.OwnerRepository
	petRepo     repository.PetRepository
	petTypeRepo repository.PetTypeRepository
}

func NewPetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ownerRepo repository.OwnerRepository,
	petRepo repository.PetRepository,
	petTypeRepo repository.PetTypeRepository,
) PetUsecase {
	return &petUsecase{
		db:          db,
		log:         log,
		ownerRepo:   ownerRepo,
		petRepo:     petRepo,
		petTypeRepo: petTypeRepo,
	}
}

func (u *petUsecase) AddPet(ctx context.Context, ownerID uint, req *dto.PetRequest) (*dto.PetResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	owner, err := u.ownerRepo.FindByID(tx, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find owner: %+v", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	petType, err := u.resolveType(tx, req.Type)
	if err != nil {
		return nil, err
	}

	if err := u.checkDuplicateName(tx, ownerID, 0, req.Name); err != nil {
		return nil, err
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, err
	}

	pet := &entity.Pet{
		Name:      req.Name,
		BirthDate: birthDate,
		TypeID:    petType.ID,
		OwnerID:   ownerID,
		Type:      *petType,
	}
	if err := u.petRepo.Create(tx, pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) UpdatePet(ctx context.Context, ownerID, petID uint, req *dto.PetRequest) (*dto.PetResponse, error) {
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

	petType, err := u.resolveType(tx, req.Type)
	if err != nil {
		return nil, err
	}

	if err := u.checkDuplicateName(tx, ownerID, petID, req.Name); err != nil {
		return nil, err
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, err
	}

	pet.Name = req.Name
	pet.BirthDate = birthDate
	pet.TypeID = petType.ID
	pet.Type = *petType

	if err := u.petRepo.Update(tx, pet); err != nil {
		u.log.Warnf("Failed to update pet: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) ListTypes(ctx context.Context) ([]dto.PetTypeResponse, error) {
	types, err := u.petTypeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pet types: %+v", err)
		return nil, err
	}

	responses := make([]dto.PetTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, dto.PetTypeResponse{ID: t.ID, Name: t.Name})
	}
	return responses, nil
}

func (u *petUsecase) resolveType(db *gorm.DB, name string) (*entity.PetType, error) {
	petType, err := u.petTypeRepo.FindByName(db, name)
	if err != nil {
		u.log.Warnf("Failed to find pet type: %+v", err)
		return nil, err
	}
	if petType == nil {
		return nil, ErrUnknownPetType
	}
	return petType, nil
}

// checkDuplicateName enforces name uniqueness within an owner's pet set,
// ignoring case. excludePetID skips the pet being edited.
func (u *petUsecase) checkDuplicateName(db *gorm.DB, ownerID, excludePetID uint, name string) error {
	pets, err := u.petRepo.FindByOwnerID(db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to list owner pets: %+v", err)
		return err
	}
	for _, p := range pets {
		if p.ID != excludePetID && strings.EqualFold(p.Name, name) {
			return ErrDuplicatePetName
		}
	}
	return nil
}
