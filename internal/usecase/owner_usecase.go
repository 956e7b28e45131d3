package usecase

import (
	"context"
	"errors"
	"strings"

	"go-petclinic/config"
	"go-petclinic/internal/converter"
	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/domain/entity"
	"go-petclinic/internal/domain/repository"
	"go-petclinic/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrOwnerNotFound = errors.New("owner not found")

type OwnerUsecase interface {
	Create(ctx context.Context, req *dto.OwnerRequest) (*dto.OwnerResponse, error)
	Get(ctx context.Context, id uint) (*dto.OwnerResponse, error)
	Update(ctx context.Context, id uint, req *dto.OwnerRequest) (*dto.OwnerResponse, error)
	Search(ctx context.Context, lastName string, page int) (*dto.OwnerSearchOutcome, error)
}

type ownerUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	ownerRepo repository.OwnerRepository
	search    config.SearchConfig
}

func NewOwnerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ownerRepo repository.OwnerRepository,
	search config.SearchConfig,
) OwnerUsecase {
	return &ownerUsecase{
		db:        db,
		log:       log,
		ownerRepo: ownerRepo,
		search:    search,
	}
}

func (u *ownerUsecase) Create(ctx context.Context, req *dto.OwnerRequest) (*dto.OwnerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	owner := &entity.Owner{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		Telephone: req.Telephone,
	}
	if err := u.ownerRepo.Create(tx, owner); err != nil {
		u.log.Warnf("Failed to create owner: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.OwnerToResponse(owner), nil
}

func (u *ownerUsecase) Get(ctx context.Context, id uint) (*dto.OwnerResponse, error) {
	owner, err := u.ownerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find owner: %+v", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	return converter.OwnerToResponse(owner), nil
}

func (u *ownerUsecase) Update(ctx context.Context, id uint, req *dto.OwnerRequest) (*dto.OwnerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	owner, err := u.ownerRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find owner: %+v", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	owner.FirstName = req.FirstName
	owner.LastName = req.LastName
	owner.Address = req.Address
	owner.City = req.City
	owner.Telephone = req.Telephone

	if err := u.ownerRepo.Update(tx, owner); err != nil {
		u.log.Warnf("Failed to update owner: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.OwnerToResponse(owner), nil
}

// Search classifies an owner last-name lookup as no-match, single-match or
// list-page. The filter is a prefix match; it passes through verbatim unless
// TrimLastName is configured. Pages past the last return an empty list page
// with correct totals.
func (u *ownerUsecase) Search(ctx context.Context, lastName string, page int) (*dto.OwnerSearchOutcome, error) {
	filter := lastName
	if u.search.TrimLastName {
		filter = strings.TrimSpace(filter)
	}

	db := u.db.WithContext(ctx)
	pageSize := u.search.PageSize
	offset := pagination.PageOffset(pageSize, page)

	owners, total, err := u.ownerRepo.FindByLastNamePrefix(db, filter, pageSize, offset)
	if err != nil {
		u.log.Warnf("Failed to search owners: %+v", err)
		return nil, err
	}

	switch {
	case total == 0:
		return &dto.OwnerSearchOutcome{Kind: dto.SearchNoMatch}, nil

	case total == 1:
		// A single match redirects regardless of the requested page, so
		// refetch the first page if the request pointed past it.
		if len(owners) == 0 {
			owners, _, err = u.ownerRepo.FindByLastNamePrefix(db, filter, pageSize, 0)
			if err != nil {
				u.log.Warnf("Failed to search owners: %+v", err)
				return nil, err
			}
		}
		return &dto.OwnerSearchOutcome{
			Kind:    dto.SearchSingleMatch,
			OwnerID: owners[0].ID,
		}, nil

	default:
		return &dto.OwnerSearchOutcome{
			Kind:   dto.SearchListPage,
			Owners: converter.OwnersToResponses(owners),
			Page:   pagination.Paginate(total, pageSize, page),
		}, nil
	}
}
