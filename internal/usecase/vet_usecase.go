package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go-petclinic/internal/converter"
	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/domain/repository"
	"go-petclinic/pkg/pagination"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	vetListCacheKey = "vets:all"
	vetListCacheTTL = 5 * time.Minute
)

type VetUsecase interface {
	ListPage(ctx context.Context, page int) (*dto.VetPageResponse, pagination.Descriptor, error)
	ListAll(ctx context.Context) (*dto.VetListResponse, error)
}

type vetUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	vetRepo  repository.VetRepository
	cache    *redis.Client
	pageSize int
}

// NewVetUsecase wires the vet listing. cache may be nil; the full roster is
// read-through cached when it is not.
func NewVetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vetRepo repository.VetRepository,
	cache *redis.Client,
	pageSize int,
) VetUsecase {
	return &vetUsecase{
		db:       db,
		log:      log,
		vetRepo:  vetRepo,
		cache:    cache,
		pageSize: pageSize,
	}
}

func (u *vetUsecase) ListPage(ctx context.Context, page int) (*dto.VetPageResponse, pagination.Descriptor, error) {
	offset := pagination.PageOffset(u.pageSize, page)

	vets, total, err := u.vetRepo.FindPage(u.db.WithContext(ctx), u.pageSize, offset)
	if err != nil {
		u.log.Warnf("Failed to list vets: %+v", err)
		return nil, pagination.Descriptor{}, err
	}

	return &dto.VetPageResponse{
		Vets: converter.VetsToResponses(vets),
	}, pagination.Paginate(total, u.pageSize, page), nil
}

func (u *vetUsecase) ListAll(ctx context.Context) (*dto.VetListResponse, error) {
	if cached := u.fromCache(ctx); cached != nil {
		return cached, nil
	}

	vets, err := u.vetRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list vets: %+v", err)
		return nil, err
	}

	list := &dto.VetListResponse{VetList: converter.VetsToResponses(vets)}
	u.toCache(ctx, list)
	return list, nil
}

// Cache failures are logged and ignored; the store remains authoritative.

func (u *vetUsecase) fromCache(ctx context.Context) *dto.VetListResponse {
	if u.cache == nil {
		return nil
	}
	payload, err := u.cache.Get(ctx, vetListCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			u.log.Warnf("Failed to read vet list cache: %+v", err)
		}
		return nil
	}
	var list dto.VetListResponse
	if err := json.Unmarshal(payload, &list); err != nil {
		u.log.Warnf("Failed to decode vet list cache: %+v", err)
		return nil
	}
	return &list
}

func (u *vetUsecase) toCache(ctx context.Context, list *dto.VetListResponse) {
	if u.cache == nil {
		return
	}
	payload, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, vetListCacheKey, payload, vetListCacheTTL).Err(); err != nil {
		u.log.Warnf("Failed to write vet list cache: %+v", err)
	}
}
