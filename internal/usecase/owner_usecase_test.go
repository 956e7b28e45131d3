package usecase

import (
	"context"
	"testing"

	"go-petclinic/config"
	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOwnerUsecase(db *gorm.DB, search config.SearchConfig) OwnerUsecase {
	if search.PageSize == 0 {
		search.PageSize = 5
	}
	return NewOwnerUsecase(db, testLogger(), repository.NewOwnerRepository(), search)
}

func TestSearch_NoMatch(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	outcome, err := uc.Search(context.Background(), "NonExistentName", 1)
	require.NoError(t, err)
	assert.Equal(t, dto.SearchNoMatch, outcome.Kind)
}

func TestSearch_SingleMatchRedirectsToOwner(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	outcome, err := uc.Search(context.Background(), "Franklin", 1)
	require.NoError(t, err)
	assert.Equal(t, dto.SearchSingleMatch, outcome.Kind)
	assert.Equal(t, uint(1), outcome.OwnerID)
}

func TestSearch_SingleMatchIgnoresRequestedPage(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	outcome, err := uc.Search(context.Background(), "Franklin", 5)
	require.NoError(t, err)
	assert.Equal(t, dto.SearchSingleMatch, outcome.Kind)
	assert.Equal(t, uint(1), outcome.OwnerID)
}

func TestSearch_TwoDavisOwnersYieldListPage(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	outcome, err := uc.Search(context.Background(), "Davis", 1)
	require.NoError(t, err)
	assert.Equal(t, dto.SearchListPage, outcome.Kind)
	assert.Equal(t, int64(2), outcome.Page.TotalItems)
	assert.Equal(t, 1, outcome.Page.CurrentPage)
	assert.Len(t, outcome.Owners, 2)
}

func TestSearch_PrefixMatch(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	outcome, err := uc.Search(context.Background(), "Dav", 1)
	require.NoError(t, err)
	assert.Equal(t, dto.SearchListPage, outcome.Kind)
	assert.Equal(t, int64(2), outcome.Page.TotalItems)
}

func TestSearch_EmptyFilterListsAllPaged(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	first, err := uc.Search(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Equal(t, dto.SearchListPage, first.Kind)
	assert.Equal(t, int64(10), first.Page.TotalItems)
	assert.Equal(t, 2, first.Page.TotalPages)
	assert.Len(t, first.Owners, 5)

	second, err := uc.Search(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Page.CurrentPage)
	assert.LessOrEqual(t, len(second.Owners), 5)
}

func TestSearch_PageBeyondLastReturnsEmptyPage(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	outcome, err := uc.Search(context.Background(), "", 999)
	require.NoError(t, err)
	assert.Equal(t, dto.SearchListPage, outcome.Kind)
	assert.Empty(t, outcome.Owners)
	assert.Equal(t, 999, outcome.Page.CurrentPage)
	assert.Equal(t, int64(10), outcome.Page.TotalItems)
	assert.Equal(t, 2, outcome.Page.TotalPages)
}

func TestSearch_WhitespacePassesThroughByDefault(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	outcome, err := uc.Search(context.Background(), "  Davis  ", 1)
	require.NoError(t, err)
	assert.Equal(t, dto.SearchNoMatch, outcome.Kind)
}

func TestSearch_WhitespaceTrimmedWhenConfigured(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{TrimLastName: true})

	outcome, err := uc.Search(context.Background(), "  Davis  ", 1)
	require.NoError(t, err)
	assert.Equal(t, dto.SearchListPage, outcome.Kind)
	assert.Equal(t, int64(2), outcome.Page.TotalItems)
}

func TestCreateThenSearchRoundTrip(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	created, err := uc.Create(context.Background(), &dto.OwnerRequest{
		FirstName: "John",
		LastName:  "Doe",
		Address:   "123 Main St.",
		City:      "Madison",
		Telephone: "6085550000",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	outcome, err := uc.Search(context.Background(), "Doe", 1)
	require.NoError(t, err)
	assert.Equal(t, dto.SearchSingleMatch, outcome.Kind)
	assert.Equal(t, created.ID, outcome.OwnerID)
}

func TestGet_UnknownOwnerIsTypedNotFound(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	_, err := uc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestUpdate_PersistsNewFields(t *testing.T) {
	db := openTestDB(t)
	seedClinic(t, db)
	uc := newOwnerUsecase(db, config.SearchConfig{})

	updated, err := uc.Update(context.Background(), 1, &dto.OwnerRequest{
		FirstName: "George",
		LastName:  "UpdatedFranklin",
		Address:   "110 W. Liberty St.",
		City:      "Madison",
		Telephone: "6085551023",
	})
	require.NoError(t, err)
	assert.Equal(t, "UpdatedFranklin", updated.LastName)

	fetched, err := uc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "UpdatedFranklin", fetched.LastName)
}
