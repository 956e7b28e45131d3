package converter

import (
	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/domain/entity"
)

// OwnerToResponse converts an Owner entity (with any preloaded pets) to its DTO
func OwnerToResponse(owner *entity.Owner) *dto.OwnerResponse {
	if owner == nil {
		return nil
	}

	return &dto.OwnerResponse{
		ID:        owner.ID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Address:   owner.Address,
		City:      owner.City,
		Telephone: owner.Telephone,
		Pets:      PetsToResponses(owner.Pets),
	}
}

func OwnersToResponses(owners []entity.Owner) []dto.OwnerResponse {
	responses := make([]dto.OwnerResponse, 0, len(owners))
	for i := range owners {
		responses = append(responses, *OwnerToResponse(&owners[i]))
	}
	return responses
}
