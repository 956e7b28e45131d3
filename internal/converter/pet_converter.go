package converter

import (
	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	return &dto.PetResponse{
		ID:        pet.ID,
		Name:      pet.Name,
		BirthDate: pet.BirthDate.Format(dateLayout),
		Type:      pet.Type.Name,
		Visits:    VisitsToResponses(pet.Visits),
	}
}

func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	if len(pets) == 0 {
		return nil
	}
	responses := make([]dto.PetResponse, 0, len(pets))
	for i := range pets {
		responses = append(responses, *PetToResponse(&pets[i]))
	}
	return responses
}
