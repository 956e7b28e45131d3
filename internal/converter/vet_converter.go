package converter

import (
	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/domain/entity"
)

func VetToResponse(vet *entity.Vet) *dto.VetResponse {
	if vet == nil {
		return nil
	}

	specialties := make([]dto.SpecialtyResponse, 0, len(vet.Specialties))
	for _, s := range vet.Specialties {
		specialties = append(specialties, dto.SpecialtyResponse{ID: s.ID, Name: s.Name})
	}

	return &dto.VetResponse{
		ID:          vet.ID,
		FirstName:   vet.FirstName,
		LastName:    vet.LastName,
		Specialties: specialties,
	}
}

func VetsToResponses(vets []entity.Vet) []dto.VetResponse {
	responses := make([]dto.VetResponse, 0, len(vets))
	for i := range vets {
		responses = append(responses, *VetToResponse(&vets[i]))
	}
	return responses
}
