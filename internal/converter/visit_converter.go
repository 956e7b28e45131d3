package converter

import (
	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/domain/entity"
)

func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.VisitResponse{
		ID:          visit.ID,
		Date:        visit.Date.Format(dateLayout),
		Description: visit.Description,
	}
}

func VisitsToResponses(visits []entity.Visit) []dto.VisitResponse {
	if len(visits) == 0 {
		return nil
	}
	responses := make([]dto.VisitResponse, 0, len(visits))
	for i := range visits {
		responses = append(responses, *VisitToResponse(&visits[i]))
	}
	return responses
}
