package handler

import (
	"fmt"
	"net/http"

	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/usecase"
	"go-petclinic/pkg/binding"
	"go-petclinic/pkg/response"
	"go-petclinic/pkg/validator"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

func (h *VisitHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseUintVar(r, "ownerId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid owner ID", nil)
		return
	}
	petID, err := parseUintVar(r, "petId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	var req dto.VisitRequest
	if err := binding.Bind(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FormRejected(w, req, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.visitUsecase.AddVisit(r.Context(), ownerID, petID, &req); err != nil {
		if err == usecase.ErrPetNotFound {
			response.NotFound(w, "Pet not found")
			return
		}
		response.InternalServerError(w, "Failed to create visit")
		return
	}

	response.Redirect(w, r, fmt.Sprintf("/owners/%d", ownerID))
}
