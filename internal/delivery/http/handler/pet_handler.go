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

type PetHandler struct {
	petUsecase usecase.PetUsecase
	validator  *validator.CustomValidator
}

func NewPetHandler(petUsecase usecase.PetUsecase, validator *validator.CustomValidator) *PetHandler {
	return &PetHandler{
		petUsecase: petUsecase,
		validator:  validator,
	}
}

// ListTypes handles GET /pettypes for the pet form's type selector.
func (h *PetHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.petUsecase.ListTypes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pet types")
		return
	}

	response.Success(w, http.StatusOK, "Pet types retrieved successfully", types)
}

func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseUintVar(r, "ownerId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid owner ID", nil)
		return
	}

	var req dto.PetRequest
	if err := binding.Bind(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FormRejected(w, req, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.petUsecase.AddPet(r.Context(), ownerID, &req); err != nil {
		h.writePetError(w, r, req, err)
		return
	}

	response.Redirect(w, r, fmt.Sprintf("/owners/%d", ownerID))
}

func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.PetRequest
	if err := binding.Bind(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FormRejected(w, req, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.petUsecase.UpdatePet(r.Context(), ownerID, petID, &req); err != nil {
		h.writePetError(w, r, req, err)
		return
	}

	response.Redirect(w, r, fmt.Sprintf("/owners/%d", ownerID))
}

// writePetError maps business rule violations to field violations on the
// re-presented form; lookup misses become structured 404s.
func (h *PetHandler) writePetError(w http.ResponseWriter, r *http.Request, req dto.PetRequest, err error) {
	switch err {
	case usecase.ErrDuplicatePetName:
		response.FormRejected(w, req, map[string][]string{
			"name": {"is already in use"},
		})
	case usecase.ErrUnknownPetType:
		response.FormRejected(w, req, map[string][]string{
			"type": {"is not a known pet type"},
		})
	case usecase.ErrOwnerNotFound:
		response.NotFound(w, "Owner not found")
	case usecase.ErrPetNotFound:
		response.NotFound(w, "Pet not found")
	default:
		response.InternalServerError(w, "Failed to save pet")
	}
}
