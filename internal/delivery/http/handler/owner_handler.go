package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"go-petclinic/internal/delivery/dto"
	"go-petclinic/internal/usecase"
	"go-petclinic/pkg/binding"
	"go-petclinic/pkg/pagination"
	"go-petclinic/pkg/response"
	"go-petclinic/pkg/validator"

	"github.com/gorilla/mux"
)

type OwnerHandler struct {
	ownerUsecase usecase.OwnerUsecase
	validator    *validator.CustomValidator
}

func NewOwnerHandler(ownerUsecase usecase.OwnerUsecase, validator *validator.CustomValidator) *OwnerHandler {
	return &OwnerHandler{
		ownerUsecase: ownerUsecase,
		validator:    validator,
	}
}

// Search handles GET /owners?lastName=&page=. The outcome trichotomy maps to
// a field violation on lastName (no match), a redirect to the owner detail
// (single match) or a paginated list (two or more).
func (h *OwnerHandler) Search(w http.ResponseWriter, r *http.Request) {
	lastName := r.URL.Query().Get("lastName")
	page := parsePage(r.URL.Query().Get("page"))

	outcome, err := h.ownerUsecase.Search(r.Context(), lastName, page)
	if err != nil {
		response.InternalServerError(w, "Failed to search owners")
		return
	}

	switch outcome.Kind {
	case dto.SearchNoMatch:
		response.FormRejected(w, map[string]string{"lastName": lastName}, map[string][]string{
			"lastName": {"has not been found"},
		})

	case dto.SearchSingleMatch:
		response.Redirect(w, r, fmt.Sprintf("/owners/%d", outcome.OwnerID))

	default:
		response.SuccessWithMeta(w, http.StatusOK, "Owners retrieved successfully",
			dto.OwnerListResponse{Owners: outcome.Owners}, metaFor(outcome.Page))
	}
}

func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OwnerRequest
	if err := binding.Bind(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FormRejected(w, req, h.validator.FormatValidationErrors(err))
		return
	}

	owner, err := h.ownerUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create owner")
		return
	}

	response.Redirect(w, r, fmt.Sprintf("/owners/%d", owner.ID))
}

func (h *OwnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseUintVar(r, "ownerId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid owner ID", nil)
		return
	}

	owner, err := h.ownerUsecase.Get(r.Context(), ownerID)
	if err != nil {
		if err == usecase.ErrOwnerNotFound {
			response.NotFound(w, "Owner not found")
			return
		}
		response.InternalServerError(w, "Failed to get owner")
		return
	}

	response.Success(w, http.StatusOK, "Owner retrieved successfully", owner)
}

func (h *OwnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseUintVar(r, "ownerId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid owner ID", nil)
		return
	}

	var req dto.OwnerRequest
	if err := binding.Bind(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FormRejected(w, req, h.validator.FormatValidationErrors(err))
		return
	}

	owner, err := h.ownerUsecase.Update(r.Context(), ownerID, &req)
	if err != nil {
		if err == usecase.ErrOwnerNotFound {
			response.NotFound(w, "Owner not found")
			return
		}
		response.InternalServerError(w, "Failed to update owner")
		return
	}

	response.Redirect(w, r, fmt.Sprintf("/owners/%d", owner.ID))
}

func metaFor(page pagination.Descriptor) *response.Meta {
	return &response.Meta{
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
	}
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseUintVar(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
