package handler

import (
	"encoding/xml"
	"net/http"
	"strings"

	"go-petclinic/internal/usecase"
	"go-petclinic/pkg/response"
)

type VetHandler struct {
	vetUsecase usecase.VetUsecase
}

func NewVetHandler(vetUsecase usecase.VetUsecase) *VetHandler {
	return &VetHandler{vetUsecase: vetUsecase}
}

// ListPage handles GET /vets.html?page= with the fixed listing page size.
func (h *VetHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))

	vets, desc, err := h.vetUsecase.ListPage(r.Context(), page)
	if err != nil {
		response.InternalServerError(w, "Failed to list vets")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Vets retrieved successfully", vets, metaFor(desc))
}

// ListAll handles GET /vets: the full roster, XML when the Accept header
// asks for it, JSON otherwise. The payload is the bare list so repeated
// reads are byte-identical absent writes.
func (h *VetHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	vets, err := h.vetUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list vets")
		return
	}

	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/xml") || strings.Contains(accept, "text/xml") {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusOK)
		xml.NewEncoder(w).Encode(vets)
		return
	}

	response.JSON(w, http.StatusOK, vets)
}
