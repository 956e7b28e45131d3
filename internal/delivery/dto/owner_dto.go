package dto

import "go-petclinic/pkg/pagination"

// Request DTOs

type OwnerRequest struct {
	FirstName string `json:"firstName" schema:"firstName" validate:"required"`
	LastName  string `json:"lastName" schema:"lastName" validate:"required"`
	Address   string `json:"address" schema:"address" validate:"required"`
	City      string `json:"city" schema:"city" validate:"required"`
	Telephone string `json:"telephone" schema:"telephone" validate:"required,numeric,len=10"`
}

// Response DTOs

type OwnerResponse struct {
	ID        uint          `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Telephone string        `json:"telephone"`
	Pets      []PetResponse `json:"pets,omitempty"`
}

type OwnerListResponse struct {
	Owners []OwnerResponse `json:"listOwners"`
}

// Search outcome

type SearchOutcomeKind string

const (
	SearchNoMatch     SearchOutcomeKind = "no_match"
	SearchSingleMatch SearchOutcomeKind = "single_match"
	SearchListPage    SearchOutcomeKind = "list_page"
)

// OwnerSearchOutcome is the zero/one/many classification of an owner search.
// OwnerID is set for single matches; Owners and Page for list pages.
type OwnerSearchOutcome struct {
	Kind    SearchOutcomeKind
	OwnerID uint
	Owners  []OwnerResponse
	Page    pagination.Descriptor
}
