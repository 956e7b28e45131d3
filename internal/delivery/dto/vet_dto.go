package dto

import "encoding/xml"

type SpecialtyResponse struct {
	ID   uint   `json:"id" xml:"id"`
	Name string `json:"name" xml:"name"`
}

type VetResponse struct {
	ID          uint                `json:"id" xml:"id"`
	FirstName   string              `json:"firstName" xml:"firstName"`
	LastName    string              `json:"lastName" xml:"lastName"`
	Specialties []SpecialtyResponse `json:"specialties" xml:"specialties>specialty"`
}

// VetListResponse is the full vet roster, serialized to JSON or XML
// depending on the requested format.
type VetListResponse struct {
	XMLName xml.Name      `json:"-" xml:"vets"`
	VetList []VetResponse `json:"vetList" xml:"vetList"`
}

// VetPageResponse is one page of the vet listing.
type VetPageResponse struct {
	Vets []VetResponse `json:"listVets"`
}
