package dto

type PetRequest struct {
	Name      string `json:"name" schema:"name" validate:"required"`
	BirthDate string `json:"birthDate" schema:"birthDate" validate:"required,datetime=2006-01-02,pastdate"`
	Type      string `json:"type" schema:"type" validate:"required"`
}

type PetTypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PetResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	BirthDate string          `json:"birthDate"`
	Type      string          `json:"type"`
	Visits    []VisitResponse `json:"visits,omitempty"`
}
