package dto

// Visit dates are not constrained to the past; only pet birth dates are.
type VisitRequest struct {
	Date        string `json:"date" schema:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" schema:"description" validate:"required"`
}

type VisitResponse struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
