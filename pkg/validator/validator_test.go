package validator

import (
	"testing"
	"time"

	"go-petclinic/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOwner() dto.OwnerRequest {
	return dto.OwnerRequest{
		FirstName: "George",
		LastName:  "Franklin",
		Address:   "110 W. Liberty St.",
		City:      "Madison",
		Telephone: "6085551023",
	}
}

func TestValidate_OwnerAccepted(t *testing.T) {
	cv := NewValidator()
	req := validOwner()
	assert.NoError(t, cv.Validate(&req))
}

func TestValidate_BlankFirstNameReportsFieldViolation(t *testing.T) {
	cv := NewValidator()
	req := validOwner()
	req.FirstName = ""

	err := cv.Validate(&req)
	require.Error(t, err)

	violations := cv.FormatValidationErrors(err)
	assert.Contains(t, violations, "firstName")
	assert.NotContains(t, violations, "lastName")
}

func TestValidate_TelephoneShape(t *testing.T) {
	cv := NewValidator()

	short := validOwner()
	short.Telephone = "12345"
	err := cv.Validate(&short)
	require.Error(t, err)
	assert.Contains(t, cv.FormatValidationErrors(err), "telephone")

	letters := validOwner()
	letters.Telephone = "abcdefghij"
	err = cv.Validate(&letters)
	require.Error(t, err)
	assert.Contains(t, cv.FormatValidationErrors(err), "telephone")
}

func TestValidate_MalformedBirthDateIsFieldViolation(t *testing.T) {
	cv := NewValidator()
	req := dto.PetRequest{Name: "Leo", BirthDate: "not-a-date", Type: "cat"}

	err := cv.Validate(&req)
	require.Error(t, err)

	violations := cv.FormatValidationErrors(err)
	require.Contains(t, violations, "birthDate")
	assert.Len(t, violations["birthDate"], 1, "unparseable dates should be reported once")
}

func TestValidate_FutureBirthDateRejected(t *testing.T) {
	cv := NewValidator()
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	req := dto.PetRequest{Name: "Leo", BirthDate: future, Type: "cat"}

	err := cv.Validate(&req)
	require.Error(t, err)
	assert.Contains(t, cv.FormatValidationErrors(err), "birthDate")
}

func TestValidate_PastBirthDateAccepted(t *testing.T) {
	cv := NewValidator()
	req := dto.PetRequest{Name: "Leo", BirthDate: "2010-09-07", Type: "cat"}
	assert.NoError(t, cv.Validate(&req))
}

// Visit dates carry no past-only constraint, unlike pet birth dates.
func TestValidate_FutureVisitDateAccepted(t *testing.T) {
	cv := NewValidator()
	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	req := dto.VisitRequest{Date: future, Description: "rabies shot"}
	assert.NoError(t, cv.Validate(&req))
}
