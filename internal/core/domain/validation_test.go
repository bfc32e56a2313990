package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBike() *Bike {
	return &Bike{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Brand:        "Trek",
		Model:        "FX3",
		Type:         Hybrid,
		Year:         2021,
		Color:        "black",
		SerialNumber: "WTU123456",
		Status:       BikeRegistered,
	}
}

func TestNewValidator_Bike(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Struct(validBike()))

	bike := validBike()
	bike.Type = "unicycle"
	bike.Year = MaxBikeYear(time.Now()) + 1
	bike.SerialNumber = ""

	err := ValidationIssues(v.Struct(bike))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, ErrValidation)

	fields := map[string]string{}
	for _, issue := range verr.Issues {
		fields[issue.Field] = issue.Message
	}
	assert.Equal(t, "unknown bike type", fields["type"])
	assert.Contains(t, fields["year"], "must be between 1970")
	assert.Equal(t, "is required", fields["serialNumber"])
}

func TestValidationIssues_PassesOtherErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.Same(t, plain, ValidationIssues(plain))
	assert.NoError(t, ValidationIssues(nil))
}

func TestValidationError_OrNil(t *testing.T) {
	verr := &ValidationError{}
	assert.NoError(t, verr.OrNil())

	verr.Add("brand", "is required")
	err := verr.OrNil()
	require.Error(t, err)
	assert.Equal(t, "validation failed: brand: is required", err.Error())
}

func TestErrorSentinels(t *testing.T) {
	assert.ErrorIs(t, ErrBikeNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrActiveReportExists, ErrConflict)
	assert.ErrorIs(t, ErrReportNotActive, ErrConflict)
	assert.ErrorIs(t, ErrInvalidCredentials, ErrForbidden)
}

func TestUser_ContactCard(t *testing.T) {
	u := &User{Username: "dana", FirstName: "Dana", LastName: "Levi", Phone: "+972", Email: "d@example.com"}
	assert.Equal(t, Contact{Name: "Dana Levi", Phone: "+972", Email: "d@example.com"}, u.ContactCard())

	anon := &User{Username: "rider42"}
	assert.Equal(t, "rider42", anon.ContactCard().Name)
}
