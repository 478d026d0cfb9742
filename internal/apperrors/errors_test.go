package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationFamily(t *testing.T) {
	for _, err := range []error{ErrInvalidLineItem, ErrInvalidTaxRate, ErrInvalidPayment} {
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.ErrorIs(t, ErrDuplicateDocumentNumber, ErrDuplicate)
	assert.NotErrorIs(t, ErrStoreUnavailable, ErrValidation)
}

func TestFieldError(t *testing.T) {
	err := fmt.Errorf("creating invoice: %w", NewFieldError(ErrInvalidTaxRate, "lineItems[0].taxRatePercent", "must be one of 0, 5, 12, 18, 28"))

	assert.ErrorIs(t, err, ErrInvalidTaxRate)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "lineItems[0].taxRatePercent", FieldOf(err))
	assert.Contains(t, err.Error(), "invalid tax rate")
	assert.Empty(t, FieldOf(ErrNotFound))
}

func TestAppError(t *testing.T) {
	appErr := NewAppError(http.StatusBadRequest, "invalid nextToken", ErrValidation)

	var target *AppError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", appErr), &target))
	assert.Equal(t, http.StatusBadRequest, target.Code)
	assert.ErrorIs(t, appErr, ErrValidation)
	assert.Equal(t, "boom", NewInternalServerError("boom").Error())
}
