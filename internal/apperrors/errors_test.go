package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestFieldErrorsMatchValidation(t *testing.T) {
	err := apperrors.FieldErrors{"date": "must be a valid YYYY-MM-DD date"}

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFieldErrorsMessageIsDeterministic(t *testing.T) {
	err := apperrors.FieldErrors{
		"lines[1]": "b",
		"date":     "a",
		"lines[0]": "c",
	}

	assert.Equal(t, "validation failed: date: a; lines[0]: c; lines[1]: b", err.Error())
}

func TestAppErrorMapsServerCodesToStorage(t *testing.T) {
	cause := errors.New("connection reset")

	assert.ErrorIs(t, apperrors.NewAppError(500, "query failed", cause), apperrors.ErrStorage)
	assert.ErrorIs(t, apperrors.NewAppError(503, "pool exhausted", nil), apperrors.ErrStorage)
	assert.NotErrorIs(t, apperrors.NewAppError(404, "no such journal", nil), apperrors.ErrStorage)
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperrors.NewAppError(500, "query failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "query failed: boom", err.Error())
}

func TestWrappedSentinelSurvivesFmtErrorf(t *testing.T) {
	err := fmt.Errorf("%w: account code 1000 already exists", apperrors.ErrDuplicate)

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}
