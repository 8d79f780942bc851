package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindBadRequest.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindAuthentication.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.HTTPStatus())
}

func TestInternal_DefaultMessage(t *testing.T) {
	err := Internal("add gym", nil)
	assert.Equal(t, "Failed to add gym", err.Message)

	wrapped := Internal("add gym", errors.New("connection reset"))
	assert.Equal(t, "connection reset", wrapped.Message)
}

func TestFrom(t *testing.T) {
	tagged := New(KindNotFound, "User not found")
	assert.Equal(t, tagged, From(tagged, "get user"))

	plain := errors.New("boom")
	got := From(plain, "get user")
	assert.Equal(t, KindInternal, got.Kind)
	assert.ErrorIs(t, got, plain)
}

func TestValidation(t *testing.T) {
	issues := []Issue{{Path: "gym_name", Message: "gym_name is required"}}
	err := Validation(issues)
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "Invalid request payload", err.Message)
	assert.Len(t, err.Issues, 1)
}
