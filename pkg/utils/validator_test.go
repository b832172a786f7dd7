package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=3"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "budi@example.com", Name: "Budi"})
	assert.Empty(t, errs)
}

func TestValidateStruct_CollectsFieldErrors(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "bukan-email", Name: "ab"})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Name")
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	assert.NoError(t, err)
	assert.True(t, CheckPassword(hash, "rahasia123"))
	assert.False(t, CheckPassword(hash, "salah"))
}
