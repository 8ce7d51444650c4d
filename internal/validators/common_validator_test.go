package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fareInput struct {
	PetrolRate *float64 `validate:"omitempty,fare_amount"`
	Vehicle    *string  `validate:"omitempty,max=8"`
}

func TestIsValidDocumentID(t *testing.T) {
	assert.True(t, IsValidDocumentID("AvSIjnKaS5vdhJmFZny2"))
	assert.True(t, IsValidDocumentID("user_1"))

	assert.False(t, IsValidDocumentID(""))
	assert.False(t, IsValidDocumentID("."))
	assert.False(t, IsValidDocumentID(".."))
	assert.False(t, IsValidDocumentID("__reserved__"))
	assert.False(t, IsValidDocumentID("a/b"))
	assert.False(t, IsValidDocumentID(strings.Repeat("x", 1501)))
}

func TestValidateStruct_FareAmount(t *testing.T) {
	ok, negative, huge := 300.0, -1.0, 2e6
	vehicle := "motorbike"

	assert.Empty(t, ValidateStruct(fareInput{}))
	assert.Empty(t, ValidateStruct(fareInput{PetrolRate: &ok}))

	errs := ValidateStruct(fareInput{PetrolRate: &negative})
	require.Len(t, errs, 1)
	assert.Equal(t, "PetrolRate", errs[0].Field)
	assert.Equal(t, "Invalid fare amount", errs[0].Message)

	assert.Len(t, ValidateStruct(fareInput{PetrolRate: &huge}), 1)

	errs = ValidateStruct(fareInput{Vehicle: &vehicle})
	require.Len(t, errs, 1)
	assert.Equal(t, "Vehicle must be at most 8 characters", errs[0].Message)
	assert.Contains(t, errs.Error(), "Vehicle:")
}
