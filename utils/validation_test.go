package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Whitefield":            "whitefield",
		"Electronic  City":      "electronic-city",
		"HSR Layout, Sector 2!": "hsr-layout-sector-2",
		"  padded  ":            "padded",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input))
	}
}

func TestValidatorProducesFieldErrors(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required"`
	}

	v := NewValidator()
	err := v.Validate(&payload{Email: "not-an-email"})
	require.Error(t, err)

	appErr, ok := err.(*AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	require.Len(t, appErr.Errors, 2)

	paths := []string{appErr.Errors[0].Path, appErr.Errors[1].Path}
	assert.Contains(t, paths, "email")
	assert.Contains(t, paths, "name")
}

func TestValidatorPassesValidInput(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}
	v := NewValidator()
	assert.NoError(t, v.Validate(&payload{Email: "a@b.com"}))
}
