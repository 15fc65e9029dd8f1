package httpx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Title  string  `validate:"required"`
	Email  string  `validate:"required,email"`
	Status string  `validate:"omitempty,oneof=published draft"`
	Note   *string `validate:"omitempty,min=1"`
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()
	require.NoError(t, Validate(samplePayload{Title: "t", Email: "a@b.com"}))
}

func TestValidate_AggregatesAllViolations(t *testing.T) {
	t.Parallel()

	err := Validate(samplePayload{Status: "archived"})
	require.Error(t, err)

	msg := err.Error()
	require.Contains(t, msg, "title is required")
	require.Contains(t, msg, "email is required")
	require.Contains(t, msg, "status must be one of: published draft")
}

func TestValidate_EmailFormat(t *testing.T) {
	t.Parallel()

	err := Validate(samplePayload{Title: "t", Email: "not-an-email"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "email must be a valid email address")
}

func TestValidate_PointerFieldsSkippedWhenNil(t *testing.T) {
	t.Parallel()

	empty := ""
	require.NoError(t, Validate(samplePayload{Title: "t", Email: "a@b.com", Note: nil}))
	require.Error(t, Validate(samplePayload{Title: "t", Email: "a@b.com", Note: &empty}))
}
