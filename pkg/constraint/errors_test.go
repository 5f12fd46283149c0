package constraint_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
)

func TestValidationError(t *testing.T) {
	t.Run("formats path, message and code", func(t *testing.T) {
		verr := constraint.NewError(constraint.CodeTooShort, "msg_id", "msg_id is shorter than the minimum length of 1")
		assert.Equal(t, "msg_id: msg_id is shorter than the minimum length of 1 (code 1001)", verr.Error())
	})

	t.Run("omits an empty path", func(t *testing.T) {
		verr := &constraint.ValidationError{Code: constraint.CodePatternMismatch, Message: "no match"}
		assert.Equal(t, "no match (code 1005)", verr.Error())
	})
}

func TestExtractValidationError(t *testing.T) {
	t.Run("returns nil for nil", func(t *testing.T) {
		assert.Nil(t, constraint.ExtractValidationError(nil))
	})

	t.Run("returns nil for unrelated errors", func(t *testing.T) {
		assert.Nil(t, constraint.ExtractValidationError(errors.New("boom")))
	})

	t.Run("unwraps wrapped violations", func(t *testing.T) {
		verr := constraint.NewError(constraint.CodeTooLong, "nm", "nm exceeds the maximum length of 140")
		wrapped := fmt.Errorf("validating sample: %w", verr)
		got := constraint.ExtractValidationError(wrapped)
		require.NotNil(t, got)
		assert.Equal(t, verr, got)
	})
}

func TestIsValidationError(t *testing.T) {
	t.Run("true for violations", func(t *testing.T) {
		verr := constraint.NewError(constraint.CodeBelowMinimum, "value", "value is less than the minimum value of 0.000000")
		assert.True(t, constraint.IsValidationError(verr))
	})

	t.Run("false for other errors", func(t *testing.T) {
		assert.False(t, constraint.IsValidationError(errors.New("boom")))
	})
}
