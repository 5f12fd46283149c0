package constraint_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
)

var currency = regexp.MustCompile(`^[A-Z]{3,3}$`)

func TestPattern(t *testing.T) {
	t.Run("passes when the whole value matches", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.Pattern("ccy", "USD", currency)))
	})

	t.Run("fails when the value does not match", func(t *testing.T) {
		err := constraint.Apply(constraint.Pattern("ccy", "us", currency))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "ccy", verr.Path)
		assert.Equal(t, "ccy does not match the required pattern", verr.Message)
	})

	t.Run("requires the full value to satisfy the pattern", func(t *testing.T) {
		// A partial match inside a longer string is not enough.
		err := constraint.Apply(constraint.Pattern("ccy", "USDX", currency))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
	})
}

func TestPatternOpt(t *testing.T) {
	t.Run("absent value never fails", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.PatternOpt("ccy", nil, currency)))
	})

	t.Run("present value must match", func(t *testing.T) {
		v := "usd"
		err := constraint.Apply(constraint.PatternOpt("ccy", &v, currency))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
	})
}
