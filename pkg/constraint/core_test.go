package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
)

func TestApply(t *testing.T) {
	t.Run("returns nil when no rules given", func(t *testing.T) {
		assert.NoError(t, constraint.Apply())
	})

	t.Run("returns nil when every rule passes", func(t *testing.T) {
		err := constraint.Apply(
			constraint.MinLength("id", "abc", 1),
			constraint.MaxLength("id", "abc", 35),
		)
		assert.NoError(t, err)
	})

	t.Run("returns the first violation in declaration order", func(t *testing.T) {
		err := constraint.Apply(
			constraint.MaxLength("id", "abc", 2),
			constraint.MinLength("nm", "", 1),
		)
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "id", verr.Path)
	})

	t.Run("does not evaluate rules after a failure", func(t *testing.T) {
		calls := 0
		counting := constraint.Valid("x", validatableFunc(func() error {
			calls++
			return nil
		}))
		err := constraint.Apply(
			constraint.MinLength("id", "", 1),
			counting,
		)
		require.Error(t, err)
		assert.Equal(t, 0, calls)
	})

	t.Run("is idempotent", func(t *testing.T) {
		rules := func() []constraint.Rule {
			return []constraint.Rule{
				constraint.MinLength("id", "", 1),
			}
		}
		first := constraint.ExtractValidationError(constraint.Apply(rules()...))
		second := constraint.ExtractValidationError(constraint.Apply(rules()...))
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, first, second)
	})
}

type validatableFunc func() error

func (f validatableFunc) Validate() error { return f() }
