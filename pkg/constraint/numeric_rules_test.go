package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
)

func TestMin(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.Min("value", 0.0, 0.0)))
	})

	t.Run("fails below the boundary", func(t *testing.T) {
		err := constraint.Apply(constraint.Min("value", -0.01, 0.0))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeBelowMinimum, verr.Code)
		assert.Equal(t, "value is less than the minimum value of 0.000000", verr.Message)
	})

	t.Run("works with integer types", func(t *testing.T) {
		err := constraint.Apply(constraint.Min("count", 2, 3))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "count is less than the minimum value of 3.000000", verr.Message)
	})
}

func TestMax(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.Max("rate", 100.0, 100.0)))
	})

	t.Run("fails above the boundary", func(t *testing.T) {
		err := constraint.Apply(constraint.Max("rate", 100.5, 100.0))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeAboveMaximum, verr.Code)
		assert.Equal(t, "rate exceeds the maximum value of 100.000000", verr.Message)
	})
}

func TestMinOpt(t *testing.T) {
	t.Run("absent value never fails", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.MinOpt[float64]("ctrl_sum", nil, 0)))
	})

	t.Run("present value is bounded", func(t *testing.T) {
		v := -1.0
		err := constraint.Apply(constraint.MinOpt("ctrl_sum", &v, 0))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeBelowMinimum, verr.Code)
	})
}

func TestMaxOpt(t *testing.T) {
	t.Run("absent value never fails", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.MaxOpt[float64]("rate", nil, 1)))
	})

	t.Run("present value is bounded", func(t *testing.T) {
		v := 2.0
		err := constraint.Apply(constraint.MaxOpt("rate", &v, 1))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeAboveMaximum, verr.Code)
	})
}
