package constraint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
)

func TestMinLength(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.MinLength("ref", "a", 1)))
	})

	t.Run("fails below the boundary", func(t *testing.T) {
		err := constraint.Apply(constraint.MinLength("ref", "", 1))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "ref", verr.Path)
		assert.Equal(t, "ref is shorter than the minimum length of 1", verr.Message)
	})

	t.Run("counts unicode scalars rather than bytes", func(t *testing.T) {
		// Three runes, nine bytes.
		assert.NoError(t, constraint.Apply(constraint.MinLength("nm", "日本語", 3)))

		err := constraint.Apply(constraint.MinLength("nm", "日本語", 4))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
	})
}

func TestMaxLength(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.MaxLength("msg_id", strings.Repeat("a", 35), 35)))
	})

	t.Run("fails above the boundary", func(t *testing.T) {
		err := constraint.Apply(constraint.MaxLength("msg_id", strings.Repeat("a", 36), 35))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
		assert.Equal(t, "msg_id exceeds the maximum length of 35", verr.Message)
	})

	t.Run("counts unicode scalars rather than bytes", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.MaxLength("nm", "日本語", 3)))
	})
}

func TestMinLengthOpt(t *testing.T) {
	t.Run("absent value never fails", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.MinLengthOpt("desc", nil, 1)))
	})

	t.Run("present empty value fails", func(t *testing.T) {
		empty := ""
		err := constraint.Apply(constraint.MinLengthOpt("desc", &empty, 1))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
	})
}

func TestMaxLengthOpt(t *testing.T) {
	t.Run("absent value never fails", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.MaxLengthOpt("desc", nil, 1)))
	})

	t.Run("present value is bounded", func(t *testing.T) {
		long := strings.Repeat("x", 141)
		err := constraint.Apply(constraint.MaxLengthOpt("desc", &long, 140))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooLong, verr.Code)
	})
}

func TestLengthEach(t *testing.T) {
	t.Run("empty slice passes", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.LengthEach("ustrd", nil, 1, 140)))
	})

	t.Run("all elements within bounds pass", func(t *testing.T) {
		assert.NoError(t, constraint.Apply(constraint.LengthEach("ustrd", []string{"a", "bb"}, 1, 140)))
	})

	t.Run("failing element is addressed by index", func(t *testing.T) {
		err := constraint.Apply(constraint.LengthEach("ustrd", []string{"ok", "", "ok"}, 1, 140))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "ustrd[1]", verr.Path)
	})

	t.Run("first failing element wins", func(t *testing.T) {
		err := constraint.Apply(constraint.LengthEach("ustrd", []string{"", strings.Repeat("x", 200)}, 1, 140))
		verr := constraint.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, "ustrd[0]", verr.Path)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
	})
}
