package iso20022_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfin/fednowmsg/pkg/iso20022"
)

func TestPatterns(t *testing.T) {
	t.Run("country code", func(t *testing.T) {
		assert.True(t, iso20022.PatternCountryCode.MatchString("US"))
		assert.False(t, iso20022.PatternCountryCode.MatchString("us"))
		assert.False(t, iso20022.PatternCountryCode.MatchString("USA"))
	})

	t.Run("currency code", func(t *testing.T) {
		assert.True(t, iso20022.PatternCurrencyCode.MatchString("USD"))
		assert.False(t, iso20022.PatternCurrencyCode.MatchString("USDX"))
	})

	t.Run("bic", func(t *testing.T) {
		assert.True(t, iso20022.PatternAnyBIC.MatchString("CHASUS33"))
		assert.True(t, iso20022.PatternAnyBIC.MatchString("CHASUS33XXX"))
		assert.False(t, iso20022.PatternAnyBIC.MatchString("CHASUS3"))
	})

	t.Run("lei", func(t *testing.T) {
		assert.True(t, iso20022.PatternLEI.MatchString("5493001KJTIIGC8Y1R17"))
		assert.False(t, iso20022.PatternLEI.MatchString("5493001KJTIIGC8Y1R1"))
	})

	t.Run("routing number", func(t *testing.T) {
		assert.True(t, iso20022.PatternRoutingNumberFRS.MatchString("021000021"))
		assert.False(t, iso20022.PatternRoutingNumberFRS.MatchString("02100002"))
		assert.False(t, iso20022.PatternRoutingNumberFRS.MatchString("0210000211"))
	})

	t.Run("max 15 numeric", func(t *testing.T) {
		assert.True(t, iso20022.PatternMax15Numeric.MatchString("1"))
		assert.False(t, iso20022.PatternMax15Numeric.MatchString(""))
		assert.False(t, iso20022.PatternMax15Numeric.MatchString("12a"))
	})

	t.Run("uetr", func(t *testing.T) {
		assert.True(t, iso20022.PatternUETR.MatchString("8a562c67-ca16-48ba-b074-65581be6f011"))
		// Uppercase digits are rejected.
		assert.False(t, iso20022.PatternUETR.MatchString("8A562C67-CA16-48BA-B074-65581BE6F011"))
		// Wrong version nibble.
		assert.False(t, iso20022.PatternUETR.MatchString("8a562c67-ca16-18ba-b074-65581be6f011"))
	})
}

func TestNewUETR(t *testing.T) {
	t.Run("produces values matching the uetr pattern", func(t *testing.T) {
		for range 10 {
			assert.True(t, iso20022.PatternUETR.MatchString(iso20022.NewUETR()))
		}
	})

	t.Run("produces distinct values", func(t *testing.T) {
		assert.NotEqual(t, iso20022.NewUETR(), iso20022.NewUETR())
	})
}
