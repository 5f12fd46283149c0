package fednow_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/fednow"
)

func TestIncomingSignatureManagement(t *testing.T) {
	t.Run("key addition with a valid key passes", func(t *testing.T) {
		sender := "bank-021000021"
		sm := fednow.IncomingSignatureManagement{
			SenderID: &sender,
			KeyExchange: &fednow.FedNowMessageSignatureKeyExchange{
				KeyAddition: &fednow.KeyAddition{
					Key: fednow.FedNowMessageSignatureKey{
						EncodedPublicKey: "MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8A",
					},
				},
			},
		}
		assert.NoError(t, sm.Validate())
	})

	t.Run("sender id carries no constraint", func(t *testing.T) {
		sender := "ABC.123 routing"
		sm := fednow.IncomingSignatureManagement{SenderID: &sender}
		assert.NoError(t, sm.Validate())
	})

	t.Run("empty encoded public key fails through the exchange", func(t *testing.T) {
		sm := fednow.IncomingSignatureManagement{
			KeyExchange: &fednow.FedNowMessageSignatureKeyExchange{
				KeyAddition: &fednow.KeyAddition{},
			},
		}
		verr := constraint.ExtractValidationError(sm.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodeTooShort, verr.Code)
		assert.Equal(t, "key_exchange.key_addition.key.encoded_public_key", verr.Path)
	})

	t.Run("revocation without a key id passes", func(t *testing.T) {
		reason := "compromised"
		sm := fednow.IncomingSignatureManagement{
			KeyExchange: &fednow.FedNowMessageSignatureKeyExchange{
				KeyRevocation: &fednow.KeyRevocation{RevocationReason: &reason},
			},
		}
		assert.NoError(t, sm.Validate())
	})

	t.Run("revocation key id is pattern-checked when present", func(t *testing.T) {
		keyID := strings.Repeat("k", 301)
		sm := fednow.IncomingSignatureManagement{
			KeyExchange: &fednow.FedNowMessageSignatureKeyExchange{
				KeyRevocation: &fednow.KeyRevocation{KeyID: &keyID},
			},
		}
		verr := constraint.ExtractValidationError(sm.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, constraint.CodePatternMismatch, verr.Code)
		assert.Equal(t, "key_exchange.key_revocation.key_id", verr.Path)
	})

	t.Run("bare key listing requests pass", func(t *testing.T) {
		sm := fednow.IncomingSignatureManagement{
			GetAllFedNowActivePublicKeys: &fednow.GetAllFedNowActivePublicKeys{},
			GetAllCustomerPublicKeys:     &fednow.GetAllCustomerPublicKeys{},
		}
		assert.NoError(t, sm.Validate())
	})
}

func TestOutgoingSignatureManagement(t *testing.T) {
	t.Run("key operation response with valid key id passes", func(t *testing.T) {
		sm := fednow.OutgoingSignatureManagement{
			KeyOperationResponse: &fednow.FedNowCustomerMessageSignatureKeyOperationResponse{
				KeyID:  "key-2026-08-29",
				Status: "ACTV",
			},
		}
		assert.NoError(t, sm.Validate())
	})

	t.Run("failing public key in a response list is addressed by index", func(t *testing.T) {
		sm := fednow.OutgoingSignatureManagement{
			PublicKeyResponses: &fednow.FedNowPublicKeyResponses{
				PublicKeys: []fednow.FedNowPublicKeyResponse{
					{
						Status: fednow.FedNowMessageSignatureKeyStatus{KeyStatus: "ACTV"},
						Key:    fednow.FedNowMessageSignatureKey{EncodedPublicKey: "MIIBIjAN"},
					},
					{
						Status: fednow.FedNowMessageSignatureKeyStatus{KeyStatus: ""},
						Key:    fednow.FedNowMessageSignatureKey{EncodedPublicKey: "MIIBIjAN"},
					},
				},
			},
		}
		verr := constraint.ExtractValidationError(sm.Validate())
		require.NotNil(t, verr)
		assert.Equal(t, "public_key_responses.public_keys[1].status.key_status", verr.Path)
	})
}
