package fednow

import (
	"regexp"

	"github.com/openfin/fednowmsg/pkg/constraint"
)

// Signature key management payloads. These are FedNow-proprietary shapes and
// travel outside the ISO 20022 envelope.

var patternKeyID = regexp.MustCompile(`^[A-Za-z0-9\-_]{1,300}$`)

// FedNowMessageSignatureKey describes a public key a participant registers
// for message signature verification.
type FedNowMessageSignatureKey struct {
	KeyID               *string `json:"FedNowKeyID,omitempty" xml:"FedNowKeyID,omitempty"`
	Name                *string `json:"Name,omitempty" xml:"Name,omitempty"`
	EncodedPublicKey    string  `json:"EncodedPublicKey" xml:"EncodedPublicKey"`
	Encoding            *string `json:"Encoding,omitempty" xml:"Encoding,omitempty"`
	Algorithm           *string `json:"Algorithm,omitempty" xml:"Algorithm,omitempty"`
	KeyCreationDateTime *string `json:"KeyCreationDateTime,omitempty" xml:"KeyCreationDateTime,omitempty"`
}

func (k *FedNowMessageSignatureKey) Validate() error {
	return constraint.Apply(
		constraint.PatternOpt("key_id", k.KeyID, patternKeyID),
		constraint.MinLengthOpt("name", k.Name, 1),
		constraint.MaxLengthOpt("name", k.Name, 50),
		constraint.MinLength("encoded_public_key", k.EncodedPublicKey, 1),
		constraint.MaxLength("encoded_public_key", k.EncodedPublicKey, 20000),
		constraint.MinLengthOpt("encoding", k.Encoding, 1),
		constraint.MaxLengthOpt("encoding", k.Encoding, 35),
		constraint.MinLengthOpt("algorithm", k.Algorithm, 1),
		constraint.MaxLengthOpt("algorithm", k.Algorithm, 35),
	)
}

type KeyAddition struct {
	Key FedNowMessageSignatureKey `json:"FedNowMessageSignatureKey" xml:"FedNowMessageSignatureKey"`
}

func (k *KeyAddition) Validate() error {
	return constraint.Apply(
		constraint.Valid("key", &k.Key),
	)
}

// KeyRevocation retires a previously registered key. Every field is
// optional; the key identifier is pattern-checked only when present.
type KeyRevocation struct {
	KeyID            *string `json:"FedNowKeyID,omitempty" xml:"FedNowKeyID,omitempty"`
	RevocationReason *string `json:"KeyRevocationReason,omitempty" xml:"KeyRevocationReason,omitempty"`
}

func (k *KeyRevocation) Validate() error {
	return constraint.Apply(
		constraint.PatternOpt("key_id", k.KeyID, patternKeyID),
		constraint.MinLengthOpt("revocation_reason", k.RevocationReason, 1),
		constraint.MaxLengthOpt("revocation_reason", k.RevocationReason, 300),
	)
}

// FedNowMessageSignatureKeyExchange carries a key addition or a key
// revocation. Like the containers, it is a permissive union.
type FedNowMessageSignatureKeyExchange struct {
	KeyAddition   *KeyAddition   `json:"KeyAddition,omitempty" xml:"KeyAddition,omitempty"`
	KeyRevocation *KeyRevocation `json:"KeyRevocation,omitempty" xml:"KeyRevocation,omitempty"`
}

func (k *FedNowMessageSignatureKeyExchange) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("key_addition", k.KeyAddition),
		constraint.ValidIf("key_revocation", k.KeyRevocation),
	)
}

// GetAllFedNowActivePublicKeys asks for the service's active public keys.
type GetAllFedNowActivePublicKeys struct{}

func (g *GetAllFedNowActivePublicKeys) Validate() error { return nil }

// GetAllCustomerPublicKeys asks for the participant's registered keys.
type GetAllCustomerPublicKeys struct{}

func (g *GetAllCustomerPublicKeys) Validate() error { return nil }

type FedNowMessageSignatureKeyStatus struct {
	KeyStatus      string  `json:"KeyStatus" xml:"KeyStatus"`
	StatusDateTime *string `json:"StatusDateTime,omitempty" xml:"StatusDateTime,omitempty"`
}

func (s *FedNowMessageSignatureKeyStatus) Validate() error {
	return constraint.Apply(
		constraint.MinLength("key_status", s.KeyStatus, 1),
		constraint.MaxLength("key_status", s.KeyStatus, 35),
	)
}

type FedNowPublicKeyResponse struct {
	Status FedNowMessageSignatureKeyStatus `json:"FedNowMessageSignatureKeyStatus" xml:"FedNowMessageSignatureKeyStatus"`
	Key    FedNowMessageSignatureKey       `json:"FedNowMessageSignatureKey" xml:"FedNowMessageSignatureKey"`
}

func (r *FedNowPublicKeyResponse) Validate() error {
	return constraint.Apply(
		constraint.Valid("status", &r.Status),
		constraint.Valid("key", &r.Key),
	)
}

type FedNowPublicKeyResponses struct {
	PublicKeys []FedNowPublicKeyResponse `json:"PublicKeys" xml:"PublicKeys"`
}

func (r *FedNowPublicKeyResponses) Validate() error {
	return constraint.Apply(
		constraint.Each("public_keys", r.PublicKeys),
	)
}

type FedNowCustomerMessageSignatureKeyOperationResponse struct {
	KeyID            string  `json:"FedNowKeyID" xml:"FedNowKeyID"`
	Status           string  `json:"Status" xml:"Status"`
	ErrorCode        *string `json:"ErrorCode,omitempty" xml:"ErrorCode,omitempty"`
	ErrorDescription *string `json:"ErrorDescription,omitempty" xml:"ErrorDescription,omitempty"`
}

func (r *FedNowCustomerMessageSignatureKeyOperationResponse) Validate() error {
	return constraint.Apply(
		constraint.Pattern("key_id", r.KeyID, patternKeyID),
		constraint.MinLength("status", r.Status, 1),
		constraint.MaxLength("status", r.Status, 35),
		constraint.MinLengthOpt("error_code", r.ErrorCode, 1),
		constraint.MaxLengthOpt("error_code", r.ErrorCode, 35),
		constraint.MinLengthOpt("error_description", r.ErrorDescription, 1),
		constraint.MaxLengthOpt("error_description", r.ErrorDescription, 300),
	)
}

// IncomingSignatureManagement is the participant-to-service signature
// management request.
type IncomingSignatureManagement struct {
	SenderID                     *string                            `json:"SenderId,omitempty" xml:"SenderId,omitempty"`
	GetAllFedNowActivePublicKeys *GetAllFedNowActivePublicKeys      `json:"GetAllFedNowActivePublicKeys,omitempty" xml:"GetAllFedNowActivePublicKeys,omitempty"`
	GetAllCustomerPublicKeys     *GetAllCustomerPublicKeys          `json:"GetAllCustomerPublicKeys,omitempty" xml:"GetAllCustomerPublicKeys,omitempty"`
	KeyExchange                  *FedNowMessageSignatureKeyExchange `json:"FedNowMessageSignatureKeyExchange,omitempty" xml:"FedNowMessageSignatureKeyExchange,omitempty"`
}

// Validate checks the nested operations. SenderID is routing metadata and
// carries no constraint of its own.
func (s *IncomingSignatureManagement) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("get_all_fed_now_active_public_keys", s.GetAllFedNowActivePublicKeys),
		constraint.ValidIf("get_all_customer_public_keys", s.GetAllCustomerPublicKeys),
		constraint.ValidIf("key_exchange", s.KeyExchange),
	)
}

// OutgoingSignatureManagement is the service-to-participant signature
// management response.
type OutgoingSignatureManagement struct {
	PublicKeyResponses   *FedNowPublicKeyResponses                           `json:"FedNowPublicKeyResponses,omitempty" xml:"FedNowPublicKeyResponses,omitempty"`
	KeyOperationResponse *FedNowCustomerMessageSignatureKeyOperationResponse `json:"FedNowCustomerMessageSignatureKeyOperationResponse,omitempty" xml:"FedNowCustomerMessageSignatureKeyOperationResponse,omitempty"`
}

func (s *OutgoingSignatureManagement) Validate() error {
	return constraint.Apply(
		constraint.ValidIf("public_key_responses", s.PublicKeyResponses),
		constraint.ValidIf("key_operation_response", s.KeyOperationResponse),
	)
}
