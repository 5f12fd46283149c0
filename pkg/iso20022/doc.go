// Package iso20022 contains the ISO 20022 data-transfer types used by the
// FedNow message set: shared building blocks (parties, agents, accounts,
// amounts, the business application header) and the per-message document
// types (admi, pacs, camt).
//
// Every type is a plain struct carrying json and xml tags with the ISO
// element names. Optional elements are pointers, repeated elements are
// slices. Each type exposes a single operation, Validate, which checks the
// type's own field constraints in declaration order and then recurses into
// nested components, returning the first violation found (see
// pkg/constraint for the engine and error taxonomy).
//
// Values are expected to be produced by an external decoding layer or
// constructed directly; validation never mutates its input and the same
// value always validates to the same result.
package iso20022
