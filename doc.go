// Package fednowmsg models the FedNow Service message catalogue: typed Go
// structs for the exchanged ISO 20022 payloads and FedNow-proprietary shapes,
// with constraint validation over every field.
//
// The module is a pure library plus a small validation CLI. It performs no
// I/O of its own beyond JSON and XML struct tags; callers decode into the
// types here and ask them to validate.
//
// Layout:
//
//   - pkg/constraint — the rule engine: error taxonomy, fail-fast Apply,
//     length, numeric, pattern, and nested-struct rules
//   - pkg/iso20022 — ISO 20022 building blocks and document types
//     (admi, pacs, camt families)
//   - pkg/fednow — FedNow envelopes, incoming/outgoing containers,
//     signature key management, participant file
//   - cmd/fednow-validate — walks a directory of JSON samples and reports
//     validation results
//
// Basic usage:
//
//	var msg fednowmsg.Message
//	if err := json.Unmarshal(data, &msg); err != nil {
//		return err
//	}
//	if err := msg.Validate(); err != nil {
//		var verr *constraint.ValidationError
//		if errors.As(err, &verr) {
//			log.Printf("invalid at %s: %s (code %d)", verr.Path, verr.Message, verr.Code)
//		}
//		return err
//	}
//
// Validation is pure and idempotent: validating the same value twice yields
// the same result, and no rule mutates the value it inspects.
package fednowmsg
