// Package fednow models the FedNow Service message set: the incoming and
// outgoing containers participants exchange with the service, the envelope
// pairing a business application header with an ISO 20022 document, and the
// FedNow-proprietary payloads (signature key management, participant file).
//
// # Containers
//
// Incoming and Outgoing are permissive unions: every slot is optional and a
// container with zero or several populated slots still validates. Validation
// checks each populated slot independently and reports the first violation
// with a dotted path from the container root.
//
// # Envelopes
//
// Every ISO 20022 payload travels inside an Envelope, a header/document
// pair. Header and document validate independently; no rule at this layer
// ties the header's message definition identifier to the document kind.
package fednow
