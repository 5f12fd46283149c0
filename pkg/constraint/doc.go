// Package constraint implements the field-level validation engine used by
// every type in the message catalogue.
//
// Validation is expressed as small Rule values that defer a single check on a
// primitive field (character length, regular-expression pattern, numeric
// bounds) or on a nested component. Rules are evaluated with Apply, which
// runs them in declaration order and stops at the first violation, so a
// failing message surfaces exactly one ValidationError describing the first
// offending field found in a depth-first, left-to-right walk.
//
// # Error Taxonomy
//
// Every violation carries a stable numeric code that downstream consumers
// branch on:
//
//	1001  value is shorter than the minimum length
//	1002  value exceeds the maximum length
//	1003  value is less than the minimum numeric value
//	1004  value exceeds the maximum numeric value
//	1005  value does not match the required pattern
//
// The code and message of a nested failure are forwarded verbatim to the
// top-level caller; only the Path field grows as the error propagates, so a
// failure deep inside a payload reads like "rtr_rsn_inf.rsn.cd".
//
// # Usage
//
//	func (a *ActiveCurrencyAndAmount) Validate() error {
//		return constraint.Apply(
//			constraint.Pattern("ccy", a.Ccy, currencyCodePattern),
//			constraint.Min("value", a.Value, 0),
//		)
//	}
//
// The package holds no mutable state. Compiled patterns are package-level
// variables on the caller's side, initialized once, so concurrent validation
// of independent values needs no coordination.
package constraint
