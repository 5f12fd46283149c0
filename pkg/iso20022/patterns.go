package iso20022

import "regexp"

// Shared constraint patterns from the underlying standard. Compiled once at
// package init and anchored so a value must fully satisfy the pattern.
var (
	// PatternCountryCode matches an ISO 3166 alpha-2 country code.
	PatternCountryCode = regexp.MustCompile(`^[A-Z]{2,2}$`)

	// PatternCurrencyCode matches an ISO 4217 alpha-3 currency code.
	PatternCurrencyCode = regexp.MustCompile(`^[A-Z]{3,3}$`)

	// PatternAnyBIC matches a BIC/SWIFT code per ISO 9362 (Dec 2014).
	PatternAnyBIC = regexp.MustCompile(`^[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}$`)

	// PatternLEI matches an ISO 17442 legal entity identifier.
	PatternLEI = regexp.MustCompile(`^[A-Z0-9]{18,18}[0-9]{2,2}$`)

	// PatternIBAN matches an ISO 13616 IBAN (2007 edition).
	PatternIBAN = regexp.MustCompile(`^[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}$`)

	// PatternUETR matches a unique end-to-end transaction reference, which
	// has the shape of a lowercase UUID version 4.
	PatternUETR = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)

	// PatternRoutingNumberFRS matches a nine-digit Federal Reserve routing
	// number.
	PatternRoutingNumberFRS = regexp.MustCompile(`^[0-9]{9,9}$`)

	// PatternPhoneNumber matches an international phone number.
	PatternPhoneNumber = regexp.MustCompile(`^\+[0-9]{1,3}-[0-9()+\-]{1,30}$`)

	// PatternExact4AlphaNumeric matches exactly four alphanumeric characters.
	PatternExact4AlphaNumeric = regexp.MustCompile(`^[a-zA-Z0-9]{4}$`)

	// PatternMax4AlphaNumeric matches one to four alphanumeric characters.
	PatternMax4AlphaNumeric = regexp.MustCompile(`^[a-zA-Z0-9]{1,4}$`)

	// PatternMax15Numeric matches a digit string of at most 15 digits.
	PatternMax15Numeric = regexp.MustCompile(`^[0-9]{1,15}$`)

	// PatternMax5Numeric matches a digit string of at most 5 digits, used
	// for page numbers in paginated reports.
	PatternMax5Numeric = regexp.MustCompile(`^[0-9]{1,5}$`)
)
