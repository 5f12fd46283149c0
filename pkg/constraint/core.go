package constraint

// Numeric covers the primitive number types that carry range constraints.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Validatable is implemented by every composite type, enum code, and message
// container in the catalogue. Validate returns nil or the first
// *ValidationError found in a depth-first walk of the value.
type Validatable interface {
	Validate() error
}

// Rule is a single deferred constraint check.
type Rule struct {
	check func() *ValidationError
}

// Apply executes rules in order and returns the first violation, or nil when
// every rule passes. Later rules are not evaluated after a failure.
func Apply(rules ...Rule) error {
	for _, rule := range rules {
		if verr := rule.check(); verr != nil {
			return verr
		}
	}
	return nil
}
