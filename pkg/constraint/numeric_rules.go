package constraint

import "fmt"

// Min validates that a numeric value is at least min.
func Min[T Numeric](field string, value T, min T) Rule {
	return Rule{check: func() *ValidationError {
		if value < min {
			return NewError(CodeBelowMinimum, field,
				fmt.Sprintf("%s is less than the minimum value of %.6f", field, float64(min)))
		}
		return nil
	}}
}

// Max validates that a numeric value is at most max.
func Max[T Numeric](field string, value T, max T) Rule {
	return Rule{check: func() *ValidationError {
		if value > max {
			return NewError(CodeAboveMaximum, field,
				fmt.Sprintf("%s exceeds the maximum value of %.6f", field, float64(max)))
		}
		return nil
	}}
}

// MinOpt applies Min only when the value is present.
func MinOpt[T Numeric](field string, value *T, min T) Rule {
	return Rule{check: func() *ValidationError {
		if value == nil {
			return nil
		}
		return Min(field, *value, min).check()
	}}
}

// MaxOpt applies Max only when the value is present.
func MaxOpt[T Numeric](field string, value *T, max T) Rule {
	return Rule{check: func() *ValidationError {
		if value == nil {
			return nil
		}
		return Max(field, *value, max).check()
	}}
}
