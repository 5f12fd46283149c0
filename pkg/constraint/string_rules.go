package constraint

import (
	"fmt"
	"unicode/utf8"
)

// MinLength validates that a string is at least min characters long. Length
// is counted in Unicode code points, not bytes.
func MinLength(field, value string, min int) Rule {
	return Rule{check: func() *ValidationError {
		if utf8.RuneCountInString(value) < min {
			return NewError(CodeTooShort, field,
				fmt.Sprintf("%s is shorter than the minimum length of %d", field, min))
		}
		return nil
	}}
}

// MaxLength validates that a string is at most max characters long.
func MaxLength(field, value string, max int) Rule {
	return Rule{check: func() *ValidationError {
		if utf8.RuneCountInString(value) > max {
			return NewError(CodeTooLong, field,
				fmt.Sprintf("%s exceeds the maximum length of %d", field, max))
		}
		return nil
	}}
}

// MinLengthOpt applies MinLength only when the value is present.
func MinLengthOpt(field string, value *string, min int) Rule {
	return Rule{check: func() *ValidationError {
		if value == nil {
			return nil
		}
		return MinLength(field, *value, min).check()
	}}
}

// MaxLengthOpt applies MaxLength only when the value is present.
func MaxLengthOpt(field string, value *string, max int) Rule {
	return Rule{check: func() *ValidationError {
		if value == nil {
			return nil
		}
		return MaxLength(field, *value, max).check()
	}}
}

// LengthEach validates the length bounds of every element of a repeated text
// field, addressing failures by index ("adr_line[2]").
func LengthEach(field string, values []string, min, max int) Rule {
	return Rule{check: func() *ValidationError {
		for i, value := range values {
			elem := fmt.Sprintf("%s[%d]", field, i)
			n := utf8.RuneCountInString(value)
			if n < min {
				return NewError(CodeTooShort, elem,
					fmt.Sprintf("%s is shorter than the minimum length of %d", field, min))
			}
			if n > max {
				return NewError(CodeTooLong, elem,
					fmt.Sprintf("%s exceeds the maximum length of %d", field, max))
			}
		}
		return nil
	}}
}
