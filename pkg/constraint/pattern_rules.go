package constraint

import (
	"fmt"
	"regexp"
)

// Pattern validates that a string fully satisfies the given pattern. Patterns
// are compiled once by the caller and shared; the rule itself allocates
// nothing on success.
func Pattern(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{check: func() *ValidationError {
		if !pattern.MatchString(value) {
			return NewError(CodePatternMismatch, field,
				fmt.Sprintf("%s does not match the required pattern", field))
		}
		return nil
	}}
}

// PatternOpt applies Pattern only when the value is present.
func PatternOpt(field string, value *string, pattern *regexp.Regexp) Rule {
	return Rule{check: func() *ValidationError {
		if value == nil {
			return nil
		}
		return Pattern(field, *value, pattern).check()
	}}
}
