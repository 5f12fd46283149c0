package constraint

import "fmt"

// Valid validates a required nested component, prefixing the component's
// error path with the field name.
func Valid(field string, v Validatable) Rule {
	return Rule{check: func() *ValidationError {
		return prefixed(field, v.Validate())
	}}
}

// ValidIf validates an optional nested component. Absence is never an error.
func ValidIf[T any, PT interface {
	Validatable
	*T
}](field string, v PT) Rule {
	return Rule{check: func() *ValidationError {
		if v == nil {
			return nil
		}
		return prefixed(field, v.Validate())
	}}
}

// Each validates every element of a repeated nested field in order,
// addressing failures by index ("rspn[2]").
func Each[T any, PT interface {
	Validatable
	*T
}](field string, items []T) Rule {
	return Rule{check: func() *ValidationError {
		for i := range items {
			if err := PT(&items[i]).Validate(); err != nil {
				return prefixed(fmt.Sprintf("%s[%d]", field, i), err)
			}
		}
		return nil
	}}
}

// prefixed threads the enclosing field name onto a child violation. Code and
// message pass through untouched so the taxonomy survives any nesting depth.
func prefixed(field string, err error) *ValidationError {
	if err == nil {
		return nil
	}

	verr := ExtractValidationError(err)
	if verr == nil {
		return &ValidationError{Path: field, Message: err.Error()}
	}

	path := field
	if verr.Path != "" {
		path = field + "." + verr.Path
	}
	return &ValidationError{Code: verr.Code, Path: path, Message: verr.Message}
}
