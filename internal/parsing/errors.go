package parsing

import "fmt"

// ParseError represents a completion that is not usable as JSON of the expected shape.
// It stays inside the normalizer: callers see it only from the Strict* functions.
type ParseError struct {
	Shape   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error (%s): %s: %v", e.Shape, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error (%s): %s", e.Shape, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NormalizationError is returned when neither strict parsing nor heuristic
// extraction produced a usable result.
type NormalizationError struct {
	Shape   string
	Message string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Shape, e.Message)
}
