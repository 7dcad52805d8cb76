package coach

import "fmt"

// Stages reported by StageError.
const (
	StageCompletion    = "completion"
	StageNormalization = "normalization"
)

// ValidationError represents a request that is missing a required field or carries an invalid value.
// No prompt is built for such a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// StageError reports which stage of a task failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
