package script

import (
	"errors"
	"fmt"
)

// ErrUnknownOp indicates a step naming an operation the runner does not know.
var ErrUnknownOp = errors.New("script: unknown operation")

// StepError wraps the failure of a single step with its position.
type StepError struct {
	Step    int
	Op      string
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Op, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
