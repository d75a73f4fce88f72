package avrotool

import "fmt"

// AppendError reports an input line whose record the container rejected.
// The write pass logs it and moves on to the next line.
type AppendError struct {
	Line int
	Err  error
}

func (e *AppendError) Error() string {
	return fmt.Sprintf("line %d: failed to append record: %v", e.Line, e.Err)
}

func (e *AppendError) Unwrap() error {
	return e.Err
}
