package analysis

import "fmt"

// ErrorKind tags where a captured failure happened.
type ErrorKind string

const (
	KindModelInvocation ErrorKind = "model_invocation"
	KindParse           ErrorKind = "parse"
	KindUnexpected      ErrorKind = "unexpected"
)

// Error is a failure captured by Analyze. Its message becomes the envelope's error field.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ParseError reports model output that is not a single JSON object.
type ParseError struct {
	Len int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in model output (len=%d): %v", e.Len, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
