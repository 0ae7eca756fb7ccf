package analysis

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

var errNotObject = errors.New("expected a JSON object")

// ParseResponse decodes the model's raw text as one JSON object. Surrounding
// whitespace is ignored; prose, code fences and anything that is not an object
// fail with *ParseError. The shape of the object is not checked.
func ParseResponse(text string) (Result, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Result{}, &ParseError{Err: io.ErrUnexpectedEOF}
	}
	if !json.Valid([]byte(s)) {
		var probe any
		err := json.Unmarshal([]byte(s), &probe)
		return Result{}, &ParseError{Len: len(s), Err: err}
	}
	if s[0] != '{' {
		return Result{}, &ParseError{Len: len(s), Err: errNotObject}
	}

	r := NewResult()
	if err := r.UnmarshalJSON([]byte(s)); err != nil {
		return Result{}, &ParseError{Len: len(s), Err: err}
	}
	return r, nil
}
