package decode

import (
	"errors"
	"fmt"
)

// Error reports a wire value that did not match the shape its field expects.
type Error struct {
	Field    string // dotted path of the offending field, empty at the leaf decoders
	Value    string
	Expected string
	Err      error

	// Absent is set when the field was required but not present at all.
	Absent bool
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("invalid value %q, expected %s", e.Value, e.Expected)
	if e.Absent {
		msg = "missing required value"
	}
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithField prefixes the field path of a decode error. Errors of other types
// are wrapped with the field name so the path is never lost.
func WithField(field string, err error) error {
	if err == nil {
		return nil
	}

	var de *Error
	if errors.As(err, &de) {
		annotated := *de
		if annotated.Field == "" {
			annotated.Field = field
		} else {
			annotated.Field = field + "." + annotated.Field
		}
		return &annotated
	}

	return fmt.Errorf("%s: %w", field, err)
}

// Missing reports a required field absent from the payload.
func Missing(field string) error {
	return &Error{Field: field, Absent: true}
}
