package sxml

import (
	"errors"
	"fmt"
)

// Sentinel errors for the parse failure classes. Every error returned by
// Parse wraps exactly one of these, so callers can classify failures with
// errors.Is without depending on message text.
var (
	// ErrUnexpectedEOF is returned when the input ends while more content
	// was required: mid-tag, mid-attribute, inside a comment or CDATA
	// section, or with elements still open.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrUnexpectedChar is returned when a required character was something
	// else. The message names the offending character, its offset, and the
	// characters that would have been accepted.
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrMismatchedTag is returned when a closing tag does not match the
	// innermost open element.
	ErrMismatchedTag = errors.New("mismatched closing tag")

	// ErrNoRootElement is returned for empty or whitespace-only input, and
	// for character data appearing before any element is open.
	ErrNoRootElement = errors.New("no root element")

	// ErrTrailingContent is returned when non-whitespace content follows
	// the closed root element.
	ErrTrailingContent = errors.New("trailing content after root element")
)

// ParseError is the error type returned by Parse. It carries the input
// location of the failure and wraps one of the sentinel errors above.
type ParseError struct {
	Err     error
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sxml: %s at %s (offset %d)", e.Message, e.Pos, e.Pos.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(err error, pos Position, format string, args ...any) *ParseError {
	return &ParseError{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}
