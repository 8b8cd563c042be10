package colorspace

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is wrapped by a ParseError when the input does not match the
	// grammar of the requested format.
	ErrNoMatch = errors.New("input does not match format grammar")

	// ErrUnknownFormat is returned for a format name other than hex, rgb,
	// cmyk, hsv or hsl.
	ErrUnknownFormat = errors.New("unknown color format")
)

// ParseError reports text that could not be turned into a color component.
//
// Validators gate user input before construction, so a ParseError normally
// means a caller skipped validation. UI glue should treat it as "ignore the
// edit and keep the prior color".
type ParseError struct {
	Format Format // format the input was parsed as
	Input  string // offending text
	Err    error  // ErrNoMatch or the underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Format, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
