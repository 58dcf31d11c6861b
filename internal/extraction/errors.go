// Package extraction converts uploaded resume documents into plain text.
package extraction

import "fmt"

// UnsupportedFormatError indicates the uploaded file extension is not one the
// extractor can handle. This replaces the old behavior of silently yielding
// empty text, which made "could not read file" indistinguishable from
// "no skills found".
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return "unsupported file format: file has no extension"
	}
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

// ParseError indicates a supported document could not be parsed
// (corrupt or malformed file). Recoverable; shown to the user.
type ParseError struct {
	Format string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s document: %v", e.Format, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
