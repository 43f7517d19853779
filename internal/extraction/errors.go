package extraction

import "fmt"

// UnsupportedFormatError indicates a document whose format tag is neither
// pdf nor docx. It is fatal for that document only; batch processing
// continues past it.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q (supported: pdf, docx)", e.Format)
}

// ParseError indicates a document that could not be read or decoded. It
// wraps the underlying parser failure.
type ParseError struct {
	Format string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse %s document: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("failed to parse %s document", e.Format)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
