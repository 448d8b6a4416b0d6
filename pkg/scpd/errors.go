package scpd

import "fmt"

// NetworkError reports a transport-level failure while fetching an SCPD
// document: connection failure, non-success status, or a truncated body.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching SCPD from %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError reports a document that does not conform to the SCPD schema:
// malformed XML, a missing required field, or an unrecognized enum literal.
// No partial ServiceDescription is produced alongside a ParseError.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing SCPD: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing SCPD: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedTypeError reports a state variable whose declared data type
// has no Go mapping.
type UnsupportedTypeError struct {
	Variable string
	DataType DataType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("no Go type mapping for data type %q (state variable %q)", e.DataType, e.Variable)
}
