package inventory

import "fmt"

// DataFormatError reports a structural mismatch in the source table, such as
// a missing header or column. The whole load fails; there is no partial
// result.
type DataFormatError struct {
	Reason string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("inventory data format: %s", e.Reason)
}

// ParseError reports a cell that failed to convert to its expected type. Row
// numbers are 1-based and count the header row.
type ParseError struct {
	Row    int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("inventory parse: row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
