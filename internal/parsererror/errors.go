// Package parsererror defines the typed errors shared by the message parsers
// and the ingestion pipeline.
package parsererror

import "fmt"

// NotFoundError indicates that an input path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input path does not exist: %s", e.Path)
}

// MalformedDocumentError indicates that the text could not be parsed as XML,
// even after namespace normalization.
type MalformedDocumentError struct {
	Source string
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed XML document %s: %v", e.Source, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// NoStatementsError indicates a structurally valid document that contains no
// recognizable statement or report blocks. It is used to reject input of the
// wrong message type, as opposed to corrupt input.
type NoStatementsError struct {
	Source string
}

func (e *NoStatementsError) Error() string {
	return fmt.Sprintf("no statement blocks found in %s", e.Source)
}

// MalformedTradeError indicates that a required numeric field of a trade
// confirmation is absent or not numeric.
type MalformedTradeError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedTradeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed trade: required field %s is missing", e.Field)
	}
	return fmt.Sprintf("malformed trade field %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *MalformedTradeError) Unwrap() error {
	return e.Err
}
