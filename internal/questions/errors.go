package questions

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

// DocumentOpenError reports a document that could not be opened or parsed:
// missing file, permission denied, malformed or encrypted PDF.
type DocumentOpenError struct {
	Path string
	Err  error
}

func (e *DocumentOpenError) Error() string {
	return fmt.Sprintf("open document %s: %v", e.Path, e.Err)
}

func (e *DocumentOpenError) Unwrap() error { return e.Err }

// PageExtractionError reports a page whose text could not be extracted.
// Page is 1-based, or zero when the failure covers the whole document.
type PageExtractionError struct {
	Page int
	Err  error
}

func (e *PageExtractionError) Error() string {
	if e.Page == 0 {
		return fmt.Sprintf("extract questions: %v", e.Err)
	}
	return fmt.Sprintf("extract page %d: %v", e.Page, e.Err)
}

func (e *PageExtractionError) Unwrap() error { return e.Err }

// WriteError reports a report file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
