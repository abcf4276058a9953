package main

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

var ErrNoRecords = errors.New("notification contains no records")
var ErrNoLocation = errors.New("notification record has no bucket or key")

// MalformedEventError is returned when the inbound notification cannot be decoded
type MalformedEventError struct {
	Err error
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event: %v", e.Err)
}

func (e *MalformedEventError) Unwrap() error {
	return e.Err
}

// ExtractionError is returned when the OCR service cannot process a document
type ExtractionError struct {
	Location ObjectLocation
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed for %s: %s", e.Location, serviceMessage(e.Err))
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// PersistenceError is returned when the spreadsheet cannot be written locally
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("spreadsheet write to %s failed: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// PublishError is returned when the spreadsheet cannot be uploaded
type PublishError struct {
	Location ObjectLocation
	Err      error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("upload to %s failed: %s", e.Location, serviceMessage(e.Err))
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// the AWS errors carry a code and a message, surface both
func serviceMessage(err error) string {

	var aerr awserr.Error
	if errors.As(err, &aerr) {
		return fmt.Sprintf("%s: %s", aerr.Code(), aerr.Message())
	}
	return err.Error()
}

//
// end of file
//
