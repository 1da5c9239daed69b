package services

import (
	"errors"
	"fmt"

	"alfredoptarigan/ats-screener/internal/models"
)

// ErrNoText means a document produced no usable text.
var ErrNoText = errors.New("no text could be extracted from the document")

// DocumentParseError reports a corrupt or unreadable document.
type DocumentParseError struct {
	Kind  models.DocumentKind
	Cause error
}

func (e *DocumentParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse %s document: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("failed to parse %s document", e.Kind)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError is returned for anything that is not pdf, docx or text.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format == "" {
		return "unsupported document format"
	}
	return fmt.Sprintf("unsupported document format: %s", e.Format)
}
