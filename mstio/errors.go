package mstio

import "errors"

var (
	// ErrUnknownFormat indicates a Format other than FormatJSON or FormatYAML.
	ErrUnknownFormat = errors.New("mstio: unknown document format")

	// ErrInvalidDocument indicates a document that failed struct validation.
	ErrInvalidDocument = errors.New("mstio: invalid document")
)
