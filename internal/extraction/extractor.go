// Package extraction converts raw resume documents (PDF or DOCX bytes) into
// plain text for downstream field extraction and similarity scoring.
package extraction

import (
	"path/filepath"
	"strings"
)

// Format is the declared format tag of a raw document.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Document is a raw uploaded document: opaque bytes plus a declared format.
// It is consumed once by Extract and not retained.
type Document struct {
	Data   []byte
	Format Format
}

// DetectFormat maps a filename extension to a document format tag.
// The second return value is false for unsupported extensions.
func DetectFormat(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDOCX, true
	default:
		return "", false
	}
}

// Extract converts a document into plain text. It returns
// *UnsupportedFormatError for unknown format tags and *ParseError for
// malformed documents. Empty input is not an error: it yields an empty
// string, and callers treat "no text extracted" as a downstream warning.
func Extract(doc Document) (string, error) {
	if len(doc.Data) == 0 {
		return "", nil
	}

	var (
		text string
		err  error
	)
	switch doc.Format {
	case FormatPDF:
		text, err = extractPDF(doc.Data)
	case FormatDOCX:
		text, err = extractDOCX(doc.Data)
	default:
		return "", &UnsupportedFormatError{Format: string(doc.Format)}
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}
