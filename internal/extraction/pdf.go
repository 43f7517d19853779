package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the text of every page in page order. No separator
// is inserted between pages, so page boundaries are invisible to downstream
// regex matching.
func extractPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed xref tables; convert that
	// into a ParseError so one bad document cannot take down a batch.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ParseError{Format: string(FormatPDF), Cause: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: string(FormatPDF), Cause: err}
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ParseError{Format: string(FormatPDF), Cause: err}
		}
		builder.WriteString(pageText)
	}

	return builder.String(), nil
}
