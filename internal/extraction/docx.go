package extraction

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDOCX extracts paragraph text in document order, one paragraph per
// line, then appends every table after the paragraphs: cells joined by a
// single space, one row per line.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: string(FormatDOCX), Cause: err}
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	paragraphs, tables, err := walkDocumentXML(content)
	if err != nil {
		return "", &ParseError{Format: string(FormatDOCX), Cause: err}
	}

	var builder strings.Builder
	for _, p := range paragraphs {
		builder.WriteString(p)
		builder.WriteString("\n")
	}
	for _, table := range tables {
		for _, row := range table {
			builder.WriteString(strings.Join(row, " "))
			builder.WriteString("\n")
		}
	}

	return builder.String(), nil
}

// walkDocumentXML walks word/document.xml, returning top-level paragraph
// texts and table contents (rows of cell texts). Paragraphs nested inside
// table cells belong to their cell, not to the paragraph list.
func walkDocumentXML(content string) (paragraphs []string, tables [][][]string, err error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		tableDepth int
		inText     bool
		paragraph  strings.Builder
		inPara     bool
		cell       strings.Builder
		inCell     bool
		row        []string
		table      [][]string
	)

	for {
		token, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return nil, nil, tokenErr
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					table = nil
				}
			case "tr":
				if tableDepth == 1 {
					row = nil
				}
			case "tc":
				if tableDepth == 1 {
					inCell = true
					cell.Reset()
				}
			case "p":
				if tableDepth == 0 {
					inPara = true
					paragraph.Reset()
				}
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth == 1 {
					tables = append(tables, table)
				}
				tableDepth--
			case "tr":
				if tableDepth == 1 {
					table = append(table, row)
				}
			case "tc":
				if tableDepth == 1 {
					row = append(row, cell.String())
					inCell = false
				}
			case "p":
				if tableDepth == 0 && inPara {
					paragraphs = append(paragraphs, paragraph.String())
					inPara = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if inCell {
				cell.Write(t)
			} else if inPara {
				paragraph.Write(t)
			}
		}
	}

	return paragraphs, tables, nil
}
