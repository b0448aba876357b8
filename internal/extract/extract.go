// Package extract turns uploaded documents into plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFileType is returned for anything that is not a PDF or plain-text file.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// FileType returns the lowercase extension of name without the dot.
func FileType(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// Supported reports whether Text can handle the given file name.
func Supported(name string) bool {
	switch FileType(name) {
	case "pdf", "txt":
		return true
	}
	return false
}

// Text extracts the text of a document, choosing the parser from the file name.
func Text(name string, data []byte) (string, error) {
	return ByType(FileType(name), data)
}

// ByType extracts text given a FileType value such as "pdf".
func ByType(fileType string, data []byte) (string, error) {
	switch fileType {
	case "pdf":
		return PDFText(data)
	case "txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, fileType)
	}
}

// PDFText joins the text runs of each page with single spaces and ends every page with a newline.
// A failure on any page aborts the whole extraction.
func PDFText(data []byte) (text string, err error) {
	// the parser panics on some malformed object trees
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("read pdf: %v", rec)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			sb.WriteString("\n")
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		var runs []string
		for _, row := range rows {
			for _, t := range row.Content {
				// font setup emits empty runs
				if t.S == "" {
					continue
				}
				runs = append(runs, t.S)
			}
		}
		sb.WriteString(strings.Join(runs, " "))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
