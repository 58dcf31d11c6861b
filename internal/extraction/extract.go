package extraction

import (
	"path/filepath"
	"strings"
)

// Extract converts an uploaded document into plain text, dispatching on the
// file extension. Supported formats: .pdf, .docx, .txt.
// Unsupported extensions return *UnsupportedFormatError; corrupt documents
// return *ParseError.
func Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".txt":
		return string(data), nil
	default:
		return "", &UnsupportedFormatError{Extension: filepath.Ext(filename)}
	}
}
