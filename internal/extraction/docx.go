package extraction

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	paragraphCloseTag = regexp.MustCompile(`</w:p>`)
	xmlTag            = regexp.MustCompile(`<[^>]+>`)
)

// extractDocx pulls plain text from a Word document. The docx library exposes
// the raw document XML; paragraph boundaries become newlines so bullet lines
// survive extraction, then remaining markup is stripped.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	return stripDocxMarkup(content), nil
}

// stripDocxMarkup converts document XML into plain text, one paragraph per line.
func stripDocxMarkup(content string) string {
	content = paragraphCloseTag.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	return strings.TrimSpace(content)
}
