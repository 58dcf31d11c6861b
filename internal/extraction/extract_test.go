package extraction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_UnsupportedExtension(t *testing.T) {
	_, err := Extract("resume.odt", []byte("whatever"))
	require.Error(t, err)

	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".odt", unsupported.Extension)
}

func TestExtract_NoExtension(t *testing.T) {
	_, err := Extract("resume", nil)

	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
}

func TestExtract_PlainText(t *testing.T) {
	text, err := Extract("resume.txt", []byte("I used Python and SQL"))
	require.NoError(t, err)
	assert.Equal(t, "I used Python and SQL", text)
}

func TestExtract_ExtensionCaseInsensitive(t *testing.T) {
	text, err := Extract("RESUME.TXT", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract("resume.pdf", []byte("this is not a pdf"))
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "pdf", parseErr.Format)
}

func TestExtract_CorruptDocx(t *testing.T) {
	_, err := Extract("resume.docx", []byte("this is not a zip archive"))
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "docx", parseErr.Format)
}

func TestStripDocxMarkup(t *testing.T) {
	xml := `<w:p><w:r><w:t>Data Analyst</w:t></w:r></w:p><w:p><w:r><w:t>- Built dashboards</w:t></w:r></w:p>`
	got := stripDocxMarkup(xml)
	assert.Equal(t, "Data Analyst\n- Built dashboards", got)
}

func TestStripDocxMarkup_Entities(t *testing.T) {
	got := stripDocxMarkup(`<w:p><w:t>R &amp; D</w:t></w:p>`)
	assert.Equal(t, "R & D", got)
}
