package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	e := NewDocumentExtractor(nil)
	res, err := e.Extract(context.Background(), []byte("Jordan Lee\nSoftware Engineer\n"), "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee\nSoftware Engineer", res.Text)
	assert.Equal(t, "TXT", res.SourceType)
}

func TestExtractPlainTextEmpty(t *testing.T) {
	e := NewDocumentExtractor(nil)
	_, err := e.Extract(context.Background(), []byte("   \n\t"), "text/plain")
	assert.Error(t, err)
}

func TestExtractPlainTextInvalidUTF8(t *testing.T) {
	e := NewDocumentExtractor(nil)
	_, err := e.Extract(context.Background(), []byte{0xff, 0xfe, 0xfd}, "text/plain")
	assert.Error(t, err)
}

func TestExtractCorruptPDF(t *testing.T) {
	// A corrupt byte stream must fail with no partial text.
	e := NewDocumentExtractor(nil)
	res, err := e.Extract(context.Background(), []byte("%PDF-1.4 truncated garbage"), "application/pdf")
	assert.Error(t, err)
	assert.Empty(t, res.Text)
}

func TestExtractUnsupportedContentType(t *testing.T) {
	e := NewDocumentExtractor(nil)
	_, err := e.Extract(context.Background(), []byte("GIF89a"), "image/gif")
	assert.Error(t, err)
}

func TestDecodePDFString(t *testing.T) {
	assert.Equal(t, "a(b)c", decodePDFString([]byte(`a\(b\)c`)))
	assert.Equal(t, "tab\there", decodePDFString([]byte(`tab\there`)))
	assert.Equal(t, " x", decodePDFString([]byte(`\040x`)))
}

func TestParseContentStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n(Jordan Lee) Tj\n0 -14 Td\n(Software Engineer) Tj\nET\n")
	got := parseContentStream(stream)
	assert.Equal(t, "Jordan Lee\nSoftware Engineer", got)
}
