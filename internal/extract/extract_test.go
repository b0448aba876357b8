package extract

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_PlainText(t *testing.T) {
	got, err := Text("notes.TXT", []byte("hello world"))

	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestText_UnsupportedType(t *testing.T) {
	for _, name := range []string{"slides.pptx", "image.png", "noext"} {
		_, err := Text(name, []byte("data"))
		assert.ErrorIs(t, err, ErrUnsupportedFileType, name)
	}
}

func TestText_PDF(t *testing.T) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.Cell(40, 10, "hello world")
	doc.AddPage()
	doc.Cell(40, 10, "second page")

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	got, err := Text("report.pdf", buf.Bytes())

	require.NoError(t, err)
	assert.Equal(t, "hello world\nsecond page\n", got)
}

func TestText_CorruptPDF(t *testing.T) {
	_, err := Text("broken.pdf", []byte("%PDF-1.4 not really"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFileType)
}

func TestFileTypeAndSupported(t *testing.T) {
	assert.Equal(t, "pdf", FileType("A.PDF"))
	assert.Equal(t, "", FileType("README"))
	assert.True(t, Supported("a.txt"))
	assert.False(t, Supported("a.docx"))
}
