package resume

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docxFixture(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextTxt(t *testing.T) {
	got, err := ExtractText("resume.TXT", []byte("Python developer.\n\n\nSQL   expert."))
	require.NoError(t, err)
	assert.Equal(t, "Python developer.\nSQL expert.", got)
}

func TestExtractTextDocx(t *testing.T) {
	data := docxFixture(t,
		`<w:document><w:body><w:p><w:r><w:t>Senior Python Developer</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Skills: machine learning, SQL</w:t></w:r></w:p></w:body></w:document>`)
	got, err := ExtractText("resume.docx", data)
	require.NoError(t, err)
	assert.Contains(t, got, "Senior Python Developer")
	assert.Contains(t, got, "machine learning, SQL")
}

func TestExtractTextDocxWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText("resume.docx", buf.Bytes())
	assert.Error(t, err)
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText("resume.odt", []byte("whatever"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractTextBrokenPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("not really a pdf"))
	assert.Error(t, err)
}
