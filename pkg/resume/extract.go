package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for anything other than pdf, docx or txt.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, docx and txt are allowed")

// ExtractText pulls plain text out of a resume file based on its extension.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return fromPDF(data)
	case ".docx":
		return fromDocx(data)
	case ".txt":
		return fromTxt(data), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return tidyWhitespace(buf.String()), nil
}

var reXMLTags = regexp.MustCompile(`<[^>]+>`)

func fromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("read docx: %w", err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read docx: %w", err)
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	txt := string(docXML)
	// paragraph and tab boundaries become whitespace before tags are dropped
	txt = strings.ReplaceAll(txt, "</w:p>", "\n")
	txt = strings.ReplaceAll(txt, "<w:tab/>", "\t")
	txt = reXMLTags.ReplaceAllString(txt, " ")
	return tidyWhitespace(txt), nil
}

func fromTxt(data []byte) string {
	// drop any invalid UTF-8 rather than failing on odd encodings
	return tidyWhitespace(strings.ToValidUTF8(string(data), " "))
}

var (
	reHorizWS = regexp.MustCompile(`[ \t\r\f\v]+`)
	reLines   = regexp.MustCompile(`\n+`)
)

func tidyWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ") // NBSP
	s = reHorizWS.ReplaceAllString(s, " ")
	s = reLines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
