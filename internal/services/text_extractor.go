package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/ats-screener/internal/models"
)

const wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type TextExtractorService interface {
	// ExtractText returns "" together with a *DocumentParseError or an
	// *UnsupportedFormatError when no text can be produced.
	ExtractText(data []byte, kind models.DocumentKind) (string, error)
	ExtractContent(data []byte, kind models.DocumentKind) (*DocumentContent, error)
}

type DocumentContent struct {
	Kind           models.DocumentKind
	Text           string
	PageCount      int
	ParagraphCount int
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

func (s *textExtractorService) ExtractText(data []byte, kind models.DocumentKind) (string, error) {
	content, err := s.ExtractContent(data, kind)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (s *textExtractorService) ExtractContent(data []byte, kind models.DocumentKind) (*DocumentContent, error) {
	switch kind {
	case models.KindPDF:
		return extractPDF(data)
	case models.KindDOCX:
		return extractDOCX(data)
	case models.KindText:
		if !utf8.Valid(data) {
			return nil, &DocumentParseError{Kind: kind, Cause: errors.New("invalid UTF-8 text")}
		}
		return &DocumentContent{Kind: kind, Text: string(data)}, nil
	default:
		return nil, &UnsupportedFormatError{Format: string(kind)}
	}
}

// DetectKind resolves the document kind from the declared content type, then
// the file extension, then the content itself.
func DetectKind(filename, contentType string, data []byte) (models.DocumentKind, error) {
	if kind, ok := models.ParseDocumentKind(contentType); ok {
		return kind, nil
	}
	if kind, ok := models.KindFromFilename(filename); ok {
		return kind, nil
	}

	detected := mimetype.Detect(data)
	switch {
	case detected.Is(models.MIMEPDF):
		return models.KindPDF, nil
	case detected.Is(models.MIMEDOCX):
		return models.KindDOCX, nil
	case detected.Is(models.MIMEText):
		return models.KindText, nil
	}

	format := contentType
	if format == "" {
		format = detected.String()
	}
	return "", &UnsupportedFormatError{Format: format}
}

func extractPDF(data []byte) (content *DocumentContent, err error) {
	// ledongthuc/pdf panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = &DocumentParseError{Kind: models.KindPDF, Cause: fmt.Errorf("pdf reader panic: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DocumentParseError{Kind: models.KindPDF, Cause: err}
	}

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// An unreadable page contributes nothing; the rest still counts.
			text = ""
		}
		pages = append(pages, text)
	}

	return &DocumentContent{
		Kind:      models.KindPDF,
		Text:      strings.Join(pages, "\n"),
		PageCount: totalPage,
	}, nil
}

func extractDOCX(data []byte) (*DocumentContent, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DocumentParseError{Kind: models.KindDOCX, Cause: err}
	}
	defer doc.Close()

	text, paragraphs, err := paragraphText(doc.Editable().GetContent())
	if err != nil {
		return nil, &DocumentParseError{Kind: models.KindDOCX, Cause: err}
	}

	return &DocumentContent{
		Kind:           models.KindDOCX,
		Text:           text,
		ParagraphCount: paragraphs,
	}, nil
}

// paragraphText walks word/document.xml and writes the run text of every
// w:p followed by one newline. Nested paragraphs (text boxes) are folded
// into the enclosing one.
func paragraphText(documentXML string) (string, int, error) {
	dec := xml.NewDecoder(strings.NewReader(documentXML))

	var out, para strings.Builder
	var paraDepth, runDepth, count int
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, fmt.Errorf("failed to read document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				paraDepth++
			case "r":
				runDepth++
			case "t":
				inText = runDepth > 0
			case "tab":
				if runDepth > 0 {
					para.WriteByte('\t')
				}
			case "br", "cr":
				if runDepth > 0 {
					para.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				paraDepth--
				if paraDepth == 0 {
					out.WriteString(para.String())
					out.WriteByte('\n')
					para.Reset()
					count++
				}
			case "r":
				runDepth--
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && paraDepth > 0 {
				para.Write(t)
			}
		}
	}

	return out.String(), count, nil
}
