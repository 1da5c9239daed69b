package models

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type DocumentKind string

const (
	KindPDF  DocumentKind = "pdf"
	KindDOCX DocumentKind = "docx"
	KindText DocumentKind = "text"
)

const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
)

// Valid reports whether k is one of the supported document kinds.
func (k DocumentKind) Valid() bool {
	switch k {
	case KindPDF, KindDOCX, KindText:
		return true
	}
	return false
}

// ParseDocumentKind accepts a kind name ("pdf", "docx", "text", "txt"),
// a MIME type or a file extension. It returns false for anything else.
func ParseDocumentKind(value string) (DocumentKind, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if i := strings.Index(v, ";"); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}

	switch v {
	case "pdf", ".pdf", MIMEPDF:
		return KindPDF, true
	case "docx", ".docx", MIMEDOCX:
		return KindDOCX, true
	case "text", "txt", ".txt", MIMEText:
		return KindText, true
	}
	return "", false
}

// KindFromFilename resolves a kind from the file extension.
func KindFromFilename(filename string) (DocumentKind, bool) {
	ext := filepath.Ext(filename)
	if ext == "" {
		return "", false
	}
	return ParseDocumentKind(ext)
}

// Upload is a résumé read into memory from a request.
type Upload struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Data        []byte    `json:"-"`
}
