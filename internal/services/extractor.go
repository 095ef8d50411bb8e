package services

import (
	"path/filepath"
	"strings"
)

const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

type DocumentExtractor interface {
	Extract(content []byte, filename string) (string, error)
}

type documentExtractor struct {
	pdfParser  PDFParserService
	docxParser DOCXParserService
}

func NewDocumentExtractor(pdfParser PDFParserService, docxParser DOCXParserService) DocumentExtractor {
	return &documentExtractor{
		pdfParser:  pdfParser,
		docxParser: docxParser,
	}
}

// FormatFromFilename maps a filename to a supported format by extension,
// ignoring case. It returns ErrUnsupportedFormat for anything else.
func FormatFromFilename(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Extract returns the document text untrimmed; callers decide whether it is empty.
func (e *documentExtractor) Extract(content []byte, filename string) (string, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = e.pdfParser.ExtractText(content)
	case FormatDOCX:
		text, err = e.docxParser.ExtractText(content)
	}
	if err != nil {
		return "", &ExtractionError{Format: format, Err: err}
	}

	return text, nil
}
