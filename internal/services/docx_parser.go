package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

const (
	wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	markupCompatNS   = "http://schemas.openxmlformats.org/markup-compatibility/2006"
)

type DOCXParserService interface {
	ExtractText(content []byte) (string, error)
}

type docxParserService struct{}

func NewDOCXParserService() DOCXParserService {
	return &docxParserService{}
}

// ExtractText returns the text of every paragraph in document order, one per
// line. Empty paragraphs produce empty lines.
func (d *docxParserService) ExtractText(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	paragraphs, err := paragraphsFromXML(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX body: %w", err)
	}

	return strings.Join(paragraphs, "\n"), nil
}

// paragraphsFromXML walks word/document.xml and collects the text of each w:p.
// Only WordprocessingML elements count. mc:Fallback is skipped because it
// repeats the mc:Choice content for older readers.
func paragraphsFromXML(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		inText     bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == markupCompatNS && t.Name.Local == "Fallback" {
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				}
				depth++
			case "t":
				inText = depth > 0
			case "tab":
				if depth > 0 {
					current.WriteString("\t")
				}
			case "br", "cr":
				if depth > 0 {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					continue
				}
				depth--
				if depth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
