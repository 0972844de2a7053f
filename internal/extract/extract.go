// Package extract turns uploaded file bytes into plain text. Each supported
// format maps to one Strategy; classification is a pure function of the
// declared MIME type and file name so callers can see which path ran.
package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

// Strategy identifies how text is pulled out of a file.
type Strategy int

const (
	StrategyUnknown Strategy = iota
	StrategyPDF
	StrategyImage
	StrategyDOCX
	StrategyPlainText
)

// Method labels surfaced to callers and stored on the document.
const (
	MethodPDF         = "PDF text extraction"
	MethodOCR         = "OCR (image)"
	MethodOCRFallback = "OCR (PDF fallback)"
	MethodDOCX        = "DOCX text extraction"
	MethodPlainText   = "Plain text"
)

// PDFPolicy decides what happens when the PDF parser yields (near-)empty text.
type PDFPolicy int

const (
	// PolicyStrict rejects a PDF whose extracted text trims to fewer than
	// pdfMinChars characters.
	PolicyStrict PDFPolicy = iota
	// PolicyOCRFallback retries such a PDF through the OCR strategy before
	// giving up.
	PolicyOCRFallback
)

const pdfMinChars = 10

// ParsePDFPolicy maps a config string to a policy, defaulting to strict.
func ParsePDFPolicy(raw string) PDFPolicy {
	if strings.EqualFold(strings.TrimSpace(raw), "ocr-fallback") {
		return PolicyOCRFallback
	}
	return PolicyStrict
}

var (
	// ErrUnsupportedType means no strategy matched the declared type or extension.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrPDFNoText means the PDF parser produced no usable text under the strict policy.
	ErrPDFNoText = errors.New("no text could be extracted from this PDF")
)

var rasterImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// Result is the outcome of one extraction.
type Result struct {
	Text     string
	Method   string
	Strategy Strategy
}

// Extractor dispatches file bytes to the strategy chosen by Classify.
type Extractor struct {
	Policy PDFPolicy
	OCR    *OCR
}

// New constructs an Extractor with the given PDF policy and OCR engine.
func New(policy PDFPolicy, ocr *OCR) *Extractor {
	return &Extractor{Policy: policy, OCR: ocr}
}

// Classify resolves the strategy for a declared MIME type and file name.
// Checks run in order; the first match wins. Unknown inputs return
// StrategyUnknown and false.
func Classify(declaredType, fileName string) (Strategy, bool) {
	mime := strings.ToLower(strings.TrimSpace(strings.Split(declaredType, ";")[0]))
	ext := strings.ToLower(filepath.Ext(fileName))

	switch {
	case mime == mimePDF || ext == ".pdf":
		return StrategyPDF, true
	case strings.HasPrefix(mime, "image/") || rasterImageExts[ext]:
		return StrategyImage, true
	case mime == mimeDOCX || ext == ".docx":
		return StrategyDOCX, true
	case mime == mimeText || ext == ".txt":
		return StrategyPlainText, true
	default:
		return StrategyUnknown, false
	}
}

// Extract produces plain text from the payload, reporting which strategy ran.
// Strategies may legally return empty text; the caller decides whether that
// is fatal. The one exception is the strict PDF policy, which rejects
// near-empty parser output here because the fallback decision belongs to the
// extractor.
func (e *Extractor) Extract(ctx context.Context, data []byte, declaredType, fileName string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	strategy, ok := Classify(declaredType, fileName)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedType, describeType(declaredType, fileName))
	}

	switch strategy {
	case StrategyPDF:
		return e.extractPDF(ctx, data)
	case StrategyImage:
		text, err := e.OCR.Recognize(ctx, data)
		if err != nil {
			return Result{}, fmt.Errorf("ocr: %w", err)
		}
		return Result{Text: text, Method: MethodOCR, Strategy: StrategyImage}, nil
	case StrategyDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return Result{}, fmt.Errorf("docx: %w", err)
		}
		return Result{Text: text, Method: MethodDOCX, Strategy: StrategyDOCX}, nil
	default:
		return Result{Text: string(data), Method: MethodPlainText, Strategy: StrategyPlainText}, nil
	}
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) (Result, error) {
	text, err := parsePDF(data)
	usable := err == nil && len(strings.TrimSpace(text)) >= pdfMinChars

	if usable {
		return Result{Text: text, Method: MethodPDF, Strategy: StrategyPDF}, nil
	}

	if e.Policy == PolicyStrict {
		if err != nil {
			return Result{}, fmt.Errorf("pdf: %w", err)
		}
		return Result{}, ErrPDFNoText
	}

	// Fallback policy: treat the PDF as a scanned image.
	text, ocrErr := e.OCR.Recognize(ctx, data)
	if ocrErr != nil {
		if err != nil {
			return Result{}, fmt.Errorf("pdf: %v; ocr fallback: %w", err, ocrErr)
		}
		return Result{}, fmt.Errorf("ocr fallback: %w", ocrErr)
	}
	return Result{Text: text, Method: MethodOCRFallback, Strategy: StrategyPDF}, nil
}

func parsePDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	readerAt := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(readerAt, int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return StripDocxXML(doc.Editable().GetContent()), nil
}

// StripDocxXML reduces word/document.xml markup to raw text, inserting a
// newline at paragraph and line-break boundaries.
func StripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func describeType(declaredType, fileName string) string {
	mime := strings.TrimSpace(declaredType)
	ext := filepath.Ext(fileName)
	switch {
	case mime != "" && ext != "":
		return mime + " (" + ext + ")"
	case mime != "":
		return mime
	case ext != "":
		return ext
	default:
		return "unknown"
	}
}
