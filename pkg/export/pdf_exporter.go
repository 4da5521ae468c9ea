package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/ibdaa-school/docgen-api/internal/compose"
)

// PDFExporter renders a composed document tree into an A4 PDF page.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

const blankPlaceholder = "..............................."

// Render walks the section tree and emits one right-to-left page. Blank
// fragments without a value print as dotted placeholders; absent images are
// skipped without reserving space for an error box.
func (e *PDFExporter) Render(doc compose.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 14, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, sec := range doc.Sections {
		e.renderSection(pdf, tr, sec)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) renderSection(pdf *gofpdf.Fpdf, tr func(string) string, sec compose.Section) {
	switch sec.Kind {
	case compose.SectionTitle:
		pdf.SetFont("Arial", "BU", 15)
	case compose.SectionHeader, compose.SectionFootnote:
		pdf.SetFont("Arial", "B", 9)
	case compose.SectionSignatures, compose.SectionRecipient:
		pdf.SetFont("Arial", "B", 10)
	default:
		pdf.SetFont("Arial", "", 12)
	}

	for _, line := range sec.Lines {
		e.renderLine(pdf, tr, sec.Kind, line)
	}
	pdf.Ln(4)
}

func (e *PDFExporter) renderLine(pdf *gofpdf.Fpdf, tr func(string) string, kind compose.SectionKind, line compose.Line) {
	var parts []string
	for _, frag := range line.Fragments {
		switch frag.Kind {
		case compose.FragmentText:
			parts = append(parts, frag.Text)
		case compose.FragmentBlank:
			if frag.Value != "" {
				parts = append(parts, frag.Value)
			} else {
				parts = append(parts, blankPlaceholder)
			}
		case compose.FragmentCheckbox:
			if frag.Checked {
				parts = append(parts, "( X )")
			} else {
				parts = append(parts, "(   )")
			}
		case compose.FragmentSquareBox:
			if frag.Checked {
				parts = append(parts, "[X]")
			} else {
				parts = append(parts, "[ ]")
			}
		case compose.FragmentImage:
			e.renderImage(pdf, frag)
		}
	}
	if len(parts) == 0 {
		return
	}

	align := "R"
	if kind == compose.SectionTitle {
		align = "C"
	}
	pdf.CellFormat(0, 7, tr(strings.Join(parts, " ")), "", 1, align, false, 0, "")
}

// renderImage paints a configured branding asset inline. Payloads arrive as
// base64 data URLs; anything undecodable is dropped rather than failing the
// whole export.
func (e *PDFExporter) renderImage(pdf *gofpdf.Fpdf, frag compose.Fragment) {
	if frag.Value == "" {
		return
	}
	payload := frag.Value
	imageType := "PNG"
	if idx := strings.Index(payload, ","); idx >= 0 {
		header := payload[:idx]
		payload = payload[idx+1:]
		if strings.Contains(header, "jpeg") || strings.Contains(header, "jpg") {
			imageType = "JPG"
		}
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType}
	name := frag.Asset
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	if pdf.Err() {
		// ClearError, not SetError(nil): SetError ignores nil and keeps the
		// sticky error alive through Output.
		pdf.ClearError()
		return
	}
	x := (210.0 - 30.0) / 2
	pdf.ImageOptions(name, x, pdf.GetY(), 30, 0, true, opts, 0, "")
	if pdf.Err() {
		pdf.ClearError()
	}
}
