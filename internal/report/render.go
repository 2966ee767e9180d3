package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/signintech/gopdf"

	"github.com/ricardomestre7/restauris-2.0-app/internal/assessment"
	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
	"github.com/ricardomestre7/restauris-2.0-app/internal/phase"
	"github.com/ricardomestre7/restauris-2.0-app/internal/recommendation"
)

// ErrNoFont means no TrueType font could be found; gopdf cannot draw text
// without one.
var ErrNoFont = errors.New("no TTF font available for PDF rendering")

// DefaultFontPaths are tried after the configured font, in order.
var DefaultFontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
}

// Document is everything printed on one report.
type Document struct {
	PatientName string
	Record      assessment.Record
	Comparison  assessment.Comparison
	Phase       *phase.State
	GeneratedAt time.Time
}

type Renderer interface {
	Render(doc Document) ([]byte, error)
}

type PDFRenderer struct {
	fontPaths []string
	labels    labels
}

// NewPDFRenderer renders in locale, drawing text with fontPath or, when that
// is empty or missing, the first of DefaultFontPaths that exists.
func NewPDFRenderer(locale, fontPath string) *PDFRenderer {
	paths := DefaultFontPaths
	if fontPath != "" {
		paths = append([]string{fontPath}, DefaultFontPaths...)
	}
	return &PDFRenderer{fontPaths: paths, labels: labelsFor(locale)}
}

func (r *PDFRenderer) fontPath() (string, error) {
	for _, p := range r.fontPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", ErrNoFont
}

const (
	fontName   = "body"
	marginLeft = 40.0
	textWidth  = 515.0
	barWidth   = 300.0
	barHeight  = 12.0
	labelWidth = 110.0
	footerY    = 800.0
)

func (r *PDFRenderer) Render(doc Document) ([]byte, error) {
	path, err := r.fontPath()
	if err != nil {
		return nil, err
	}

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.SetMargins(marginLeft, 40, marginLeft, 40)
	pdf.AddPage()
	if err := pdf.AddTTFFont(fontName, path); err != nil {
		return nil, fmt.Errorf("loading font %s: %w", path, err)
	}

	l := r.labels
	w := &writer{pdf: pdf}

	w.text(20, l.Title)
	w.pdf.Br(30)
	w.text(12, fmt.Sprintf("%s: %s", l.Patient, doc.PatientName))
	w.pdf.Br(16)
	w.text(12, fmt.Sprintf("%s: %s", l.Date, doc.Record.CreatedAt.Format(l.DateLayout)))
	w.pdf.Br(16)
	if doc.Phase != nil {
		w.text(12, fmt.Sprintf("%s: %s", l.Phase, doc.Phase.Number))
		w.pdf.Br(16)
	}
	w.pdf.Br(14)

	w.text(14, l.Scores)
	w.pdf.Br(20)
	previous := map[catalog.Category]int{}
	if doc.Comparison.Ready() {
		for _, p := range doc.Comparison.Pairs {
			previous[p.Category] = p.Previous
		}
	}
	for _, cat := range catalog.Categories {
		score := doc.Record.Scores[cat]
		prev, hasPrev := previous[cat]
		w.scoreRow(l.Categories[cat], score, prev, hasPrev, l.Previous)
	}
	if !doc.Comparison.Ready() {
		w.pdf.Br(4)
		w.paragraph(10, l.NoPrevious)
	}
	w.pdf.Br(14)

	w.text(14, l.Recommendations)
	w.pdf.Br(20)
	for _, rec := range doc.Record.Recommendations {
		w.paragraph(11, "- "+rec.Message)
		w.pdf.Br(4)
	}

	pdf.SetY(footerY)
	pdf.SetX(marginLeft)
	w.text(9, fmt.Sprintf("%s, %s", l.Footer, doc.GeneratedAt.Format(l.DateLayout)))

	if w.err != nil {
		return nil, w.err
	}
	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// writer keeps the first drawing error so the layout code reads top to
// bottom.
type writer struct {
	pdf *gopdf.GoPdf
	err error
}

func (w *writer) text(size float64, s string) {
	if w.err != nil {
		return
	}
	if w.err = w.pdf.SetFont(fontName, "", size); w.err != nil {
		return
	}
	w.err = w.pdf.Cell(nil, s)
}

func (w *writer) paragraph(size float64, s string) {
	if w.err != nil {
		return
	}
	if w.err = w.pdf.SetFont(fontName, "", size); w.err != nil {
		return
	}
	lines, err := w.pdf.SplitText(s, textWidth)
	if err != nil {
		w.err = err
		return
	}
	for _, line := range lines {
		w.pdf.SetX(marginLeft)
		if w.err = w.pdf.Cell(nil, line); w.err != nil {
			return
		}
		w.pdf.Br(size + 3)
	}
}

func (w *writer) scoreRow(label string, score, prev int, hasPrev bool, prevLabel string) {
	if w.err != nil {
		return
	}
	y := w.pdf.GetY()
	w.pdf.SetX(marginLeft)
	w.text(11, label)

	r, g, b := barColor(score)
	w.pdf.SetFillColor(230, 230, 230)
	w.pdf.RectFromUpperLeftWithStyle(marginLeft+labelWidth, y, barWidth, barHeight, "F")
	if score > 0 {
		w.pdf.SetFillColor(r, g, b)
		w.pdf.RectFromUpperLeftWithStyle(marginLeft+labelWidth, y, barWidth*float64(score)/100, barHeight, "F")
	}

	w.pdf.SetX(marginLeft + labelWidth + barWidth + 10)
	w.pdf.SetY(y)
	value := fmt.Sprintf("%d", score)
	if hasPrev {
		value = fmt.Sprintf("%d (%s %d, %+d)", score, prevLabel, prev, score-prev)
	}
	w.text(11, value)
	w.pdf.SetY(y + barHeight + 8)
	w.pdf.SetX(marginLeft)
}

// barColor follows the recommendation thresholds.
func barColor(score int) (uint8, uint8, uint8) {
	switch {
	case score < recommendation.LowThreshold:
		return 214, 69, 65
	case score < recommendation.MidThreshold:
		return 240, 173, 78
	default:
		return 92, 184, 92
	}
}
