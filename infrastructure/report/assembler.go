// Package report assembles a generated analysis into a paginated PDF
// document with section text and chart images.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"insightapi/application/ports"
	"insightapi/domain/analysis"
	pkgerrors "insightapi/pkg/errors"
)

// DefaultFilename is the download name for every exported report
const DefaultFilename = "swot-analysis-report.pdf"

// Page geometry in millimeters (A4 portrait)
const (
	pageMarginLeft  = 15.0
	pageMarginTop   = 15.0
	pageBottomLimit = 282.0 // content below this line starts a new page
	contentWidth    = 180.0

	titleFontSize   = 20.0
	headingFontSize = 14.0
	bodyFontSize    = 11.0
	lineHeight      = 6.0

	chartImageWidth  = 150.0
	chartImageHeight = 100.0
	donutImageWidth  = 110.0
	donutImageHeight = 110.0
)

// PDFAssembler implements ports.ReportAssembler with go-pdf/fpdf.
// Layout runs on a single y cursor: a block that would cross the bottom
// boundary starts a new page with the cursor reset to the top, and a
// wrapped item moves to the next page whole rather than splitting.
type PDFAssembler struct {
	charts ports.ChartRenderer
	logger *zap.Logger
}

// NewPDFAssembler creates an assembler over the given chart renderer
func NewPDFAssembler(charts ports.ChartRenderer, logger *zap.Logger) *PDFAssembler {
	return &PDFAssembler{
		charts: charts,
		logger: logger,
	}
}

type layout struct {
	pdf *fpdf.Fpdf
	y   float64
}

func (l *layout) ensureRoom(height float64) {
	if l.y+height > pageBottomLimit {
		l.pdf.AddPage()
		l.y = pageMarginTop
	}
}

// writeLines writes a pre-wrapped block of lines as one atomic unit
func (l *layout) writeLines(lines []string, indent float64) {
	l.ensureRoom(float64(len(lines)) * lineHeight)
	for _, line := range lines {
		l.pdf.SetXY(pageMarginLeft+indent, l.y)
		l.pdf.CellFormat(contentWidth-indent, lineHeight, line, "", 0, "L", false, 0, "")
		l.y += lineHeight
	}
}

func (l *layout) space(height float64) {
	l.y += height
}

// Assemble writes the full report document to w
func (a *PDFAssembler) Assemble(ctx context.Context, w io.Writer, req analysis.Request, record analysis.Record, series analysis.ChartSeries) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	l := &layout{pdf: pdf, y: pageMarginTop}

	a.writeHeader(l, req)
	a.writeSections(l, record)
	a.writeCharts(ctx, l, series)

	if err := pdf.Output(w); err != nil {
		return pkgerrors.NewExportError("report assembly", err)
	}
	return nil
}

func (a *PDFAssembler) writeHeader(l *layout, req analysis.Request) {
	pdf := l.pdf

	pdf.SetFont("Helvetica", "B", titleFontSize)
	pdf.SetXY(pageMarginLeft, l.y)
	pdf.CellFormat(contentWidth, 10, fmt.Sprintf("%s Report", req.Kind().Label()), "", 0, "L", false, 0, "")
	l.y += 12

	pdf.SetFont("Helvetica", "", bodyFontSize)
	l.writeLines([]string{fmt.Sprintf("Perspective: %s", req.Mode().Label())}, 0)

	pdf.SetFont("Helvetica", "I", bodyFontSize)
	descLines := pdf.SplitText(req.Description(), contentWidth)
	l.writeLines(descLines, 0)
	l.space(4)
}

func (a *PDFAssembler) writeSections(l *layout, record analysis.Record) {
	pdf := l.pdf

	for _, category := range analysis.Categories {
		items := record.Items(category)

		pdf.SetFont("Helvetica", "B", headingFontSize)
		heading := pdf.SplitText(string(category), contentWidth)
		l.ensureRoom(float64(len(heading))*lineHeight + lineHeight)
		l.writeLines(heading, 0)

		pdf.SetFont("Helvetica", "", bodyFontSize)
		if len(items) == 0 {
			l.writeLines([]string{"No items identified."}, 4)
		}
		for _, item := range items {
			lines := pdf.SplitText("- "+item, contentWidth-4)
			l.writeLines(lines, 4)
		}
		l.space(4)
	}
}

// writeCharts places the bar and donut images. A failed render is logged
// and skipped; the text report is still delivered.
func (a *PDFAssembler) writeCharts(ctx context.Context, l *layout, series analysis.ChartSeries) {
	type chartSpec struct {
		name    string
		caption string
		width   float64
		height  float64
		render  func(analysis.ChartSeries) ([]byte, error)
	}

	specs := []chartSpec{
		{"bar", "Category weights", chartImageWidth, chartImageHeight, a.charts.RenderBar},
		{"donut", "Weight distribution", donutImageWidth, donutImageHeight, a.charts.RenderDonut},
	}

	for _, spec := range specs {
		if ctx.Err() != nil {
			return
		}

		png, err := spec.render(series)
		if err != nil {
			a.logger.Warn("Chart render failed, skipping image",
				zap.String("chart", spec.name),
				zap.Error(err),
			)
			continue
		}

		l.ensureRoom(spec.height + 2*lineHeight)

		pdf := l.pdf
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(spec.name, opts, bytes.NewReader(png))
		pdf.ImageOptions(spec.name, pageMarginLeft, l.y, spec.width, spec.height, false, opts, 0, "")
		l.y += spec.height + 2

		pdf.SetFont("Helvetica", "I", bodyFontSize)
		l.writeLines([]string{spec.caption}, 0)
		l.space(4)
	}
}
