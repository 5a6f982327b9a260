package report

import (
	"bytes"
	"compress/zlib"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"insightapi/domain/analysis"
)

type failingRenderer struct{}

func (failingRenderer) RenderBar(series analysis.ChartSeries) ([]byte, error) {
	return nil, fmt.Errorf("rasterization unavailable")
}

func (failingRenderer) RenderDonut(series analysis.ChartSeries) ([]byte, error) {
	return nil, fmt.Errorf("rasterization unavailable")
}

type barFailingRenderer struct {
	donut *ChartImageRenderer
}

func (r barFailingRenderer) RenderBar(series analysis.ChartSeries) ([]byte, error) {
	return nil, fmt.Errorf("rasterization unavailable")
}

func (r barFailingRenderer) RenderDonut(series analysis.ChartSeries) ([]byte, error) {
	return r.donut.RenderDonut(series)
}

var (
	pageCountRe = regexp.MustCompile(`/Count (\d+)`)
	streamRe    = regexp.MustCompile(`(?s)stream\r?\n(.*?)endstream`)
)

func pdfPageCount(t *testing.T, data []byte) int {
	t.Helper()
	match := pageCountRe.FindSubmatch(data)
	require.NotNil(t, match, "no page count found in document")
	n, err := strconv.Atoi(string(match[1]))
	require.NoError(t, err)
	return n
}

// pdfText inflates the document's page content streams and returns their
// concatenation. Good enough to check for text written with Tj; streams
// that are not zlib-compressed content are skipped.
func pdfText(t *testing.T, data []byte) string {
	t.Helper()
	var out strings.Builder
	for _, m := range streamRe.FindAllSubmatch(data, -1) {
		zr, err := zlib.NewReader(bytes.NewReader(m[1]))
		if err != nil {
			continue
		}
		inflated, err := io.ReadAll(zr)
		zr.Close()
		if err != nil {
			continue
		}
		out.Write(inflated)
	}
	return out.String()
}

func testRequest(t *testing.T) analysis.Request {
	t.Helper()
	req, err := analysis.NewRequest("A chain of climbing gyms across three cities.", analysis.ModeStartup, analysis.KindSWOT)
	require.NoError(t, err)
	return req
}

func TestAssemble_ProducesPDF(t *testing.T) {
	record := analysis.Record{
		Strengths:     []string{"experienced instructors"},
		Weaknesses:    []string{"high rent"},
		Opportunities: []string{"corporate memberships"},
		Threats:       []string{"new competitor gym"},
	}
	assembler := NewPDFAssembler(NewChartImageRenderer(), zap.NewNop())

	var buf bytes.Buffer
	err := assembler.Assemble(context.Background(), &buf, testRequest(t), record, analysis.DeriveChartSeries(record))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("/Subtype /Image")))
}

func TestAssemble_PaginatesLongContent(t *testing.T) {
	filler := strings.Repeat("a detailed observation about the business and its market position ", 4)
	mkItems := func(prefix string) []string {
		items := make([]string, 0, 40)
		for i := 0; i < 40; i++ {
			items = append(items, fmt.Sprintf("%s finding %03d %s", prefix, i, filler))
		}
		return items
	}
	record := analysis.Record{
		Strengths:     mkItems("S"),
		Weaknesses:    mkItems("W"),
		Opportunities: mkItems("O"),
		Threats:       mkItems("T"),
	}

	assembler := NewPDFAssembler(failingRenderer{}, zap.NewNop())

	var buf bytes.Buffer
	err := assembler.Assemble(context.Background(), &buf, testRequest(t), record, analysis.DeriveChartSeries(record))
	require.NoError(t, err)

	assert.Greater(t, pdfPageCount(t, buf.Bytes()), 1)

	// Pagination must not drop or duplicate items: each unique marker
	// shows up on exactly one page.
	text := pdfText(t, buf.Bytes())
	for _, prefix := range []string{"S", "W", "O", "T"} {
		for i := 0; i < 40; i++ {
			marker := fmt.Sprintf("%s finding %03d", prefix, i)
			assert.Equalf(t, 1, strings.Count(text, marker), "item %q", marker)
		}
	}
}

func TestAssemble_OneChartFailureKeepsOtherChart(t *testing.T) {
	record := analysis.Record{
		Strengths:  []string{"solid fundamentals"},
		Weaknesses: []string{"aging tooling"},
	}
	assembler := NewPDFAssembler(barFailingRenderer{donut: NewChartImageRenderer()}, zap.NewNop())

	var buf bytes.Buffer
	err := assembler.Assemble(context.Background(), &buf, testRequest(t), record, analysis.DeriveChartSeries(record))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("/Subtype /Image")), "donut image must still be embedded")
}

func TestAssemble_ChartFailureStillDeliversDocument(t *testing.T) {
	record := analysis.Record{
		Strengths: []string{"solid fundamentals"},
	}
	assembler := NewPDFAssembler(failingRenderer{}, zap.NewNop())

	var buf bytes.Buffer
	err := assembler.Assemble(context.Background(), &buf, testRequest(t), record, analysis.DeriveChartSeries(record))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Zero(t, bytes.Count(buf.Bytes(), []byte("/Subtype /Image")))
}

func TestAssemble_Deterministic(t *testing.T) {
	record := analysis.Record{
		Strengths:  []string{"repeatable output"},
		Weaknesses: []string{"none known"},
	}
	assembler := NewPDFAssembler(failingRenderer{}, zap.NewNop())
	series := analysis.DeriveChartSeries(record)

	render := func() []byte {
		var buf bytes.Buffer
		require.NoError(t, assembler.Assemble(context.Background(), &buf, testRequest(t), record, series))
		return buf.Bytes()
	}

	first := render()
	second := render()
	assert.Equal(t, len(first), len(second))
}

func TestRenderBar_ProducesPNG(t *testing.T) {
	renderer := NewChartImageRenderer()
	record := analysis.Record{Strengths: []string{"a", "b"}}

	png, err := renderer.RenderBar(analysis.DeriveChartSeries(record))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestRenderDonut_ProducesPNG(t *testing.T) {
	renderer := NewChartImageRenderer()
	record := analysis.Record{Threats: []string{"a"}}

	png, err := renderer.RenderDonut(analysis.DeriveChartSeries(record))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestRenderBar_EmptySeriesFails(t *testing.T) {
	renderer := NewChartImageRenderer()
	_, err := renderer.RenderBar(analysis.ChartSeries{})
	assert.Error(t, err)
}
