package report

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"insightapi/domain/analysis"
)

// Charts render at a fixed pixel size well above their printed size, so
// the images stay sharp after the PDF scales them down.
const (
	chartWidthPx  = 1200
	chartHeightPx = 800
)

// categoryColors assigns one fill per category, in fixed label order
var categoryColors = []drawing.Color{
	{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}, // strengths
	{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}, // weaknesses
	{R: 0x15, G: 0x65, B: 0xc0, A: 0xff}, // opportunities
	{R: 0xef, G: 0x6c, B: 0x00, A: 0xff}, // threats
}

// ChartImageRenderer rasterizes a chart series into PNG bytes
type ChartImageRenderer struct{}

// NewChartImageRenderer creates a renderer
func NewChartImageRenderer() *ChartImageRenderer {
	return &ChartImageRenderer{}
}

// RenderBar draws one bar per category, height proportional to weight
func (r *ChartImageRenderer) RenderBar(series analysis.ChartSeries) ([]byte, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("empty chart series")
	}

	bars := make([]chart.Value, 0, len(series))
	for i, p := range series {
		bars = append(bars, chart.Value{
			Label: string(p.Label),
			Value: float64(p.Weight),
			Style: chart.Style{
				FillColor:   categoryColors[i%len(categoryColors)],
				StrokeColor: categoryColors[i%len(categoryColors)],
			},
		})
	}

	graph := chart.BarChart{
		Width:    chartWidthPx,
		Height:   chartHeightPx,
		BarWidth: 140,
		Bars:     bars,
		XAxis: chart.Style{
			FontSize: 18,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 16},
			Range: &chart.ContinuousRange{Min: 0, Max: maxWeight(series) * 1.1},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDonut draws the weight distribution as a donut chart
func (r *ChartImageRenderer) RenderDonut(series analysis.ChartSeries) ([]byte, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("empty chart series")
	}

	values := make([]chart.Value, 0, len(series))
	for i, p := range series {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", p.Label, p.Weight),
			Value: float64(p.Weight),
			Style: chart.Style{
				FillColor: categoryColors[i%len(categoryColors)],
				FontSize:  18,
			},
		})
	}

	graph := chart.DonutChart{
		Width:  chartHeightPx,
		Height: chartHeightPx,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render donut chart: %w", err)
	}
	return buf.Bytes(), nil
}

func maxWeight(series analysis.ChartSeries) float64 {
	max := 0
	for _, p := range series {
		if p.Weight > max {
			max = p.Weight
		}
	}
	return float64(max)
}
