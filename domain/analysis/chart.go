package analysis

// WeightPerItem scales item counts into chart weights
const WeightPerItem = 10

// ChartPoint is one weighted category in a chart series
type ChartPoint struct {
	Label  Category `json:"label"`
	Weight int      `json:"weight"`
}

// ChartSeries is the ordered numeric series driving the chart
// visualizations, one entry per category in fixed label order
type ChartSeries []ChartPoint

// DeriveChartSeries maps a record into its chart series. Pure function:
// weight = max(itemCount, 1) * WeightPerItem, so an empty category still
// charts with a floor weight and the series is never empty.
func DeriveChartSeries(r Record) ChartSeries {
	series := make(ChartSeries, 0, len(Categories))
	for _, c := range Categories {
		count := len(r.Items(c))
		if count < 1 {
			count = 1
		}
		weight := count * WeightPerItem
		if weight <= 0 {
			continue
		}
		series = append(series, ChartPoint{Label: c, Weight: weight})
	}
	return series
}

// Equals checks two series for field-for-field equality
func (s ChartSeries) Equals(other ChartSeries) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
