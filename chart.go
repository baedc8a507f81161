package folio

import (
	"fmt"
	"io"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// RenderChart writes a PNG line chart of position values over time, one
// line per symbol. Series are added in symbol order so the legend is
// deterministic. Each series must already be sorted by date ascending
// (see PositionSeries).
func RenderChart(w io.Writer, series map[string][]PricePoint) error {
	symbols := make([]string, 0, len(series))
	for sym, points := range series {
		if len(points) > 1 {
			symbols = append(symbols, sym)
		}
	}
	if len(symbols) == 0 {
		return fmt.Errorf("no held symbol has enough price records to chart")
	}
	sort.Strings(symbols)

	graph := chart.Chart{
		Title:  "Portfolio Value Over Time",
		Width:  1000,
		Height: 600,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
	}
	for _, sym := range symbols {
		points := series[sym]
		xs := make([]time.Time, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = p.Date.Time()
			ys[i] = p.Value
		}
		graph.Series = append(graph.Series, chart.TimeSeries{Name: sym, XValues: xs, YValues: ys})
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
