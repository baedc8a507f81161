package folio

import (
	"bytes"
	"testing"
	"time"

	"github.com/quantfold/folio/date"
)

func TestRenderChart(t *testing.T) {
	feb := func(day int) date.Date { return date.New(2017, time.February, day) }
	series := map[string][]PricePoint{
		"GOOGL": {{Date: feb(1), Value: 900}, {Date: feb(2), Value: 950}, {Date: feb(3), Value: 1000}},
		"MSFT":  {{Date: feb(1), Value: 120}, {Date: feb(2), Value: 125}},
	}

	var buf bytes.Buffer
	if err := RenderChart(&buf, series); err != nil {
		t.Fatalf("RenderChart() failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output does not start with the PNG signature, got % x", buf.Bytes()[:4])
	}
}

func TestRenderChart_SkipsShortSeries(t *testing.T) {
	feb := func(day int) date.Date { return date.New(2017, time.February, day) }
	series := map[string][]PricePoint{
		"GOOGL": {{Date: feb(1), Value: 900}, {Date: feb(2), Value: 950}},
		"MSFT":  {{Date: feb(1), Value: 120}}, // a single point cannot draw a line
	}
	var buf bytes.Buffer
	if err := RenderChart(&buf, series); err != nil {
		t.Fatalf("RenderChart() failed: %v", err)
	}
}

func TestRenderChart_NothingChartable(t *testing.T) {
	series := map[string][]PricePoint{
		"MSFT": {{Date: date.New(2017, time.February, 1), Value: 120}},
	}
	var buf bytes.Buffer
	if err := RenderChart(&buf, series); err == nil {
		t.Error("RenderChart() with no chartable series succeeded, want error")
	}
	if err := RenderChart(&buf, nil); err == nil {
		t.Error("RenderChart() with no series succeeded, want error")
	}
}
