package logic

import (
	"math"
	"strings"
	"testing"

	"github.com/gridironlab/nfl-leaders/internal/models"
)

func passingYards() models.Category {
	return models.Category{
		Name:        "passingYards",
		DisplayName: "Passing Yards",
		Leaders: []models.TeamLeader{
			{Name: "Kansas City Chiefs", Value: 4839, Team: "Chiefs"},
			{Name: "Buffalo Bills", Value: 4512, Team: "Bills"},
			{Name: "Detroit Lions", Value: 4400, Team: "Lions"},
			{Name: "Las Vegas Raiders", Value: 2419.5, Team: "Raiders"},
			{Name: "Mystery Team", Value: 1000, Team: "Mystery"},
		},
	}
}

func mustColors(t *testing.T) *ColorTable {
	t.Helper()
	table, err := DefaultColorTable()
	if err != nil {
		t.Fatalf("DefaultColorTable() error = %v", err)
	}
	return table
}

func TestBuildChart_Bars(t *testing.T) {
	chart := BuildChart(passingYards(), mustColors(t), DefaultChartLayout)

	if len(chart.Bars) != 5 {
		t.Fatalf("len(Bars) = %d, want 5", len(chart.Bars))
	}
	if chart.Legend != "Passing Yards" {
		t.Errorf("Legend = %q", chart.Legend)
	}

	wantFills := []string{"#E31837", "#00338D", "#0076B6", "#000000", FallbackColor}
	for i, b := range chart.Bars {
		if b.Fill != wantFills[i] {
			t.Errorf("Bars[%d].Fill = %s, want %s", i, b.Fill, wantFills[i])
		}
	}

	first := chart.Bars[0]
	if first.Label != "Kansas City Chiefs" {
		t.Errorf("Label = %q", first.Label)
	}
	if first.Tooltip != "4839" {
		t.Errorf("Tooltip = %q, want raw value", first.Tooltip)
	}
	if chart.Bars[3].Tooltip != "2419.5" {
		t.Errorf("Tooltip = %q, want 2419.5", chart.Bars[3].Tooltip)
	}

	// Lengths are proportional to value
	ratio := chart.Bars[0].Width / chart.Bars[4].Width
	if math.Abs(ratio-4.839) > 1e-9 {
		t.Errorf("width ratio = %v, want 4.839", ratio)
	}
	if first.Width > chart.PlotWidth {
		t.Errorf("bar overflows plot: %v > %v", first.Width, chart.PlotWidth)
	}

	// Rows are stacked top to bottom in upstream order
	for i := 1; i < len(chart.Bars); i++ {
		if chart.Bars[i].Y <= chart.Bars[i-1].Y {
			t.Errorf("Bars[%d].Y = %v not below Bars[%d].Y = %v", i, chart.Bars[i].Y, i-1, chart.Bars[i-1].Y)
		}
	}
}

func TestBuildChart_Ticks(t *testing.T) {
	chart := BuildChart(passingYards(), mustColors(t), DefaultChartLayout)

	want := []string{"0", "1000", "2000", "3000", "4000", "5000"}
	if len(chart.Ticks) != len(want) {
		t.Fatalf("ticks = %+v", chart.Ticks)
	}
	for i, w := range want {
		if chart.Ticks[i].Label != w {
			t.Errorf("Ticks[%d] = %s, want %s", i, chart.Ticks[i].Label, w)
		}
	}
	last := chart.Ticks[len(chart.Ticks)-1]
	if math.Abs(last.X-(chart.PlotX+chart.PlotWidth)) > 1e-9 {
		t.Errorf("last tick X = %v, want plot edge", last.X)
	}
}

func TestBuildChart_EdgeCases(t *testing.T) {
	colors := mustColors(t)

	empty := BuildChart(models.Category{Name: "sacks", DisplayName: "Sacks"}, colors, DefaultChartLayout)
	if len(empty.Bars) != 0 {
		t.Errorf("empty category rendered %d bars", len(empty.Bars))
	}
	if len(empty.Ticks) != 1 {
		t.Errorf("empty category ticks = %+v", empty.Ticks)
	}

	zeros := BuildChart(models.Category{Leaders: []models.TeamLeader{
		{Name: "A", Value: 0, Team: "Jets"},
		{Name: "B", Value: -3, Team: "Giants"},
	}}, colors, DefaultChartLayout)
	for _, b := range zeros.Bars {
		if b.Width != 0 {
			t.Errorf("bar %s width = %v, want 0", b.Label, b.Width)
		}
	}

	small := BuildChart(models.Category{Leaders: []models.TeamLeader{{Name: "A", Value: 0.9, Team: "Jets"}}}, colors, DefaultChartLayout)
	if got := small.Ticks[len(small.Ticks)-1].Label; got != "1.0" {
		t.Errorf("fractional axis max = %s, want 1.0", got)
	}
}

func TestNiceDomain(t *testing.T) {
	tests := []struct {
		max      float64
		wantMax  float64
		wantStep float64
	}{
		{4839, 5000, 1000},
		{412, 500, 100},
		{101, 150, 50},
		{7, 8, 2},
		{0, 0, 0},
	}
	for _, tt := range tests {
		gotMax, gotStep, _ := niceDomain(tt.max)
		if math.Abs(gotMax-tt.wantMax) > 1e-9 || math.Abs(gotStep-tt.wantStep) > 1e-9 {
			t.Errorf("niceDomain(%v) = (%v, %v), want (%v, %v)", tt.max, gotMax, gotStep, tt.wantMax, tt.wantStep)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	c := passingYards()
	c.Leaders[0].Name = `Chiefs <script>alert(1)</script>`
	svg := RenderSVG(BuildChart(c, mustColors(t), DefaultChartLayout))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document: %.60s", svg)
	}
	if got := strings.Count(svg, `<rect class="bar"`); got != 5 {
		t.Errorf("bar rects = %d, want 5", got)
	}
	if !strings.Contains(svg, `fill="#E31837"><title>4839</title>`) {
		t.Error("missing Chiefs bar with value-only tooltip")
	}
	if strings.Contains(svg, "<script>") {
		t.Error("label was not escaped")
	}
	if !strings.Contains(svg, `stroke-dasharray="3 3"`) {
		t.Error("missing dashed grid")
	}
	if !strings.Contains(svg, "Passing Yards") {
		t.Error("missing legend")
	}
}
