package logic

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/gridironlab/nfl-leaders/internal/models"
)

// ChartLayout holds the fixed dimensions of the leaders bar chart
type ChartLayout struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	AxisWidth    float64 // room for team names
	XAxisHeight  float64
	LegendHeight float64
	BandGap      float64 // fraction of each row left empty above and below the bar
}

// DefaultChartLayout mirrors the chart the page has always shown
var DefaultChartLayout = ChartLayout{
	Width:        720,
	Height:       400,
	MarginTop:    5,
	MarginRight:  30,
	MarginBottom: 5,
	MarginLeft:   20,
	AxisWidth:    120,
	XAxisHeight:  30,
	LegendHeight: 24,
	BandGap:      0.1,
}

const (
	gridDash    = "3 3"
	gridColor   = "#ccc"
	axisColor   = "#666"
	legendColor = "#8884d8"
	tickTarget  = 5
)

// BuildChart resolves every bar of a category into plain geometry. Colors
// are looked up per leader here, so rendering never needs the table.
func BuildChart(category models.Category, colors ColorResolver, layout ChartLayout) models.Chart {
	plotX := layout.MarginLeft + layout.AxisWidth
	plotY := layout.MarginTop
	plotW := math.Max(0, layout.Width-plotX-layout.MarginRight)
	plotH := math.Max(0, layout.Height-layout.MarginTop-layout.MarginBottom-layout.XAxisHeight-layout.LegendHeight)

	chart := models.Chart{
		Width:      layout.Width,
		Height:     layout.Height,
		PlotX:      plotX,
		PlotY:      plotY,
		PlotWidth:  plotW,
		PlotHeight: plotH,
		Legend:     category.DisplayName,
		Bars:       make([]models.ChartBar, 0, len(category.Leaders)),
	}

	maxVal := 0.0
	for _, l := range category.Leaders {
		maxVal = math.Max(maxVal, l.Value)
	}
	domainMax, step, decimals := niceDomain(maxVal)

	if step == 0 {
		chart.Ticks = []models.AxisTick{{X: plotX, Label: "0"}}
	} else {
		n := int(math.Round(domainMax / step))
		for i := 0; i <= n; i++ {
			v := float64(i) * step
			chart.Ticks = append(chart.Ticks, models.AxisTick{
				X:     plotX + v/domainMax*plotW,
				Label: strconv.FormatFloat(v, 'f', decimals, 64),
			})
		}
	}

	if len(category.Leaders) == 0 {
		return chart
	}

	band := plotH / float64(len(category.Leaders))
	gap := band * layout.BandGap
	for i, l := range category.Leaders {
		width := 0.0
		if domainMax > 0 && l.Value > 0 {
			width = l.Value / domainMax * plotW
		}
		top := plotY + float64(i)*band
		chart.Bars = append(chart.Bars, models.ChartBar{
			Label:   l.Name,
			Team:    l.Team,
			Value:   l.Value,
			Tooltip: FormatValue(l.Value),
			Fill:    colors.Resolve(l.Team),
			X:       plotX,
			Y:       top + gap,
			Width:   width,
			Height:  band - 2*gap,
			LabelY:  top + band/2,
		})
	}
	return chart
}

// FormatValue renders a stat value as-is, with no grouping or units
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// niceDomain picks an axis maximum and tick step in 1/2/5 multiples of a
// power of ten so that roughly tickTarget intervals cover maxVal.
func niceDomain(maxVal float64) (domainMax, step float64, decimals int) {
	if maxVal <= 0 || math.IsInf(maxVal, 0) || math.IsNaN(maxVal) {
		return 0, 0, 0
	}
	raw := maxVal / tickTarget
	exp := math.Floor(math.Log10(raw))
	frac := raw / math.Pow(10, exp)

	var nice float64
	switch {
	case frac <= 1:
		nice = 1
	case frac <= 2:
		nice = 2
	case frac <= 5:
		nice = 5
	default:
		nice = 10
	}
	if nice == 10 {
		nice = 1
		exp++
	}
	step = nice * math.Pow(10, exp)
	domainMax = math.Ceil(maxVal/step-1e-9) * step
	if exp < 0 {
		decimals = int(-exp)
	}
	return domainMax, step, decimals
}

// RenderSVG draws a chart as a standalone SVG document
func RenderSVG(chart models.Chart) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg class="leaders-chart" width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg" role="img">`,
		num(chart.Width), num(chart.Height), num(chart.Width), num(chart.Height)))

	// Grid
	sb.WriteString(`<g class="grid">`)
	for _, t := range chart.Ticks {
		sb.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-dasharray="%s"/>`,
			num(t.X), num(chart.PlotY), num(t.X), num(chart.PlotY+chart.PlotHeight), gridColor, gridDash))
	}
	if n := len(chart.Bars); n > 0 {
		band := chart.PlotHeight / float64(n)
		for i := 0; i <= n; i++ {
			y := chart.PlotY + float64(i)*band
			sb.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-dasharray="%s"/>`,
				num(chart.PlotX), num(y), num(chart.PlotX+chart.PlotWidth), num(y), gridColor, gridDash))
		}
	}
	sb.WriteString(`</g>`)

	// Value axis
	axisY := chart.PlotY + chart.PlotHeight
	sb.WriteString(fmt.Sprintf(`<g class="x-axis"><line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`,
		num(chart.PlotX), num(axisY), num(chart.PlotX+chart.PlotWidth), num(axisY), axisColor))
	for _, t := range chart.Ticks {
		sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" fill="%s" font-size="12" text-anchor="middle">%s</text>`,
			num(t.X), num(axisY+18), axisColor, html.EscapeString(t.Label)))
	}
	sb.WriteString(`</g>`)

	// Category axis and bars
	sb.WriteString(fmt.Sprintf(`<g class="y-axis"><line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`,
		num(chart.PlotX), num(chart.PlotY), num(chart.PlotX), num(axisY), axisColor))
	for _, b := range chart.Bars {
		sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" fill="%s" font-size="12" text-anchor="end" dominant-baseline="middle">%s</text>`,
			num(chart.PlotX-8), num(b.LabelY), axisColor, html.EscapeString(b.Label)))
	}
	sb.WriteString(`</g>`)

	sb.WriteString(`<g class="bars">`)
	for _, b := range chart.Bars {
		sb.WriteString(fmt.Sprintf(`<rect class="bar" data-team="%s" x="%s" y="%s" width="%s" height="%s" fill="%s"><title>%s</title></rect>`,
			html.EscapeString(b.Team), num(b.X), num(b.Y), num(b.Width), num(b.Height), html.EscapeString(b.Fill), html.EscapeString(b.Tooltip)))
	}
	sb.WriteString(`</g>`)

	// Legend
	legendY := chart.Height - 12
	cx := chart.PlotX + chart.PlotWidth/2
	sb.WriteString(fmt.Sprintf(`<g class="legend"><rect x="%s" y="%s" width="10" height="10" fill="%s"/><text x="%s" y="%s" fill="%s" font-size="12" dominant-baseline="middle">%s</text></g>`,
		num(cx-60), num(legendY-5), legendColor, num(cx-45), num(legendY), legendColor, html.EscapeString(chart.Legend)))

	sb.WriteString(`</svg>`)
	return sb.String()
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
