package models

// Chart is the resolved geometry of a horizontal bar chart for one category.
// All coordinates are in SVG user units.
type Chart struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Plot area
	PlotX      float64 `json:"plot_x"`
	PlotY      float64 `json:"plot_y"`
	PlotWidth  float64 `json:"plot_width"`
	PlotHeight float64 `json:"plot_height"`

	Legend string     `json:"legend"`
	Bars   []ChartBar `json:"bars"`
	Ticks  []AxisTick `json:"ticks"`
}

// ChartBar is one leader's bar. Fill is resolved before rendering.
type ChartBar struct {
	Label   string  `json:"label"`
	Team    string  `json:"team"`
	Value   float64 `json:"value"`
	Tooltip string  `json:"tooltip"`
	Fill    string  `json:"fill"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	LabelY  float64 `json:"label_y"`
}

// AxisTick is a labeled position on the value axis
type AxisTick struct {
	X     float64 `json:"x"`
	Label string  `json:"label"`
}
