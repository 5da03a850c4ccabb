// Package chart renders the pie and bar chart images embedded in the
// exported workbook.
package chart

import "errors"

// ErrEmptyChart is returned when every value of a chart is zero, so there
// is nothing to draw.
var ErrEmptyChart = errors.New("chart has no non-zero values")

// Slice is one wedge of a pie chart.
type Slice struct {
	Label string
	Value float64
	Color string // hex, e.g. "#008000"
}

// PieSpec describes one pie chart image.
type PieSpec struct {
	Title  string
	Path   string
	Slices []Slice
}

// Series is one coloured bar per category in a grouped bar chart.
type Series struct {
	Name   string
	Color  string
	Values []float64 // one per category
}

// BarSpec describes one grouped bar chart image.
type BarSpec struct {
	Title      string
	Path       string
	Categories []string
	Series     []Series
}

// Renderer writes chart images to the paths named in their specs.
type Renderer interface {
	Pie(spec PieSpec) error
	Bar(spec BarSpec) error
}

// Total sums the slice values.
func (s PieSpec) Total() float64 {
	var total float64
	for _, sl := range s.Slices {
		total += sl.Value
	}
	return total
}
