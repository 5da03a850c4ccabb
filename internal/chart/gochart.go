package chart

import (
	"fmt"
	"math"
	"os"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// GoChart renders PNG charts with go-chart.
type GoChart struct {
	Width  int
	Height int
}

// NewGoChart creates a renderer producing images of the given pixel size.
func NewGoChart(width, height int) *GoChart {
	if width <= 0 {
		width = 400
	}
	if height <= 0 {
		height = 300
	}
	return &GoChart{Width: width, Height: height}
}

// Pie renders a pie chart with percentage labels and black wedge borders.
// Zero-valued slices are omitted; an all-zero chart returns ErrEmptyChart.
func (g *GoChart) Pie(spec PieSpec) error {
	total := spec.Total()
	if total <= 0 {
		return ErrEmptyChart
	}

	values := make([]gochart.Value, 0, len(spec.Slices))
	for _, sl := range spec.Slices {
		if sl.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s %.2f%%", sl.Label, sl.Value/total*100),
			Value: sl.Value,
			Style: gochart.Style{
				FillColor:   hexColor(sl.Color),
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1.5,
				FontSize:    9,
			},
		})
	}

	pie := gochart.PieChart{
		Title:  spec.Title,
		Width:  g.Width,
		Height: g.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 30, Left: 10, Right: 10, Bottom: 10},
		},
		TitleStyle: gochart.Style{FontSize: 12},
		Values:     values,
	}

	return writeFile(spec.Path, func(f *os.File) error {
		return pie.Render(gochart.PNG, f)
	})
}

// Bar renders a grouped bar chart: for each category, one bar per series
// in series order.
func (g *GoChart) Bar(spec BarSpec) error {
	if len(spec.Categories) == 0 || len(spec.Series) == 0 {
		return ErrEmptyChart
	}

	var bars []gochart.Value
	top := 0.0
	for i, cat := range spec.Categories {
		for _, s := range spec.Series {
			v := 0.0
			if i < len(s.Values) {
				v = s.Values[i]
			}
			top = math.Max(top, v)
			bars = append(bars, gochart.Value{
				Label: cat + " " + s.Name,
				Value: v,
				Style: gochart.Style{
					FillColor:   hexColor(s.Color),
					StrokeColor: drawing.ColorBlack,
					StrokeWidth: 1,
				},
			})
		}
	}

	width := max(g.Width, len(bars)*60)

	bar := gochart.BarChart{
		Title:      spec.Title,
		Width:      width,
		Height:     g.Height + 100,
		BarWidth:   40,
		BarSpacing: 20,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		TitleStyle: gochart.Style{FontSize: 12},
		YAxis: gochart.YAxis{
			Name:  "Count",
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Max(top, 1)},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	return writeFile(spec.Path, func(f *os.File) error {
		return bar.Render(gochart.PNG, f)
	})
}

func writeFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path) //nolint:gosec // path is built by the exporter
	if err != nil {
		return fmt.Errorf("creating chart image: %w", err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}

var namedColors = map[string]string{
	"green":  "008000",
	"red":    "FF0000",
	"blue":   "0000FF",
	"orange": "FFA500",
	"gray":   "808080",
	"black":  "000000",
}

// hexColor parses "#RRGGBB", "RGB" or a basic colour name. Anything else is black.
func hexColor(s string) drawing.Color {
	hex := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if named, ok := namedColors[hex]; ok {
		hex = named
	}
	if len(hex) != 3 && len(hex) != 6 {
		return drawing.ColorBlack
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return drawing.ColorBlack
		}
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return drawing.ColorFromHex(hex)
}
