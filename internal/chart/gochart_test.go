package chart

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func decodePNG(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}

func TestGoChart_Pie(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.png")
	r := NewGoChart(400, 300)

	err := r.Pie(PieSpec{
		Title: "Exercise Do Activity Progress",
		Path:  path,
		Slices: []Slice{
			{Label: "Completed", Value: 1, Color: "#008000"},
			{Label: "Not Completed", Value: 1, Color: "#FF0000"},
		},
	})
	if err != nil {
		t.Fatalf("Pie: %v", err)
	}

	w, h := decodePNG(t, path)
	if w != 400 || h != 300 {
		t.Errorf("image size = %dx%d, want 400x300", w, h)
	}
}

func TestGoChart_PieSingleNonZeroSlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.png")

	err := NewGoChart(0, 0).Pie(PieSpec{
		Title: "Avoidance",
		Path:  path,
		Slices: []Slice{
			{Label: "Avoided", Value: 3, Color: "green"},
			{Label: "Not Avoided", Value: 0, Color: "#FF0000"},
		},
	})
	if err != nil {
		t.Fatalf("Pie: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("image not written: %v", err)
	}
}

func TestGoChart_PieAllZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.png")

	err := NewGoChart(400, 300).Pie(PieSpec{
		Path:   path,
		Slices: []Slice{{Label: "Completed"}, {Label: "Not Completed"}},
	})
	if !errors.Is(err, ErrEmptyChart) {
		t.Fatalf("err = %v, want ErrEmptyChart", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("empty chart left a file behind: %v", err)
	}
}

func TestGoChart_Bar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.png")

	err := NewGoChart(400, 300).Bar(BarSpec{
		Title:      "Goal Progress Comparison",
		Path:       path,
		Categories: []string{"Exercise", "Sleep"},
		Series: []Series{
			{Name: "total", Color: "#008000", Values: []float64{2, 0}},
			{Name: "missed", Color: "#FF0000", Values: []float64{1, 0}},
		},
	})
	if err != nil {
		t.Fatalf("Bar: %v", err)
	}

	w, h := decodePNG(t, path)
	if w < 400 || h != 400 {
		t.Errorf("image size = %dx%d", w, h)
	}
}

func TestGoChart_BarAllZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.png")

	err := NewGoChart(400, 300).Bar(BarSpec{
		Path:       path,
		Categories: []string{"A"},
		Series:     []Series{{Name: "total", Values: []float64{0}}},
	})
	if err != nil {
		t.Fatalf("Bar with zero values: %v", err)
	}
}

func TestGoChart_BarNoCategories(t *testing.T) {
	err := NewGoChart(400, 300).Bar(BarSpec{Path: filepath.Join(t.TempDir(), "bar.png")})
	if !errors.Is(err, ErrEmptyChart) {
		t.Fatalf("err = %v, want ErrEmptyChart", err)
	}
}

func TestHexColor(t *testing.T) {
	cases := map[string][3]uint8{
		"#008000": {0, 128, 0},
		"FF0000":  {255, 0, 0},
		"green":   {0, 128, 0},
		"#fff":    {255, 255, 255},
		"bogus":   {0, 0, 0},
		"":        {0, 0, 0},
	}
	for in, want := range cases {
		c := hexColor(in)
		if c.R != want[0] || c.G != want[1] || c.B != want[2] {
			t.Errorf("hexColor(%q) = %d,%d,%d want %v", in, c.R, c.G, c.B, want)
		}
	}
}
