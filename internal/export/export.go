// Package export writes goals and tracking results to an .xlsx workbook
// with embedded chart images.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gofrs/flock"
	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/habitrack/internal/chart"
	"github.com/theirongolddev/habitrack/internal/logger"
	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/pipeline"
)

// Sheet names.
const (
	GoalSheet    = "Goal"
	TrackerSheet = "Tracker"
)

// ErrLocked is returned when another export holds the workbook lock.
var ErrLocked = errors.New("workbook is locked by another export")

var (
	goalHeaders    = []string{"Do Activity", "Do Not Activity"}
	trackerHeaders = []string{"Date", "Do Activity", "Completed", "Do Not Activity", "Avoided"}
)

// Options configures an Exporter.
type Options struct {
	OutputPath   string
	ImageDir     string // parent of the per-run temporary image directory
	MinBlockRows int
	PassColor    string
	FailColor    string
}

// Result summarises a finished export.
type Result struct {
	Path    string
	Tallies []model.Tally
	Images  int // chart images embedded
	Removed int // temporary images deleted
}

// Exporter lays out the Goal and Tracker sheets and embeds chart images.
type Exporter struct {
	opts   Options
	charts chart.Renderer
	log    *logger.Console
}

// New creates an Exporter.
func New(opts Options, charts chart.Renderer, log *logger.Console) *Exporter {
	if opts.MinBlockRows <= 0 {
		opts.MinBlockRows = 23
	}
	if opts.ImageDir == "" {
		opts.ImageDir = os.TempDir()
	}
	if opts.PassColor == "" {
		opts.PassColor = "#008000"
	}
	if opts.FailColor == "" {
		opts.FailColor = "#FF0000"
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Exporter{opts: opts, charts: charts, log: log}
}

// Export writes the workbook, replacing any file already at the output
// path. Temporary chart images are removed before returning, even when the
// export fails; removal failures are logged and never returned.
func (e *Exporter) Export(goals []model.Goal, doRecs []model.DoRecord, doNotRecs []model.DoNotRecord) (res Result, err error) {
	res.Path = e.opts.OutputPath
	if e.opts.OutputPath == "" {
		return res, errors.New("no output path configured")
	}

	if err := os.MkdirAll(filepath.Dir(e.opts.OutputPath), 0o750); err != nil {
		return res, fmt.Errorf("creating output dir: %w", err)
	}

	lock := flock.New(e.opts.OutputPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return res, fmt.Errorf("locking workbook: %w", err)
	}
	if !locked {
		return res, ErrLocked
	}
	defer func() { _ = lock.Unlock() }()

	if err := os.MkdirAll(e.opts.ImageDir, 0o750); err != nil {
		return res, fmt.Errorf("creating image dir: %w", err)
	}
	imgDir, err := os.MkdirTemp(e.opts.ImageDir, "habitrack-charts-")
	if err != nil {
		return res, fmt.Errorf("creating image dir: %w", err)
	}

	w := &workbook{
		file:   excelize.NewFile(),
		e:      e,
		imgDir: imgDir,
	}
	defer func() {
		_ = w.file.Close()
		res.Removed = removeImages(e.log, imgDir, w.images)
	}()

	if err := w.init(); err != nil {
		return res, err
	}
	if err := w.writeGoals(goals); err != nil {
		return res, err
	}

	groups := pipeline.GroupByGoal(pipeline.GoalNames(goals), doRecs, doNotRecs)
	cur, err := w.writeTracker(groups)
	if err != nil {
		return res, err
	}
	res.Tallies = pipeline.TallyAll(groups)

	if err := w.writeComparison(res.Tallies, cur); err != nil {
		return res, err
	}

	if err := w.file.SaveAs(e.opts.OutputPath); err != nil {
		return res, fmt.Errorf("saving workbook: %w", err)
	}
	res.Images = w.embedded

	e.log.Infof("Wrote %s (%d goals, %d charts)", e.opts.OutputPath, len(groups), w.embedded)
	return res, nil
}

// workbook holds the state of one export run.
type workbook struct {
	file      *excelize.File
	e         *Exporter
	imgDir    string
	images    []string
	embedded  int
	boldStyle int
}

func (w *workbook) init() error {
	if err := w.file.SetSheetName("Sheet1", GoalSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := w.file.NewSheet(TrackerSheet); err != nil {
		return fmt.Errorf("adding sheet: %w", err)
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}
	w.boldStyle = style

	widths := map[string][]float64{
		GoalSheet:    {30, 30},
		TrackerSheet: {12, 28, 11, 28, 11},
	}
	for sheet, ws := range widths {
		for i, width := range ws {
			col, _ := excelize.ColumnNumberToName(i + 1)
			if err := w.file.SetColWidth(sheet, col, col, width); err != nil {
				return fmt.Errorf("sizing %s!%s: %w", sheet, col, err)
			}
		}
	}
	return nil
}

// writeGoals writes one two-column table per goal, padded to equal length.
func (w *workbook) writeGoals(goals []model.Goal) error {
	cur := 0
	for _, g := range goals {
		rows := max(len(g.Do), len(g.DoNot))
		b := goalBlock(cur, rows)

		if err := w.title(GoalSheet, b.titleRow, g.Name); err != nil {
			return err
		}
		if err := w.header(GoalSheet, b.headRow, goalHeaders); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			row := []any{at(g.Do, r), at(g.DoNot, r)}
			if err := w.row(GoalSheet, b.firstRow+r, row); err != nil {
				return err
			}
		}
		cur = b.next
	}
	return nil
}

// writeTracker writes one five-column table and three pie charts per goal.
// It returns the cursor after the last block.
func (w *workbook) writeTracker(groups []pipeline.GoalRows) (int, error) {
	cur := 0
	for i, g := range groups {
		rows := g.Len()
		b := trackerBlock(cur, rows, w.e.opts.MinBlockRows)

		if err := w.title(TrackerSheet, b.titleRow, g.Goal); err != nil {
			return cur, err
		}
		if err := w.header(TrackerSheet, b.headRow, trackerHeaders); err != nil {
			return cur, err
		}
		for r := 0; r < rows; r++ {
			if err := w.row(TrackerSheet, b.firstRow+r, trackerRow(g, r)); err != nil {
				return cur, err
			}
		}

		t := pipeline.Tally(g)
		for j, spec := range w.pies(i, t) {
			if err := w.embedPie(spec, pieColumns[j], b.chartRow); err != nil {
				return cur, err
			}
		}

		cur = b.next
	}
	return cur, nil
}

func trackerRow(g pipeline.GoalRows, r int) []any {
	row := []any{"", "", "", "", ""}
	if r < len(g.Do) {
		d := g.Do[r]
		row[0], row[1], row[2] = d.Date, d.Activity, d.Completed.Symbol()
	}
	if r < len(g.DoNot) {
		n := g.DoNot[r]
		if row[0] == "" {
			row[0] = n.Date
		}
		row[3], row[4] = n.Activity, n.Avoided.Symbol()
	}
	return row
}

func (w *workbook) pies(i int, t model.Tally) [3]chart.PieSpec {
	pass, fail := w.e.opts.PassColor, w.e.opts.FailColor
	base := fmt.Sprintf("%02d_%s", i+1, fileSafe(t.Goal))
	return [3]chart.PieSpec{
		{
			Title: t.Goal + " Do Activity Progress",
			Path:  filepath.Join(w.imgDir, base+"_Do_Activity_Pie.png"),
			Slices: []chart.Slice{
				{Label: model.StatusPass.Label(model.KindDo), Value: float64(t.Completed), Color: pass},
				{Label: model.StatusFail.Label(model.KindDo), Value: float64(t.NotCompleted), Color: fail},
			},
		},
		{
			Title: t.Goal + " Do Not Activity Progress",
			Path:  filepath.Join(w.imgDir, base+"_Do_Not_Activity_Pie.png"),
			Slices: []chart.Slice{
				{Label: model.StatusPass.Label(model.KindDoNot), Value: float64(t.Avoided), Color: pass},
				{Label: model.StatusFail.Label(model.KindDoNot), Value: float64(t.NotAvoided), Color: fail},
			},
		},
		{
			Title: t.Goal + " Overall Progress",
			Path:  filepath.Join(w.imgDir, base+"_Overall_Progress_Pie.png"),
			Slices: []chart.Slice{
				{Label: "Total Progress", Value: float64(t.TotalProgress()), Color: pass},
				{Label: "Missed Progress", Value: float64(t.MissedProgress()), Color: fail},
			},
		},
	}
}

func (w *workbook) embedPie(spec chart.PieSpec, col, row int) error {
	err := w.e.charts.Pie(spec)
	if errors.Is(err, chart.ErrEmptyChart) {
		w.e.log.Debugf("Skipping %q: no activities", spec.Title)
		return nil
	}
	if err != nil {
		return err
	}
	w.images = append(w.images, spec.Path)
	return w.embed(TrackerSheet, spec.Path, col, row)
}

// writeComparison renders the total-vs-missed bar chart below the last block.
func (w *workbook) writeComparison(tallies []model.Tally, cur int) error {
	if len(tallies) == 0 {
		return nil
	}

	spec := chart.BarSpec{
		Title: "Goal Progress Comparison",
		Path:  filepath.Join(w.imgDir, "Goal_Comparison_Bar.png"),
		Series: []chart.Series{
			{Name: "total", Color: w.e.opts.PassColor},
			{Name: "missed", Color: w.e.opts.FailColor},
		},
	}
	for _, t := range tallies {
		spec.Categories = append(spec.Categories, t.Goal)
		spec.Series[0].Values = append(spec.Series[0].Values, float64(t.TotalProgress()))
		spec.Series[1].Values = append(spec.Series[1].Values, float64(t.MissedProgress()))
	}

	if err := w.e.charts.Bar(spec); err != nil {
		return err
	}
	w.images = append(w.images, spec.Path)
	return w.embed(TrackerSheet, spec.Path, 3, barRow(cur)) // column C
}

func (w *workbook) embed(sheet, path string, col, row int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := w.file.AddPicture(sheet, cell, path, nil); err != nil {
		return fmt.Errorf("embedding %s at %s!%s: %w", filepath.Base(path), sheet, cell, err)
	}
	w.embedded++
	return nil
}

func (w *workbook) title(sheet string, row int, name string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := w.file.SetCellValue(sheet, cell, name); err != nil {
		return err
	}
	return w.file.SetCellStyle(sheet, cell, cell, w.boldStyle)
}

func (w *workbook) header(sheet string, row int, headers []string) error {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := w.row(sheet, row, cells); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	return w.file.SetCellStyle(sheet, first, last, w.boldStyle)
}

func (w *workbook) row(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}

func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}

// fileSafe turns a goal name into a file name fragment.
func fileSafe(name string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			return r
		}
		return '_'
	}, name)
	if s == "" {
		return "goal"
	}
	return s
}
