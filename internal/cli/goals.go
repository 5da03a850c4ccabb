package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/store"
)

// RenderGoals lists every goal with its do and do-not activities.
func RenderGoals(goals []model.Goal) string {
	var b strings.Builder
	for i, g := range goals {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("Goal %d: %s", i+1, g.Name)))
		b.WriteString("\n")
		writeList(&b, "Do Activities:", g.Do)
		writeList(&b, "Do Not Activities:", g.DoNot)
	}
	return b.String()
}

func writeList(b *strings.Builder, label string, items []string) {
	b.WriteString(mutedStyle.Render("  " + label))
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString(valueStyle.Render("    - " + it))
		b.WriteString("\n")
	}
}

// RenderProgressJSON writes the session as two-space indented JSON,
// leaving non-ASCII text unescaped.
func RenderProgressJSON(w io.Writer, p model.GoalProgress) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// RenderTallies renders the per-goal results table with an overall row.
func RenderTallies(tallies []model.Tally, overall model.Tally) string {
	rows := make([][]string, 0, len(tallies)+2)
	add := func(t model.Tally) {
		done := t.Completed + t.NotCompleted
		avoid := t.Avoided + t.NotAvoided
		all := t.TotalProgress() + t.MissedProgress()
		rows = append(rows, []string{
			t.Goal,
			fmt.Sprintf("%d/%d", t.Completed, done),
			fmt.Sprintf("%d/%d", t.Avoided, avoid),
			passStyle.Render(FormatNumber(int64(t.TotalProgress()))),
			failStyle.Render(FormatNumber(int64(t.MissedProgress()))),
			FormatRate(t.TotalProgress(), all),
		})
	}
	for _, t := range tallies {
		add(t)
	}
	if len(tallies) > 1 {
		rows = append(rows, []string{"---"})
		add(overall)
	}

	return RenderTable(Table{
		Headers: []string{
			"Goal",
			model.StatusPass.Label(model.KindDo),
			model.StatusPass.Label(model.KindDoNot),
			"Progress",
			"Missed",
			"Rate",
		},
		Rows:    rows,
	})
}

// RenderSessions renders journaled sessions with a pass-rate sparkline,
// oldest to newest.
func RenderSessions(sessions []store.SessionSummary) string {
	rows := make([][]string, 0, len(sessions))
	rates := make([]float64, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		total := s.Passed + s.Failed
		if total > 0 {
			rates = append(rates, float64(s.Passed)/float64(total))
		} else {
			rates = append(rates, 0)
		}
	}
	for _, s := range sessions {
		day := ""
		if d, err := time.Parse(model.DateLayout, s.Date); err == nil {
			day = FormatDayOfWeek(int(d.Weekday()))
		}
		rows = append(rows, []string{
			s.Date,
			day,
			shortID(s.ID),
			FormatNumber(int64(s.Goals)),
			FormatNumber(int64(s.Passed)),
			FormatNumber(int64(s.Failed)),
			FormatRate(s.Passed, s.Passed+s.Failed),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(Table{
		Headers:  []string{"Date", "Day", "Session", "Goals", "Passed", "Failed", "Rate"},
		Rows:     rows,
		LeftCols: 3,
	}))
	if len(rates) > 1 {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render("Trend "))
		b.WriteString(passStyle.Render(RenderSparkline(rates)))
		b.WriteString("\n")
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
