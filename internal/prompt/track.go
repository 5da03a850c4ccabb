package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/habitrack/internal/model"
)

// PromptDate asks for the tracking date. A blank answer selects today.
func PromptDate(p Prompter, today time.Time) (string, error) {
	def := today.Format(model.DateLayout)
	s, err := p.Text(fmt.Sprintf("Press Enter for %s or enter a previous date (YYYY-MM-DD):", def))
	if err != nil {
		return "", err
	}
	return ParseDate(s, today)
}

// ParseDate validates a YYYY-MM-DD date, defaulting blank input to today.
func ParseDate(s string, today time.Time) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return today.Format(model.DateLayout), nil
	}
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return "", &AnswerError{Answer: s, Err: ErrInvalidDate}
	}
	return d.Format(model.DateLayout), nil
}

// Track walks every goal's activities in input order and records whether
// each do activity was completed and each do-not activity was avoided.
func Track(p Prompter, goals []model.Goal, date string) (model.GoalProgress, error) {
	progress := model.GoalProgress{
		Date:  date,
		Goals: make([]model.GoalResult, 0, len(goals)),
	}

	for i, g := range goals {
		p.Note(fmt.Sprintf("\nGoal %d: %s", i+1, g.Name))

		res := model.GoalResult{
			Name:  g.Name,
			Do:    make([]model.ActivityResult, 0, len(g.Do)),
			DoNot: make([]model.ActivityResult, 0, len(g.DoNot)),
		}

		var err error
		if res.Do, err = trackKind(p, g.Do, model.KindDo, res.Do); err != nil {
			return progress, err
		}
		p.Note("  Do Not Activities:")
		if res.DoNot, err = trackKind(p, g.DoNot, model.KindDoNot, res.DoNot); err != nil {
			return progress, err
		}

		progress.Goals = append(progress.Goals, res)
	}

	return progress, nil
}

func trackKind(p Prompter, acts []string, kind model.Kind, out []model.ActivityResult) ([]model.ActivityResult, error) {
	for _, a := range acts {
		p.Note("    - " + a)
		yes, err := p.Confirm(kind.Question())
		if err != nil {
			return out, err
		}
		out = append(out, model.ActivityResult{
			Activity: a,
			Status:   model.StatusFromAnswer(yes),
		})
	}
	return out, nil
}
