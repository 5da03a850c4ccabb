// Package pipeline reshapes tracking sessions into export-ready records
// and computes per-goal tallies.
package pipeline

import "github.com/theirongolddev/habitrack/internal/model"

// Flatten emits one record per tracked activity, carrying the goal name
// and session date. Do and do-not activities go to separate lists.
func Flatten(p model.GoalProgress) ([]model.DoRecord, []model.DoNotRecord) {
	var doRecs []model.DoRecord
	var doNotRecs []model.DoNotRecord

	for _, g := range p.Goals {
		for _, r := range g.Do {
			doRecs = append(doRecs, model.DoRecord{
				Goal:      g.Name,
				Date:      p.Date,
				Activity:  r.Activity,
				Completed: r.Status,
			})
		}
		for _, r := range g.DoNot {
			doNotRecs = append(doNotRecs, model.DoNotRecord{
				Goal:     g.Name,
				Date:     p.Date,
				Activity: r.Activity,
				Avoided:  r.Status,
			})
		}
	}

	return doRecs, doNotRecs
}
