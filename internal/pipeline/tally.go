package pipeline

import "github.com/theirongolddev/habitrack/internal/model"

// GoalRows holds the flattened records belonging to one goal.
type GoalRows struct {
	Goal  string
	Do    []model.DoRecord
	DoNot []model.DoNotRecord
}

// Len is the row count of the side-by-side table: the longer of both lists.
func (g GoalRows) Len() int {
	return max(len(g.Do), len(g.DoNot))
}

// Date returns the session date of the first record in the group.
func (g GoalRows) Date() string {
	if len(g.Do) > 0 {
		return g.Do[0].Date
	}
	if len(g.DoNot) > 0 {
		return g.DoNot[0].Date
	}
	return ""
}

// GroupByGoal groups records by goal name. Goals named in order come first,
// in that order, including goals without records. Any other goal follows in
// order of first appearance in the do list, then the do-not list.
func GroupByGoal(order []string, doRecs []model.DoRecord, doNotRecs []model.DoNotRecord) []GoalRows {
	idx := make(map[string]int)
	var groups []GoalRows

	lookup := func(goal string) int {
		if i, ok := idx[goal]; ok {
			return i
		}
		idx[goal] = len(groups)
		groups = append(groups, GoalRows{Goal: goal})
		return len(groups) - 1
	}

	for _, name := range order {
		lookup(name)
	}
	for _, r := range doRecs {
		i := lookup(r.Goal)
		groups[i].Do = append(groups[i].Do, r)
	}
	for _, r := range doNotRecs {
		i := lookup(r.Goal)
		groups[i].DoNot = append(groups[i].DoNot, r)
	}

	return groups
}

// GoalNames returns the goal names in input order.
func GoalNames(goals []model.Goal) []string {
	names := make([]string, len(goals))
	for i, g := range goals {
		names[i] = g.Name
	}
	return names
}

// SessionOrder returns the goal names of a session in tracking order.
func SessionOrder(p model.GoalProgress) []string {
	names := make([]string, len(p.Goals))
	for i, g := range p.Goals {
		names[i] = g.Name
	}
	return names
}

// Tally counts passes and failures for one goal's records.
func Tally(g GoalRows) model.Tally {
	t := model.Tally{Goal: g.Goal}
	for _, r := range g.Do {
		if r.Completed.Passed() {
			t.Completed++
		} else {
			t.NotCompleted++
		}
	}
	for _, r := range g.DoNot {
		if r.Avoided.Passed() {
			t.Avoided++
		} else {
			t.NotAvoided++
		}
	}
	return t
}

// TallyAll tallies every group, preserving group order.
func TallyAll(groups []GoalRows) []model.Tally {
	tallies := make([]model.Tally, 0, len(groups))
	for _, g := range groups {
		tallies = append(tallies, Tally(g))
	}
	return tallies
}

// Summarize totals all tallies into one, named by the given label.
func Summarize(label string, tallies []model.Tally) model.Tally {
	sum := model.Tally{Goal: label}
	for _, t := range tallies {
		sum.Completed += t.Completed
		sum.NotCompleted += t.NotCompleted
		sum.Avoided += t.Avoided
		sum.NotAvoided += t.NotAvoided
	}
	return sum
}
