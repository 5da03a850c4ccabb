package model

// DateLayout is the layout of tracking session dates.
const DateLayout = "2006-01-02"

// ActivityResult is the tracked outcome of one activity.
type ActivityResult struct {
	Activity string `json:"activity"`
	Status   Status `json:"status"`
}

// GoalResult holds the tracked outcomes for one goal, in input order.
type GoalResult struct {
	Name  string           `json:"name"`
	Do    []ActivityResult `json:"do"`
	DoNot []ActivityResult `json:"do_not"`
}

// GoalProgress is one dated tracking session across all goals.
type GoalProgress struct {
	Date  string       `json:"date"`
	Goals []GoalResult `json:"goals"`
}

// DoRecord is a flattened row for a do activity.
type DoRecord struct {
	Goal      string
	Date      string
	Activity  string
	Completed Status
}

// DoNotRecord is a flattened row for a do-not activity.
type DoNotRecord struct {
	Goal     string
	Date     string
	Activity string
	Avoided  Status
}

// Tally holds per-goal pass/fail counts for one session.
type Tally struct {
	Goal         string
	Completed    int
	NotCompleted int
	Avoided      int
	NotAvoided   int
}

// TotalProgress is the number of passed activities of either kind.
func (t Tally) TotalProgress() int { return t.Completed + t.Avoided }

// MissedProgress is the number of failed activities of either kind.
func (t Tally) MissedProgress() int { return t.NotCompleted + t.NotAvoided }
